package rest

import (
	"context"
	"net/http"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/Gunvolt24/food_orders/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) createOrder(c *gin.Context) {
	var req domain.CreateOrderRequest
	if !bindStrict(c, &req) {
		return
	}
	ctx, cancel := h.requestCtx(c)
	defer cancel()

	order, err := h.orders.CreateOrder(ctx, httpx.ActorFrom(c), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) getOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.requestCtx(c)
	defer cancel()

	order, err := h.orders.GetOrder(ctx, httpx.ActorFrom(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) listOrders(c *gin.Context) {
	limit, offset := httpx.ParseLimitOffset(c, defaultListLimit, maxListLimit)
	ctx, cancel := h.requestCtx(c)
	defer cancel()

	orders, err := h.orders.ListOrders(ctx, httpx.ActorFrom(c), limit, offset)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if orders == nil {
		orders = []*domain.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) deleteOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.requestCtx(c)
	defer cancel()

	if err := h.orders.DeleteOrder(ctx, httpx.ActorFrom(c), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) updateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req domain.UpdateStatusRequest
	if !bindStrict(c, &req) {
		return
	}
	ctx, cancel := h.requestCtx(c)
	defer cancel()

	order, err := h.orders.UpdateStatus(ctx, httpx.ActorFrom(c), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) addDish(c *gin.Context) {
	h.changeDishQuantity(c, h.orders.AddDish)
}

func (h *Handler) setDishQuantity(c *gin.Context) {
	h.changeDishQuantity(c, h.orders.SetDishQuantity)
}

type quantityChange func(
	ctx context.Context,
	actor domain.Actor,
	orderID, dishID uuid.UUID,
	req *domain.DishQuantityRequest,
) (*domain.Order, error)

func (h *Handler) changeDishQuantity(c *gin.Context, change quantityChange) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	dishID, ok := pathID(c, "dishId")
	if !ok {
		return
	}
	var req domain.DishQuantityRequest
	if !bindStrict(c, &req) {
		return
	}
	ctx, cancel := h.requestCtx(c)
	defer cancel()

	order, err := change(ctx, httpx.ActorFrom(c), orderID, dishID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) removeDish(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	dishID, ok := pathID(c, "dishId")
	if !ok {
		return
	}
	ctx, cancel := h.requestCtx(c)
	defer cancel()

	order, err := h.orders.RemoveDish(ctx, httpx.ActorFrom(c), orderID, dishID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
