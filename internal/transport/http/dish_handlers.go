package rest

import (
	"net/http"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/Gunvolt24/food_orders/pkg/httpx"
	"github.com/gin-gonic/gin"
)

func (h *Handler) createDish(c *gin.Context) {
	var req domain.DishRequest
	if !bindStrict(c, &req) {
		return
	}
	ctx, cancel := h.requestCtx(c)
	defer cancel()

	dish, err := h.dishes.CreateDish(ctx, httpx.ActorFrom(c), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dish)
}

func (h *Handler) getDish(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.requestCtx(c)
	defer cancel()

	dish, err := h.dishes.GetDish(ctx, httpx.ActorFrom(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

func (h *Handler) listVendorDishes(c *gin.Context) {
	vendorID, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.requestCtx(c)
	defer cancel()

	dishes, err := h.dishes.ListVendorDishes(ctx, httpx.ActorFrom(c), vendorID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if dishes == nil {
		dishes = []*domain.Dish{}
	}
	c.JSON(http.StatusOK, dishes)
}

func (h *Handler) updateDish(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req domain.DishRequest
	if !bindStrict(c, &req) {
		return
	}
	ctx, cancel := h.requestCtx(c)
	defer cancel()

	dish, err := h.dishes.UpdateDish(ctx, httpx.ActorFrom(c), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

func (h *Handler) deleteDish(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.requestCtx(c)
	defer cancel()

	if err := h.dishes.DeleteDish(ctx, httpx.ActorFrom(c), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
