package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/Gunvolt24/food_orders/internal/ports"
	"github.com/Gunvolt24/food_orders/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
	maxBodyBytes     = 1 << 20
)

// Handler - HTTP-эндпоинты заказов и каталога блюд.
type Handler struct {
	orders  ports.OrderService
	dishes  ports.DishService
	log     ports.Logger
	timeout time.Duration
}

// NewHandler - timeout ограничивает обработку одного запроса; <= 0 - без ограничения.
func NewHandler(orders ports.OrderService, dishes ports.DishService, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{orders: orders, dishes: dishes, log: log, timeout: timeout}
}

// NewRouter - limiter == nil отключает ограничение частоты;
// otelServiceName == "" отключает otelgin.
func NewRouter(h *Handler, limiter *httpx.RateLimiter, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.NoRoute(func(c *gin.Context) { c.JSON(http.StatusNotFound, gin.H{"error": "route not found"}) })
	r.NoMethod(func(c *gin.Context) { c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"}) })

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/")
	if limiter != nil {
		api.Use(limiter.Middleware())
	}
	api.Use(httpx.ActorMiddleware())

	orders := api.Group("/orders")
	orders.POST("", h.createOrder)
	orders.GET("", h.listOrders)
	orders.GET("/:id", h.getOrder)
	orders.DELETE("/:id", h.deleteOrder)
	orders.PATCH("/:id/status", h.updateStatus)
	orders.POST("/:id/dishes/:dishId", h.addDish)
	orders.PUT("/:id/dishes/:dishId", h.setDishQuantity)
	orders.DELETE("/:id/dishes/:dishId", h.removeDish)

	dishes := api.Group("/dishes")
	dishes.POST("", h.createDish)
	dishes.GET("/:id", h.getDish)
	dishes.PUT("/:id", h.updateDish)
	dishes.DELETE("/:id", h.deleteDish)

	api.GET("/vendors/:id/dishes", h.listVendorDishes)

	return r
}

// requestCtx - контекст запроса с таймаутом обработчика.
func (h *Handler) requestCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}
