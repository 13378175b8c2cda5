//go:build !integration

package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/Gunvolt24/food_orders/internal/ports"
	"github.com/Gunvolt24/food_orders/pkg/httpx"
)

// GetOrder: голый роутер против полного набора middleware.
func BenchmarkHTTP_GetOrder(b *testing.B) {
	ord := benchOrder(5)
	h := NewHandler(svcOne{o: ord}, nil, nopLogger{}, 2*time.Second)

	lean := makeLeanRouter(h)
	full := makeFullRouter(h)

	b.Run("lean/no-mw", func(b *testing.B) {
		benchServeGET(b, lean, "/orders/"+ord.ID.String())
	})
	b.Run("full/prod-mw", func(b *testing.B) {
		benchServeGET(b, full, "/orders/"+ord.ID.String())
	})
}

// Потолок без маршалинга: тот же заказ, заранее закодированный в JSON.
func BenchmarkHTTP_GetOrder_PreMarshaledBytes(b *testing.B) {
	ord := benchOrder(5)
	raw, _ := json.Marshal(ord)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/orders/:id", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", raw)
	})

	benchServeGET(b, r, "/orders/"+ord.ID.String())
}

// Список: рост времени и аллокаций с размером страницы.
func BenchmarkHTTP_ListOrders(b *testing.B) {
	for _, n := range []int{10, 50, 100} {
		b.Run("N="+strconv.Itoa(n), func(b *testing.B) {
			list := make([]*domain.Order, 0, n)
			for i := 0; i < n; i++ {
				list = append(list, benchOrder(3))
			}
			h := NewHandler(svcList{list: list}, nil, nopLogger{}, 2*time.Second)

			benchServeGET(b, makeLeanRouter(h), "/orders?limit="+strconv.Itoa(n))
		})
	}
}

func BenchmarkHTTP_404(b *testing.B) {
	h := NewHandler(svcOne{o: benchOrder(1)}, nil, nopLogger{}, 2*time.Second)
	r := makeFullRouter(h)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, "/nope", http.NoBody)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusNotFound {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// Стабы: остальные методы сервиса в бенчмарках не вызываются.

type svcOne struct {
	ports.OrderService
	o *domain.Order
}

func (s svcOne) GetOrder(context.Context, domain.Actor, uuid.UUID) (*domain.Order, error) {
	return s.o, nil
}

type svcList struct {
	ports.OrderService
	list []*domain.Order
}

func (s svcList) ListOrders(context.Context, domain.Actor, int, int) ([]*domain.Order, error) {
	return s.list, nil
}

var benchActor = domain.Actor{ID: uuid.New(), Role: domain.RoleCustomer}

func benchOrder(dishes int) *domain.Order {
	o := &domain.Order{
		ID:         uuid.New(),
		CustomerID: benchActor.ID,
		VendorID:   uuid.New(),
		Status:     domain.StatusPending,
		Address:    domain.Address{Street: "Main st 1", City: "Metropolis"},
		Version:    1,
	}
	for i := 0; i < dishes; i++ {
		o.AddDish(domain.Dish{ID: uuid.New(), VendorID: o.VendorID, UnitPrice: decimal.NewFromInt(int64(i + 1))}, 2)
	}
	return o
}

func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(httpx.ActorMiddleware())
	r.GET("/orders/:id", h.getOrder)
	r.GET("/orders", h.listOrders)
	return r
}

func makeFullRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	return NewRouter(h, httpx.NewRateLimiter(0, 1), "")
}

func benchServeGET(b *testing.B, r *gin.Engine, path string) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, path, http.NoBody)
			req.Header.Set(httpx.HeaderUserID, benchActor.ID.String())
			req.Header.Set(httpx.HeaderUserRole, benchActor.Role.String())
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusOK {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}
