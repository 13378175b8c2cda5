// Пакет identity - клиент сервиса пользователей: каталоги клиентов, вендоров и админов.
package identity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/food_orders/internal/ports"
	"github.com/Gunvolt24/food_orders/pkg/ctxmeta"
	"github.com/Gunvolt24/food_orders/pkg/metrics"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var _ ports.ExistenceChecker = (*Client)(nil)

var (
	// ErrUnavailable - сервис пользователей не ответил (сеть, таймаут).
	ErrUnavailable = errors.New("users service unavailable")
	// ErrUnexpectedStatus - ответ, отличный от 200/404.
	ErrUnexpectedStatus = errors.New("users service unexpected status")
)

const (
	collectionCustomers = "customers"
	collectionVendors   = "vendors"
	collectionAdmins    = "admins"
)

// Client - GET {base}/{customers|vendors|admins}/{id}: 200 - есть, 404 - нет.
// Повторов нет: отказ вызова сразу возвращается вызывающему.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient - клиент с явным таймаутом на каждый вызов; timeout <= 0 заменяется на 2s.
// Исходящие запросы трассируются и несут trace-контекст (otelhttp).
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *Client) CustomerExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	return c.exists(ctx, collectionCustomers, userID)
}

func (c *Client) VendorExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	return c.exists(ctx, collectionVendors, userID)
}

func (c *Client) AdminExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	return c.exists(ctx, collectionAdmins, userID)
}

func (c *Client) exists(ctx context.Context, collection string, userID uuid.UUID) (found bool, err error) {
	if userID == uuid.Nil {
		return false, nil
	}

	start := time.Now()
	defer func() {
		outcome := "absent"
		switch {
		case err != nil:
			outcome = "error"
		case found:
			outcome = "found"
		}
		metrics.IdentityRequestDuration.WithLabelValues(collection, outcome).Observe(time.Since(start).Seconds())
	}()

	url := c.baseURL + "/" + collection + "/" + userID.String()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return false, fmt.Errorf("build request %s: %w", collection, err)
	}
	req.Header.Set("Accept", "application/json")
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		req.Header.Set("X-Request-ID", rid)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: GET %s: %w", ErrUnavailable, collection, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("%w: GET %s: %d", ErrUnexpectedStatus, collection, resp.StatusCode)
	}
}
