package rest

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/Gunvolt24/food_orders/pkg/httpx"
	"github.com/Gunvolt24/food_orders/pkg/validate"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// writeError - единственное место, где ошибки сервисов превращаются в HTTP-статусы.
func (h *Handler) writeError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	if f, ok := validate.AsFailure(err); ok {
		status := f.HTTPStatus()
		if status >= http.StatusInternalServerError {
			h.log.Errorf(ctx, "request failed kind=%s err=%v", f.Kind, err)
		}
		c.JSON(status, gin.H{"error": f.Error(), "kind": f.Kind.String()})
		return
	}

	switch {
	case errors.Is(err, domain.ErrVersionConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		h.log.Warnf(ctx, "request timed out err=%v", err)
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "request timed out"})
	default:
		h.log.Errorf(ctx, "request failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindStrict - строгий разбор тела; false, если ответ уже отправлен.
func bindStrict(c *gin.Context, dst any) bool {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read request body"})
		return false
	}
	if err := validate.DecodeStrict(raw, dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// pathID - UUID из пути; false, если ответ уже отправлен.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, ok := httpx.UUIDParam(c, name)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
