package httpx

import (
	"net/http"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/Gunvolt24/food_orders/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	actorKey = "httpx.actor"
)

// ActorMiddleware - читает заявленного пользователя из заголовков.
// Подлинность не проверяется (это задача шлюза); проверяет только формат.
// Отсутствующий X-User-ID даёт uuid.Nil - его отклонит конвейер валидации,
// неизвестная роль отклоняется здесь же с 400.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var actor domain.Actor

		if raw := c.GetHeader(HeaderUserID); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid " + HeaderUserID + " header"})
				return
			}
			actor.ID = id
		}

		role, err := domain.ParseRole(c.GetHeader(HeaderUserRole))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid " + HeaderUserRole + " header"})
			return
		}
		actor.Role = role

		c.Set(actorKey, actor)
		if actor.ID != uuid.Nil {
			ctx := ctxmeta.WithActor(c.Request.Context(), ctxmeta.Actor{ID: actor.ID.String(), Role: role.String()})
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

// ActorFrom - пользователь, разобранный ActorMiddleware.
func ActorFrom(c *gin.Context) domain.Actor {
	if v, ok := c.Get(actorKey); ok {
		if a, ok := v.(domain.Actor); ok {
			return a
		}
	}
	return domain.Actor{}
}
