// Пакет ctxmeta - метаданные запроса, которые едут через context.Context:
// request_id, заявленный пользователь, trace/span.
// HTTP-слой, логгер и клиенты внешних сервисов зависят от него, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	KeyRequestID ctxKey = "request_id"
	KeyActor     ctxKey = "actor"
)

// Actor - пользователь запроса в виде строк для логов и исходящих заголовков.
type Actor struct {
	ID   string
	Role string
}

// WithRequestID кладёт request_id в контекст (если пусто - ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithActor кладёт пользователя запроса; пустой ID игнорируется.
func WithActor(ctx context.Context, actor Actor) context.Context {
	if ctx == nil || actor.ID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyActor, actor)
}

func ActorFromContext(ctx context.Context) (Actor, bool) {
	if ctx == nil {
		return Actor{}, false
	}
	a, ok := ctx.Value(KeyActor).(Actor)
	return a, ok && a.ID != ""
}
