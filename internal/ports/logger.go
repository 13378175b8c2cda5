package ports

import "context"

// Logger - минимальный контракт логгера для внешних слоёв.
// Реализация сама достаёт из ctx метаданные запроса (request_id).
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
