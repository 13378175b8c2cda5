package ports

import "context"

// MessageConsumer - фоновый потребитель сообщений (статусы от сервиса доставки).
// Run блокируется до отмены ctx.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
