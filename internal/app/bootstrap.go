package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/food_orders/config"
	cachemem "github.com/Gunvolt24/food_orders/internal/cache/memory"
	"github.com/Gunvolt24/food_orders/internal/identity"
	"github.com/Gunvolt24/food_orders/internal/kafka"
	"github.com/Gunvolt24/food_orders/internal/ports"
	"github.com/Gunvolt24/food_orders/internal/repo/postgres"
	rest "github.com/Gunvolt24/food_orders/internal/transport/http"
	"github.com/Gunvolt24/food_orders/internal/usecase"
	"github.com/Gunvolt24/food_orders/pkg/httpx"
	"github.com/Gunvolt24/food_orders/pkg/logger"
	"github.com/Gunvolt24/food_orders/pkg/metrics"
	"github.com/Gunvolt24/food_orders/pkg/telemetry"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// App - собранный сервис заказов: HTTP API и потребитель статусов доставки.
type App struct {
	Logger          ports.Logger
	HTTPServer      *http.Server
	KafkaConsumer   ports.MessageConsumer
	gracefulTimeout time.Duration
}

// Cleanup - освобождение ресурсов в обратном порядке создания.
type Cleanup func()

// applyGinMode - неизвестный режим даёт debug и предупреждение.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap - собирает зависимости по конфигурации.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}
	closeLogger := func() {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
	}

	metrics.MustRegister()

	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		closeLogger()
		return nil, func() {}, err
	}
	if cfg.Postgres.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			closeLogger()
			return nil, func() {}, fmt.Errorf("migrate: %w", err)
		}
		logg.Infof(ctx, "database migrations applied")
	}

	shutdownTrace, err := telemetry.SetupTracing(ctx, telemetry.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		logg.Warnf(ctx, "failed to setup tracing: %v", err)
		shutdownTrace = func(context.Context) error { return nil }
	} else if cfg.Tracing.Enabled {
		logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
			cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
	}

	// сервис пользователей
	users := identity.NewClient(cfg.Users.BaseURL, cfg.Users.Timeout)
	roles := identity.NewRoles(users)

	// хранилище и кэш
	orderRepo := postgres.NewOrderRepository(pool)
	dishRepo := postgres.NewDishRepository(pool)
	orderCache := cachemem.NewLRUCacheTTL(cfg.Cache.Capacity, cfg.Cache.TTL)
	reads := usecase.NewCachedOrderLookup(orderRepo, orderCache, logg)

	publisher := kafka.NewPublisher(&kafka.PublisherConfig{
		Brokers:      cfg.Kafka.Brokers,
		Topic:        cfg.Kafka.EventsTopic,
		WriteTimeout: cfg.Kafka.WriteTimeout,
	}, logg)

	orderService := usecase.NewOrderService(orderRepo, orderCache, publisher,
		usecase.NewOrderPipelines(orderRepo, reads, dishRepo, roles, users), logg)
	dishService := usecase.NewDishService(dishRepo,
		usecase.NewDishPipelines(dishRepo, roles, users), logg)

	if err := orderService.WarmUpCache(ctx, cfg.Cache.WarmUpN); err != nil {
		logg.Warnf(ctx, "warm-up cache failed: %v", err)
	}

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	var limiter *httpx.RateLimiter
	if cfg.HTTP.RateLimitRPS > 0 {
		limiter = httpx.NewRateLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst)
	}
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	handler := rest.NewHandler(orderService, dishService, logg, cfg.HTTP.HandlerTimeout)
	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           rest.NewRouter(handler, limiter, otelServiceName),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	consumer := kafka.NewConsumer(&kafka.ConsumerConfig{
		Brokers:        cfg.Kafka.Brokers,
		Topic:          cfg.Kafka.DeliveryTopic,
		GroupID:        cfg.Kafka.GroupID,
		StartOffset:    cfg.Kafka.StartOffset,
		ProcessTimeout: cfg.Kafka.ProcessTimeout,
		RetryInitial:   cfg.Kafka.RetryInitial,
		RetryMax:       cfg.Kafka.RetryMax,
	}, orderService, logg)

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		KafkaConsumer:   consumer,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	cleanup := func() {
		if err := consumer.Close(); err != nil {
			logg.Warnf(ctx, "kafka consumer close error: %v", err)
		}
		if err := publisher.Close(); err != nil {
			logg.Warnf(ctx, "kafka publisher close error: %v", err)
		}
		if err := shutdownTrace(context.Background()); err != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", err)
		}
		pool.Close()
		closeLogger()
	}

	return app, cleanup, nil
}

// Run - HTTP-сервер и потребитель работают до отмены ctx или первой фатальной ошибки,
// затем сервер останавливается с ожиданием активных запросов.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.Infof(ctx, "kafka consumer starting")
		err := a.KafkaConsumer.Run(gctx)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("kafka consumer: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
		a.shutdown(ctx)
		return nil
	})

	err := g.Wait()
	if err != nil {
		a.Logger.Warnf(ctx, "service stopped with error: %v", err)
		return err
	}
	a.Logger.Infof(ctx, "service stopped")
	return nil
}

func (a *App) shutdown(ctx context.Context) {
	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}
	if err := a.KafkaConsumer.Close(); err != nil {
		a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
	}
}
