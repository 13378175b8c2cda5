package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	ValidationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validation_failures_total",
			Help: "Requests rejected by a validation pipeline",
		},
		[]string{"pipeline", "kind"},
	)
	IdentityRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "identity_request_duration_seconds",
			Help:    "Latency of calls to the users service",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"role", "outcome"}, // outcome: found|absent|error
	)
)

var (
	OrderEventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_published_total",
			Help: "Order events written to Kafka",
		},
		[]string{"type"},
	)
	OrderEventsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_failed_total",
			Help: "Order events that could not be written to Kafka",
		},
		[]string{"type"},
	)
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired|deleted
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
	)
	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
	)
)

func all() []prometheus.Collector {
	return []prometheus.Collector{
		ValidationFailures, IdentityRequestDuration,
		OrderEventsPublished, OrderEventsFailed,
		KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
		CacheOps, CacheSize, RateLimited,
	}
}

// MustRegister - регистрация в DefaultRegisterer; повторный вызов безопасен.
func MustRegister() {
	for _, c := range all() {
		if err := prometheus.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			panic(err)
		}
	}
}
