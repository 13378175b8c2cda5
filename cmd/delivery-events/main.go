package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/Gunvolt24/food_orders/pkg/validate"
	"github.com/segmentio/kafka-go"
)

// Проверка файла статусов доставки. Валидные события печатаются в stdout
// или, если заданы -brokers и -topic, отправляются в Kafka.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	brokers := flag.String("brokers", "", "comma separated kafka brokers; empty prints events to stdout")
	topic := flag.String("topic", "delivery-status", "kafka topic for valid events")
	flag.Parse()

	format := validate.InputFormat(*formatStr)
	path := *inputPath
	// stdin читаем как JSONL
	if path == "" {
		path = "/dev/stdin"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	emit, closeEmit := stdoutEmitter()
	if *brokers != "" {
		emit, closeEmit = kafkaEmitter(strings.Split(*brokers, ","), *topic)
	}

	summary, err := validate.ValidateEventsFile(path, format, emit)
	if cErr := closeEmit(); cErr != nil && err == nil {
		err = cErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "delivery events: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "delivery events ok (%s)\n", summary)
}

func stdoutEmitter() (validate.EmitFunc, func() error) {
	enc := json.NewEncoder(os.Stdout)
	return func(ev *domain.DeliveryStatusEvent) error { return enc.Encode(ev) },
		func() error { return nil }
}

// kafkaEmitter - ключ сообщения = id заказа, чтобы статусы одного заказа шли в одну партицию.
func kafkaEmitter(brokers []string, topic string) (validate.EmitFunc, func() error) {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
	emit := func(ev *domain.DeliveryStatusEvent) error {
		payload, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return w.WriteMessages(ctx, kafka.Message{Key: []byte(ev.OrderID.String()), Value: payload})
	}
	return emit, w.Close
}
