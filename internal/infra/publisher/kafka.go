package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ticket-booking/internal/pkg/config"
	"ticket-booking/internal/pkg/errs"
	"ticket-booking/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

const headerEventType = "event-type"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes booking lifecycle events keyed by event id, so all
// messages about one event's inventory land on one partition in order.
type KafkaPublisher struct {
	writer  messageWriter
	timeout time.Duration
	logger  *slog.Logger
}

func NewKafkaPublisher(cfg config.KafkaConfig, logger *slog.Logger) (*KafkaPublisher, error) {
	writer, err := newWriter(cfg, logger)
	if err != nil {
		return nil, err
	}
	return newKafkaPublisher(writer, cfg.WriteTimeout, logger), nil
}

// newWriter flushes after cfg.BatchTimeout rather than kafka-go's 1s default,
// since Publish runs inside the booking request. In async mode WriteMessages
// returns at once and delivery failures are only logged.
func newWriter(cfg config.KafkaConfig, logger *slog.Logger) (*kafka.Writer, error) {
	compression, err := compressionCodec(cfg.Compression)
	if err != nil {
		return nil, err
	}
	acks, err := requiredAcks(cfg.RequiredAcks)
	if err != nil {
		return nil, err
	}
	batchTimeout := cfg.BatchTimeout
	if batchTimeout <= 0 {
		batchTimeout = 10 * time.Millisecond
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.BookingTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           acks,
		Compression:            compression,
		MaxAttempts:            cfg.MaxAttempts,
		BatchTimeout:           batchTimeout,
		Async:                  cfg.Async,
		AllowAutoTopicCreation: true,
		Logger:                 kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			logger.Error("kafka writer error", "detail", fmt.Sprintf(msg, args...))
		}),
	}
	if cfg.Async {
		w.Completion = func(msgs []kafka.Message, err error) {
			if err != nil {
				logger.Error("lifecycle events not delivered", "count", len(msgs), "error", err.Error())
			}
		}
	}
	return w, nil
}

func compressionCodec(name string) (kafka.Compression, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return 0, nil
	case "gzip":
		return kafka.Gzip, nil
	case "snappy":
		return kafka.Snappy, nil
	case "lz4":
		return kafka.Lz4, nil
	case "zstd":
		return kafka.Zstd, nil
	default:
		return 0, errs.Newf("unknown KAFKA_COMPRESSION %q", name)
	}
}

func requiredAcks(n int) (kafka.RequiredAcks, error) {
	switch n {
	case -1:
		return kafka.RequireAll, nil
	case 0:
		return kafka.RequireNone, nil
	case 1:
		return kafka.RequireOne, nil
	default:
		return 0, errs.Newf("KAFKA_REQUIRED_ACKS must be -1, 0 or 1, got %d", n)
	}
}

func newKafkaPublisher(w messageWriter, timeout time.Duration, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: w, timeout: timeout, logger: logger}
}

func (p *KafkaPublisher) Publish(ctx context.Context, evt shared.BookingLifecycleEvent) error {
	value, err := json.Marshal(evt)
	if err != nil {
		return errs.Wrap(err, "encode lifecycle event")
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	msg := kafka.Message{
		Key:   []byte(evt.EventID.String()),
		Value: value,
		Time:  evt.OccurredAt,
		Headers: []kafka.Header{
			{Key: headerEventType, Value: []byte(evt.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrapf(err, "publish %s for %s", evt.Type, evt.Reference)
	}

	p.logger.Debug("lifecycle event published", "type", string(evt.Type), "reference", evt.Reference)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// LogPublisher stands in when no brokers are configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, evt shared.BookingLifecycleEvent) error {
	p.logger.Info("booking lifecycle",
		"type", string(evt.Type),
		"reference", evt.Reference,
		"event_id", evt.EventID.String(),
		"available_seats", evt.AvailableSeats)
	return nil
}
