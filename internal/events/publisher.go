package events

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-wallet-profiles/internal/logger"
	"github.com/sbilibin2017/gw-wallet-profiles/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// NewKafkaWriter builds an asynchronous hash-balanced writer for topic.
// WriteMessages only enqueues; delivery failures are logged by logCompletion.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
		Async:                  true,
		Completion:             logCompletion,
	}
}

func logCompletion(messages []kafka.Message, err error) {
	if err == nil {
		return
	}
	for _, msg := range messages {
		logger.Log.Errorw("Failed to deliver event to Kafka", "wallet", string(msg.Key), "topic", msg.Topic, "error", err)
	}
}

// ParseBrokers splits a comma-separated broker list, dropping blanks.
func ParseBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// Publisher writes change events to Kafka keyed by wallet address, so every
// event of one wallet lands on the same partition.
type Publisher struct {
	writer KafkaWriter
}

// NewPublisher creates a new Publisher. A nil writer makes Publish a no-op.
func NewPublisher(writer KafkaWriter) *Publisher {
	return &Publisher{writer: writer}
}

// Publish hands evt to the writer. Failures are logged and never returned.
func (p *Publisher) Publish(ctx context.Context, evt models.ChangeEvent) {
	if p.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", evt.EventID, "type", evt.Type)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", evt.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.WalletAddress),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(evt.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", evt.EventID, "type", evt.Type, "error", err)
		return
	}
	logger.Log.Infow("Event queued for Kafka", "event_id", evt.EventID, "type", evt.Type, "wallet", evt.WalletAddress)
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
