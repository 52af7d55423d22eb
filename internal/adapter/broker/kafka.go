package broker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/heartmarshall/leadflow-backend/internal/domain"
)

// kafkaBatchTimeout bounds how long a single event waits for its batch to
// fill. The writer default is one second.
const kafkaBatchTimeout = 10 * time.Millisecond

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events to one topic keyed by lead id, so every
// event of a lead lands on the same partition.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
	log    *slog.Logger
}

// NewKafka creates a publisher writing to topic on brokers.
func NewKafka(brokers []string, topic string, log *slog.Logger) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher requires at least one broker")
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.Hash{},
		BatchTimeout: kafkaBatchTimeout,
	}
	return newKafkaPublisher(w, topic, log), nil
}

func newKafkaPublisher(w messageWriter, topic string, log *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: w,
		topic:  topic,
		log:    log.With("publisher", "kafka"),
	}
}

// Publish writes e to the topic.
func (p *KafkaPublisher) Publish(ctx context.Context, e domain.LeadEvent) error {
	body, err := encode(e)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(e.LeadID.String()),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(e.Type)},
		},
		Time: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("kafka write %s: %w", p.topic, err)
	}

	p.log.DebugContext(ctx, "lead event published",
		slog.String("topic", p.topic),
		slog.String("lead_id", e.LeadID.String()),
	)
	return nil
}

// Close flushes pending writes and closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
