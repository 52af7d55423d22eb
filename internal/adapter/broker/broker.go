// Package broker publishes committed lead events to a message broker.
package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/leadflow-backend/internal/config"
	"github.com/heartmarshall/leadflow-backend/internal/domain"
)

// Publisher delivers a lead event downstream. Implementations are safe for
// concurrent use.
type Publisher interface {
	Publish(ctx context.Context, e domain.LeadEvent) error
	Close() error
}

// Message is the wire form of a published lead event.
type Message struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	LeadID    uuid.UUID      `json:"lead_id"`
	Type      string         `json:"type"`
	Details   map[string]any `json:"details"`
	CreatedAt time.Time      `json:"created_at"`
}

func encode(e domain.LeadEvent) ([]byte, error) {
	details := e.Details
	if details == nil {
		details = map[string]any{}
	}
	body, err := json.Marshal(Message{
		ID:        e.ID,
		UserID:    e.UserID,
		LeadID:    e.LeadID,
		Type:      string(e.Type),
		Details:   details,
		CreatedAt: e.CreatedAt.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("encode lead event: %w", err)
	}
	return body, nil
}

// RoutingKey returns the key an event is routed by, e.g. "lead.movement".
func RoutingKey(t domain.EventType) string {
	return "lead." + strings.ToLower(string(t))
}

// New builds the publisher selected by cfg.Driver. An empty driver yields Noop.
func New(ctx context.Context, cfg config.BrokerConfig, log *slog.Logger) (Publisher, error) {
	switch cfg.Driver {
	case config.BrokerDriverNone:
		return Noop{}, nil
	case config.BrokerDriverAMQP:
		return DialAMQP(ctx, cfg.AMQPURL, cfg.Exchange, log)
	case config.BrokerDriverKafka:
		return NewKafka(cfg.KafkaBrokers(), cfg.Topic, log)
	}
	return nil, fmt.Errorf("broker: unknown driver %q", cfg.Driver)
}

// Noop discards every event.
type Noop struct{}

func (Noop) Publish(context.Context, domain.LeadEvent) error { return nil }
func (Noop) Close() error                                    { return nil }
