package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/leadflow-backend/internal/domain"
)

// AddNote appends a NOTE event to a lead. Unlike lifecycle events, a
// failed write is returned to the caller.
func (c *Controller) AddNote(ctx context.Context, leadID uuid.UUID, text string) (*domain.LeadEvent, error) {
	userID, err := c.authorize(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateNote(text); err != nil {
		return nil, err
	}

	if _, err := c.leads.GetByID(ctx, userID, leadID); err != nil {
		return nil, fmt.Errorf("get lead: %w", err)
	}

	event, err := c.events.Append(ctx, userID, domain.LeadEvent{
		UserID:  userID,
		LeadID:  leadID,
		Type:    domain.EventTypeNote,
		Details: map[string]any{"text": strings.TrimSpace(text)},
	})
	if err != nil {
		return nil, domain.NewPersistenceError("add note", err)
	}

	c.publish(ctx, *event)

	c.log.InfoContext(ctx, "lead note added",
		slog.String("user_id", userID.String()),
		slog.String("lead_id", leadID.String()),
		slog.String("event_id", event.ID.String()),
	)

	return event, nil
}
