package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/leadflow-backend/internal/domain"
)

// ResolveOutcome marks a lead WON or LOST, or reactivates it with ACTIVE,
// then reloads the board. The board is not touched before the store
// confirms the change.
func (c *Controller) ResolveOutcome(ctx context.Context, leadID uuid.UUID, outcome domain.Outcome, details map[string]any) (*domain.Lead, error) {
	userID, err := c.authorize(ctx)
	if err != nil {
		return nil, err
	}

	eventType, err := domain.EventTypeForOutcome(outcome)
	if err != nil {
		return nil, domain.NewValidationError("outcome", "must be WON, LOST or ACTIVE")
	}

	var lead *domain.Lead
	if outcome == domain.OutcomeActive {
		lead, err = c.leads.Reactivate(ctx, userID, leadID)
	} else {
		status := domain.StatusForOutcome(&outcome)
		lead, err = c.leads.Update(ctx, userID, leadID, domain.LeadUpdate{
			Outcome: &outcome,
			Status:  &status,
		})
	}
	if err != nil {
		return nil, domain.NewPersistenceError("resolve outcome", err)
	}

	c.recordEvent(ctx, userID, leadID, eventType, details)

	c.log.InfoContext(ctx, "lead outcome resolved",
		slog.String("user_id", userID.String()),
		slog.String("lead_id", leadID.String()),
		slog.String("outcome", outcome.String()),
	)

	// The outcome is committed even when the reload fails.
	if err := c.reload(ctx, userID); err != nil {
		return nil, err
	}

	return lead, nil
}
