package pipeline

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/leadflow-backend/internal/domain"
)

// AddLead creates a lead on the first stage of the board and reloads the
// board. The CREATION event and the reload are best-effort once the lead
// is stored.
func (c *Controller) AddLead(ctx context.Context, draft LeadDraft) (*domain.Lead, error) {
	userID, err := c.authorize(ctx)
	if err != nil {
		return nil, err
	}

	if err := draft.Validate(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	first, ok := domain.FirstStage(c.board.Stages)
	c.mu.Unlock()
	if !ok {
		return nil, domain.ErrNoPipelineStage
	}

	lead, err := c.leads.Create(ctx, userID, draft.toLead(first.ID))
	if err != nil {
		return nil, domain.NewPersistenceError("create lead", err)
	}

	c.recordEvent(ctx, userID, lead.ID, domain.EventTypeCreation, map[string]any{
		"initialData": initialData(lead),
	})

	if err := c.reload(ctx, userID); err != nil {
		c.log.WarnContext(ctx, "pipeline reload after create failed",
			slog.String("lead_id", lead.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	c.log.InfoContext(ctx, "lead created",
		slog.String("user_id", userID.String()),
		slog.String("lead_id", lead.ID.String()),
		slog.String("stage_id", first.ID.String()),
	)

	return lead, nil
}
