package pipeline

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/leadflow-backend/internal/domain"
)

// SearchInactive lists resolved leads. A nil outcome means both WON and LOST.
func (c *Controller) SearchInactive(ctx context.Context, outcome *domain.Outcome) ([]domain.Lead, error) {
	userID, err := c.authorize(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateFilter(outcome); err != nil {
		return nil, err
	}

	leads, err := c.leads.SearchInactive(ctx, userID, outcome)
	if err != nil {
		return nil, domain.NewPersistenceError("search inactive leads", err)
	}
	return leads, nil
}

// Search matches query against every lead of the user, active or not.
func (c *Controller) Search(ctx context.Context, query string, outcome *domain.Outcome) ([]domain.Lead, error) {
	userID, err := c.authorize(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateFilter(outcome); err != nil {
		return nil, err
	}

	leads, err := c.leads.Search(ctx, userID, strings.TrimSpace(query), outcome)
	if err != nil {
		return nil, domain.NewPersistenceError("search leads", err)
	}
	return leads, nil
}

// ListEvents returns a lead's history, newest first.
func (c *Controller) ListEvents(ctx context.Context, leadID uuid.UUID) ([]domain.LeadEvent, error) {
	userID, err := c.authorize(ctx)
	if err != nil {
		return nil, err
	}

	events, err := c.events.ListByLead(ctx, userID, leadID)
	if err != nil {
		return nil, domain.NewPersistenceError("list lead events", err)
	}
	return events, nil
}
