// Package leadevent implements the append-only lead event log using PostgreSQL.
package leadevent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/leadflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/leadflow-backend/internal/domain"
)

var columns = []string{"id", "user_id", "lead_id", "event_type", "details", "created_at"}

// Repo provides lead event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new lead event repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	LeadID    uuid.UUID `db:"lead_id"`
	EventType string    `db:"event_type"`
	Details   []byte    `db:"details"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() (domain.LeadEvent, error) {
	e := domain.LeadEvent{
		ID:        r.ID,
		UserID:    r.UserID,
		LeadID:    r.LeadID,
		Type:      domain.EventType(r.EventType),
		Details:   map[string]any{},
		CreatedAt: r.CreatedAt,
	}
	if !e.Type.IsValid() {
		return domain.LeadEvent{}, fmt.Errorf("lead event %s: type %q: %w", r.ID, r.EventType, domain.ErrValidation)
	}
	if len(r.Details) > 0 {
		if err := json.Unmarshal(r.Details, &e.Details); err != nil {
			return domain.LeadEvent{}, fmt.Errorf("lead event %s: decode details: %w", r.ID, err)
		}
	}
	return e, nil
}

// Append records an event for a lead owned by the user.
// Returns domain.ErrNotFound if the lead does not exist for the user.
func (r *Repo) Append(ctx context.Context, userID uuid.UUID, e domain.LeadEvent) (*domain.LeadEvent, error) {
	details := e.Details
	if details == nil {
		details = map[string]any{}
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("lead event: encode details: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	insert := postgres.Builder().
		Insert("lead_events").
		Columns("user_id", "lead_id", "event_type", "details").
		Values(userID, e.LeadID, string(e.Type), raw).
		Suffix("RETURNING id, user_id, lead_id, event_type, details, created_at")

	var rw row
	if err := postgres.Get(ctx, q, &rw, insert); err != nil {
		return nil, postgres.MapError(err, "lead", e.LeadID)
	}

	out, err := rw.toDomain()
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByLead returns the lead's events, newest first.
func (r *Repo) ListByLead(ctx context.Context, userID, leadID uuid.UUID) ([]domain.LeadEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(columns...).
		From("lead_events").
		Where(squirrel.Eq{"lead_id": leadID, "user_id": userID}).
		OrderBy("created_at DESC", "id DESC")

	var rows []row
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "events of lead", leadID)
	}

	events := make([]domain.LeadEvent, 0, len(rows))
	for _, rw := range rows {
		e, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}
