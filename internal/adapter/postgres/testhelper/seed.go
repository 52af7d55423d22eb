package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/leadflow-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedStages creates one stage per name for the user, positions starting at 0.
// With no names the default stage set is used.
func SeedStages(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, names ...string) []domain.Stage {
	t.Helper()
	ctx := context.Background()

	if len(names) == 0 {
		names = domain.DefaultStageNames
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	stages := make([]domain.Stage, 0, len(names))
	for i, name := range names {
		s := domain.Stage{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      name,
			Position:  i,
			CreatedAt: now,
		}
		_, err := pool.Exec(ctx,
			`INSERT INTO stages (id, user_id, name, position, created_at) VALUES ($1, $2, $3, $4, $5)`,
			s.ID, s.UserID, s.Name, s.Position, s.CreatedAt,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedStages insert stage[%d]: %v", i, err)
		}
		stages = append(stages, s)
	}
	return stages
}

// SeedLead creates an active WARM lead on stageID.
func SeedLead(t *testing.T, pool *pgxpool.Pool, userID, stageID uuid.UUID) domain.Lead {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	email := "lead-" + uniqueSuffix() + "@example.com"
	lead := domain.Lead{
		ID:          uuid.New(),
		UserID:      userID,
		StageID:     stageID,
		Name:        "Lead " + uniqueSuffix(),
		Temperature: domain.TemperatureWarm,
		Email:       &email,
		Status:      domain.LeadStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO leads (id, user_id, stage_id, name, temperature, email, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		lead.ID, lead.UserID, lead.StageID, lead.Name, string(lead.Temperature), lead.Email,
		string(lead.Status), lead.CreatedAt, lead.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLead insert: %v", err)
	}
	return lead
}

// SeedFinalizedLead creates a lead already resolved with outcome.
func SeedFinalizedLead(t *testing.T, pool *pgxpool.Pool, userID, stageID uuid.UUID, outcome domain.Outcome) domain.Lead {
	t.Helper()

	lead := SeedLead(t, pool, userID, stageID)
	_, err := pool.Exec(context.Background(),
		`UPDATE leads SET outcome = $1, status = 'FINALIZED' WHERE id = $2`,
		string(outcome), lead.ID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFinalizedLead update: %v", err)
	}
	lead.Outcome = &outcome
	lead.Status = domain.LeadStatusFinalized
	return lead
}

// SeedTask creates a pending task. leadID may be nil.
func SeedTask(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, leadID *uuid.UUID, priority domain.TaskPriority, due time.Time) domain.Task {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	task := domain.Task{
		ID:        uuid.New(),
		UserID:    userID,
		LeadID:    leadID,
		Title:     "Task " + uniqueSuffix(),
		DueDate:   due.UTC().Truncate(time.Microsecond),
		Priority:  priority,
		Status:    domain.TaskStatusPending,
		Type:      domain.TaskTypeManual,
		CreatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tasks (id, user_id, lead_id, title, due_date, priority, status, type, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		task.ID, task.UserID, task.LeadID, task.Title, task.DueDate, string(task.Priority),
		string(task.Status), string(task.Type), task.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTask insert: %v", err)
	}
	return task
}

// SeedProperty creates an available apartment for sale.
func SeedProperty(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Property {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Property{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Property " + uniqueSuffix(),
		Location:  "Downtown",
		Status:    domain.PropertyStatusAvailable,
		Type:      domain.PropertyTypeApartment,
		Purpose:   domain.PurposeSale,
		Price:     decimal.RequireFromString("450000.00"),
		Bedrooms:  2,
		Bathrooms: 1,
		Images:    []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO properties (id, user_id, name, location, status, type, purpose, price, bedrooms, bathrooms, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, p.UserID, p.Name, p.Location, string(p.Status), string(p.Type), string(p.Purpose),
		p.Price.String(), p.Bedrooms, p.Bathrooms, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProperty insert: %v", err)
	}
	return p
}
