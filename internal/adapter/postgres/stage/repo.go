// Package stage implements the pipeline stage repository using PostgreSQL.
package stage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/leadflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/leadflow-backend/internal/adapter/postgres/stage/sqlc"
	"github.com/heartmarshall/leadflow-backend/internal/domain"
)

// Repo provides stage persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new stage repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func toDomainStage(s sqlc.Stage) domain.Stage {
	return domain.Stage{
		ID:        s.ID,
		UserID:    s.UserID,
		Name:      s.Name,
		Position:  int(s.Position),
		CreatedAt: s.CreatedAt,
	}
}

// List returns the user's stages ordered by position.
// Returns an empty slice when the user has none.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.Stage, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.db))

	rows, err := q.ListStages(ctx, userID)
	if err != nil {
		return nil, postgres.MapError(err, "stages of user", userID)
	}

	stages := make([]domain.Stage, 0, len(rows))
	for _, rw := range rows {
		stages = append(stages, toDomainStage(rw))
	}
	return stages, nil
}

// SeedDefaults inserts one stage per name at positions 0..n-1 and returns
// the user's full stage list. Positions already taken are left untouched,
// so calling it twice is harmless.
func (r *Repo) SeedDefaults(ctx context.Context, userID uuid.UUID, names []string) ([]domain.Stage, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("seed stages: %w", domain.NewValidationError("names", "at least one stage name is required"))
	}

	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.db))

	positions := make([]int32, len(names))
	for i := range names {
		positions[i] = int32(i)
	}
	if err := q.SeedStages(ctx, sqlc.SeedStagesParams{
		UserID:    userID,
		Names:     names,
		Positions: positions,
	}); err != nil {
		return nil, postgres.MapError(err, "stages of user", userID)
	}

	return r.List(ctx, userID)
}
