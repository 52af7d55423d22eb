package pipeline

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/leadflow-backend/internal/domain"
)

// Initialize loads stages and active leads concurrently and replaces the
// board when both succeed. A user with no stages gets the default set.
// On failure the previous board is kept.
func (c *Controller) Initialize(ctx context.Context) error {
	userID, err := c.authorize(ctx)
	if err != nil {
		return err
	}

	if err := c.reload(ctx, userID); err != nil {
		return err
	}

	board := c.Snapshot()
	c.log.InfoContext(ctx, "pipeline loaded",
		slog.String("user_id", userID.String()),
		slog.Int("stages", len(board.Stages)),
		slog.Int("leads", len(board.Leads)),
	)
	return nil
}

// reload fetches the full board and publishes it.
func (c *Controller) reload(ctx context.Context, userID uuid.UUID) error {
	var (
		stages []domain.Stage
		leads  []domain.Lead
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := c.loadStages(gctx, userID)
		if err != nil {
			return err
		}
		stages = s
		return nil
	})
	g.Go(func() error {
		l, err := c.leads.ListActive(gctx, userID)
		if err != nil {
			return fmt.Errorf("list active leads: %w", err)
		}
		leads = l
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.NewPersistenceError("load pipeline", err)
	}

	if leads == nil {
		leads = []domain.Lead{}
	}

	c.mu.Lock()
	c.board = Board{
		Stages:   stages,
		Leads:    leads,
		Ready:    true,
		LoadedAt: c.now(),
	}
	c.mu.Unlock()
	return nil
}

// reloadLeads replaces only the lead list with a fresh read.
func (c *Controller) reloadLeads(ctx context.Context, userID uuid.UUID) error {
	leads, err := c.leads.ListActive(ctx, userID)
	if err != nil {
		return fmt.Errorf("list active leads: %w", err)
	}
	if leads == nil {
		leads = []domain.Lead{}
	}
	c.setLeads(leads)
	return nil
}

func (c *Controller) loadStages(ctx context.Context, userID uuid.UUID) ([]domain.Stage, error) {
	stages, err := c.stages.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}

	if len(stages) == 0 {
		stages, err = c.stages.SeedDefaults(ctx, userID, c.opts.DefaultStages)
		if err != nil {
			return nil, fmt.Errorf("seed default stages: %w", err)
		}
		c.log.InfoContext(ctx, "default stages seeded",
			slog.String("user_id", userID.String()),
			slog.Int("count", len(stages)),
		)
	}

	stages = slices.Clone(stages)
	slices.SortStableFunc(stages, func(a, b domain.Stage) int {
		return cmp.Compare(a.Position, b.Position)
	})
	return stages, nil
}
