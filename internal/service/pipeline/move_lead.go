package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/leadflow-backend/internal/domain"
)

// Move tracks the background write of one stage move.
type Move struct {
	LeadID  uuid.UUID
	StageID uuid.UUID

	noop bool
	done chan struct{}
	err  error
}

func newMove(leadID, stageID uuid.UUID) *Move {
	return &Move{LeadID: leadID, StageID: stageID, done: make(chan struct{})}
}

func (m *Move) finish(err error) {
	m.err = err
	close(m.done)
}

// Done is closed once the move is persisted or reconciled.
func (m *Move) Done() <-chan struct{} { return m.done }

// Err returns the persistence error, or nil while pending or on success.
func (m *Move) Err() error {
	select {
	case <-m.done:
		return m.err
	default:
		return nil
	}
}

// Wait blocks until the move resolves or ctx is done.
func (m *Move) Wait(ctx context.Context) error {
	select {
	case <-m.done:
		return m.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Noop reports whether the lead was already on the target stage.
func (m *Move) Noop() bool { return m.noop }

// MoveLead moves a lead to another stage on the board right away and
// persists the change in the background.
//
// If the write fails, the lead list is reloaded from the store and the
// returned Move resolves with a *domain.PersistenceError. Moving a lead to
// its current stage writes nothing.
func (c *Controller) MoveLead(ctx context.Context, leadID, stageID uuid.UUID) (*Move, error) {
	userID, err := c.authorize(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}

	idx := slices.IndexFunc(c.board.Leads, func(l domain.Lead) bool { return l.ID == leadID })
	if idx < 0 {
		c.mu.Unlock()
		return nil, fmt.Errorf("lead %s: %w", leadID, domain.ErrNotFound)
	}
	if _, ok := domain.StageByID(c.board.Stages, stageID); !ok {
		c.mu.Unlock()
		return nil, fmt.Errorf("stage %s: %w", stageID, domain.ErrNotFound)
	}

	move := newMove(leadID, stageID)
	if c.board.Leads[idx].StageID == stageID {
		c.mu.Unlock()
		move.noop = true
		move.finish(nil)
		return move, nil
	}

	leads := slices.Clone(c.board.Leads)
	leads[idx].StageID = stageID
	leads[idx].UpdatedAt = c.now()
	c.board = Board{
		Stages:   c.board.Stages,
		Leads:    leads,
		Ready:    c.board.Ready,
		LoadedAt: c.board.LoadedAt,
	}
	c.inflight.Add(1)
	c.mu.Unlock()

	go c.persistMove(context.WithoutCancel(ctx), userID, move)

	return move, nil
}

func (c *Controller) persistMove(ctx context.Context, userID uuid.UUID, move *Move) {
	defer c.inflight.Done()

	ctx, cancel := context.WithTimeout(ctx, c.opts.PersistTimeout)
	defer cancel()

	_, err := c.leads.Update(ctx, userID, move.LeadID, domain.LeadUpdate{StageID: &move.StageID})
	if err != nil {
		perr := domain.NewPersistenceError("move lead", err)
		c.log.WarnContext(ctx, "lead move failed, reconciling",
			slog.String("lead_id", move.LeadID.String()),
			slog.String("stage_id", move.StageID.String()),
			slog.String("error", err.Error()),
		)
		if rerr := c.reloadLeads(ctx, userID); rerr != nil {
			c.log.ErrorContext(ctx, "pipeline reconcile failed",
				slog.String("lead_id", move.LeadID.String()),
				slog.String("error", rerr.Error()),
			)
		}
		move.finish(perr)
		return
	}

	c.recordEvent(ctx, userID, move.LeadID, domain.EventTypeMovement, map[string]any{
		"to": c.stageName(move.StageID),
	})

	c.log.InfoContext(ctx, "lead moved",
		slog.String("user_id", userID.String()),
		slog.String("lead_id", move.LeadID.String()),
		slog.String("stage_id", move.StageID.String()),
	)
	move.finish(nil)
}
