// Package pipeline keeps a user's kanban board of active leads in memory
// and applies stage moves optimistically, reconciling with the store when a
// write fails.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/leadflow-backend/internal/domain"
	"github.com/heartmarshall/leadflow-backend/pkg/ctxutil"
)

type stageRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Stage, error)
	SeedDefaults(ctx context.Context, userID uuid.UUID, names []string) ([]domain.Stage, error)
}

type leadRepo interface {
	ListActive(ctx context.Context, userID uuid.UUID) ([]domain.Lead, error)
	GetByID(ctx context.Context, userID, leadID uuid.UUID) (*domain.Lead, error)
	Create(ctx context.Context, userID uuid.UUID, lead *domain.Lead) (*domain.Lead, error)
	Update(ctx context.Context, userID, leadID uuid.UUID, upd domain.LeadUpdate) (*domain.Lead, error)
	Reactivate(ctx context.Context, userID, leadID uuid.UUID) (*domain.Lead, error)
	SearchInactive(ctx context.Context, userID uuid.UUID, outcome *domain.Outcome) ([]domain.Lead, error)
	Search(ctx context.Context, userID uuid.UUID, term string, outcome *domain.Outcome) ([]domain.Lead, error)
}

type eventRepo interface {
	Append(ctx context.Context, userID uuid.UUID, e domain.LeadEvent) (*domain.LeadEvent, error)
	ListByLead(ctx context.Context, userID, leadID uuid.UUID) ([]domain.LeadEvent, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, e domain.LeadEvent) error
}

// ErrClosed is returned by MoveLead once Close has been called.
var ErrClosed = errors.New("pipeline controller closed")

const unknownStageName = "unknown stage"

// Options tunes a Controller.
type Options struct {
	// PersistTimeout bounds each background stage write.
	PersistTimeout time.Duration
	// DefaultStages is seeded, in order, for a user with no stages.
	DefaultStages []string
}

func (o Options) withDefaults() Options {
	if o.PersistTimeout <= 0 {
		o.PersistTimeout = 10 * time.Second
	}
	if len(o.DefaultStages) == 0 {
		o.DefaultStages = domain.DefaultStageNames
	}
	return o
}

// Board is a point-in-time view of a user's pipeline.
type Board struct {
	Stages   []domain.Stage
	Leads    []domain.Lead
	Ready    bool
	LoadedAt time.Time
}

// Controller owns one user's board. All methods are safe for concurrent use.
//
// The board is republished whole on every change: readers holding a
// Snapshot never observe a later mutation.
type Controller struct {
	userID    uuid.UUID
	stages    stageRepo
	leads     leadRepo
	events    eventRepo
	publisher eventPublisher
	opts      Options
	log       *slog.Logger
	now       func() time.Time

	mu     sync.Mutex
	board  Board
	closed bool

	inflight sync.WaitGroup
}

// NewController creates a controller for userID. The board is empty and
// not ready until Initialize succeeds.
func NewController(
	log *slog.Logger,
	userID uuid.UUID,
	stages stageRepo,
	leads leadRepo,
	events eventRepo,
	publisher eventPublisher,
	opts Options,
) *Controller {
	return &Controller{
		userID:    userID,
		stages:    stages,
		leads:     leads,
		events:    events,
		publisher: publisher,
		opts:      opts.withDefaults(),
		log:       log.With("service", "pipeline", slog.String("owner_id", userID.String())),
		now:       time.Now,
		board: Board{
			Stages: []domain.Stage{},
			Leads:  []domain.Lead{},
		},
	}
}

// Snapshot returns a copy of the current board.
func (c *Controller) Snapshot() Board {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Board{
		Stages:   slices.Clone(c.board.Stages),
		Leads:    slices.Clone(c.board.Leads),
		Ready:    c.board.Ready,
		LoadedAt: c.board.LoadedAt,
	}
}

// Close stops accepting moves and waits for in-flight move writes to finish
// or for ctx to expire.
func (c *Controller) Close(ctx context.Context) error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		c.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("close pipeline: %w", ctx.Err())
	}
}

// authorize returns the caller's id. A controller only serves its owner.
func (c *Controller) authorize(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if userID != c.userID {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}

// setLeads republishes the board with leads replacing the current list.
func (c *Controller) setLeads(leads []domain.Lead) {
	c.mu.Lock()
	c.board = Board{
		Stages:   c.board.Stages,
		Leads:    leads,
		Ready:    c.board.Ready,
		LoadedAt: c.board.LoadedAt,
	}
	c.mu.Unlock()
}

// stageName looks the stage up on the current board.
func (c *Controller) stageName(stageID uuid.UUID) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := domain.StageByID(c.board.Stages, stageID); ok {
		return s.Name
	}
	return unknownStageName
}

// recordEvent appends an event and publishes it. Both steps are best-effort:
// failures are logged and swallowed.
func (c *Controller) recordEvent(ctx context.Context, userID, leadID uuid.UUID, typ domain.EventType, details map[string]any) {
	if details == nil {
		details = map[string]any{}
	}

	stored, err := c.events.Append(ctx, userID, domain.LeadEvent{
		UserID:  userID,
		LeadID:  leadID,
		Type:    typ,
		Details: details,
	})
	if err != nil {
		c.log.WarnContext(ctx, "lead event not recorded",
			slog.String("lead_id", leadID.String()),
			slog.String("event_type", typ.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	c.publish(ctx, *stored)
}

func (c *Controller) publish(ctx context.Context, e domain.LeadEvent) {
	if err := c.publisher.Publish(ctx, e); err != nil {
		c.log.WarnContext(ctx, "lead event not published",
			slog.String("lead_id", e.LeadID.String()),
			slog.String("event_type", e.Type.String()),
			slog.String("error", err.Error()),
		)
	}
}
