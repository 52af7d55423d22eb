package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/leadflow-backend/internal/domain"
	"github.com/heartmarshall/leadflow-backend/pkg/ctxutil"
)

// Registry holds one Controller per user, created on first use and dropped
// by EvictIdle once unused for long enough.
type Registry struct {
	log       *slog.Logger
	stages    stageRepo
	leads     leadRepo
	events    eventRepo
	publisher eventPublisher
	opts      Options
	now       func() time.Time

	mu          sync.Mutex
	controllers map[uuid.UUID]*registryEntry
}

type registryEntry struct {
	ctrl     *Controller
	lastUsed time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry(
	log *slog.Logger,
	stages stageRepo,
	leads leadRepo,
	events eventRepo,
	publisher eventPublisher,
	opts Options,
) *Registry {
	return &Registry{
		log:         log,
		stages:      stages,
		leads:       leads,
		events:      events,
		publisher:   publisher,
		opts:        opts,
		now:         time.Now,
		controllers: make(map[uuid.UUID]*registryEntry),
	}
}

// For returns the caller's controller, initializing its board if it has
// never loaded successfully.
func (r *Registry) For(ctx context.Context) (*Controller, error) {
	c, err := r.Lookup(ctx)
	if err != nil {
		return nil, err
	}

	if !c.Snapshot().Ready {
		if err := c.Initialize(ctx); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Lookup returns the caller's controller without loading its board. Reads
// that go straight to the store, like Search, need nothing more.
func (r *Registry) Lookup(ctx context.Context) (*Controller, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.controllers[userID]
	if !ok {
		e = &registryEntry{ctrl: NewController(r.log, userID, r.stages, r.leads, r.events, r.publisher, r.opts)}
		r.controllers[userID] = e
	}
	e.lastUsed = now
	return e.ctrl, nil
}

// EvictIdle drops every controller not looked up within idle and drains
// its in-flight moves. It returns how many were dropped. A later request
// from the same user starts over with a fresh board.
func (r *Registry) EvictIdle(ctx context.Context, idle time.Duration) (int, error) {
	cutoff := r.now().Add(-idle)

	r.mu.Lock()
	var stale []*Controller
	for userID, e := range r.controllers {
		if !e.lastUsed.After(cutoff) {
			stale = append(stale, e.ctrl)
			delete(r.controllers, userID)
		}
	}
	r.mu.Unlock()

	return len(stale), closeAll(ctx, stale)
}

// SweepIdle runs EvictIdle every interval until ctx is done.
func (r *Registry) SweepIdle(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := r.EvictIdle(ctx, idle)
			if err != nil {
				r.log.WarnContext(ctx, "evict idle pipelines", slog.String("error", err.Error()))
			}
			if n > 0 {
				r.log.DebugContext(ctx, "idle pipelines evicted", slog.Int("count", n))
			}
		}
	}
}

// Close drains every controller.
func (r *Registry) Close(ctx context.Context) error {
	r.mu.Lock()
	controllers := make([]*Controller, 0, len(r.controllers))
	for _, e := range r.controllers {
		controllers = append(controllers, e.ctrl)
	}
	r.mu.Unlock()

	return closeAll(ctx, controllers)
}

func closeAll(ctx context.Context, controllers []*Controller) error {
	var errs []error
	for _, c := range controllers {
		if err := c.Close(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
