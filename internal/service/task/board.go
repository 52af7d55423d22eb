package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/leadflow-backend/internal/domain"
	"github.com/heartmarshall/leadflow-backend/pkg/ctxutil"
)

// Board loads the caller's pending and completed tasks and caches the result.
func (s *Service) Board(ctx context.Context) (Board, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Board{}, domain.ErrUnauthorized
	}

	b, err := s.load(ctx, userID)
	if err != nil {
		return Board{}, err
	}
	return b.clone(), nil
}

// load fetches both lists and replaces the cached board.
func (s *Service) load(ctx context.Context, userID uuid.UUID) (Board, error) {
	b, err := s.fetch(ctx, userID)
	if err != nil {
		return Board{}, err
	}
	s.store(userID, b)
	return b, nil
}

// fetch reads both lists in parallel without touching the cache.
func (s *Service) fetch(ctx context.Context, userID uuid.UUID) (Board, error) {
	var pending, completed []domain.Task

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pending, err = s.tasks.ListPending(gctx, userID)
		if err != nil {
			return fmt.Errorf("list pending tasks: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		completed, err = s.tasks.ListCompleted(gctx, userID, s.completedLimit)
		if err != nil {
			return fmt.Errorf("list completed tasks: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Board{}, domain.NewPersistenceError("load tasks", err)
	}

	return newBoard(pending, completed), nil
}

// boardFor returns the cached board, loading it on first use. A board
// cached by a concurrent call while this one was fetching is kept, since it
// may already carry that call's patch.
func (s *Service) boardFor(ctx context.Context, userID uuid.UUID) (Board, error) {
	if b, ok := s.cached(userID); ok {
		return b, nil
	}
	b, err := s.fetch(ctx, userID)
	if err != nil {
		return Board{}, err
	}
	return s.storeIfAbsent(userID, b), nil
}
