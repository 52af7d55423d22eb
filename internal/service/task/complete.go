package task

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/leadflow-backend/internal/domain"
	"github.com/heartmarshall/leadflow-backend/pkg/ctxutil"
)

// Complete marks a pending task done. The cached board moves the task to
// the top of the completed list before the store is written; a store
// failure refetches the board and returns a *domain.PersistenceError.
func (s *Service) Complete(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	b, err := s.boardFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	err = s.patch(userID, &b, func(cur Board) (Board, error) {
		idx := slices.IndexFunc(cur.Pending, func(t domain.Task) bool { return t.ID == taskID })
		if idx < 0 {
			return cur, fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
		}

		done := cur.Pending[idx]
		done.Status = domain.TaskStatusDone
		done.CompletedAt = &now

		pending := slices.Delete(slices.Clone(cur.Pending), idx, idx+1)
		completed := append([]domain.Task{done}, cur.Completed...)
		if len(completed) > s.completedLimit {
			completed = completed[:s.completedLimit]
		}
		return newBoard(pending, completed), nil
	})
	if err != nil {
		return nil, err
	}

	stored, err := s.tasks.SetStatus(ctx, userID, taskID, domain.TaskStatusDone)
	if err != nil {
		perr := domain.NewPersistenceError("complete task", err)
		s.log.WarnContext(ctx, "task completion failed, reloading",
			slog.String("task_id", taskID.String()),
			slog.String("error", err.Error()),
		)
		if _, rerr := s.load(ctx, userID); rerr != nil {
			s.forget(userID)
			s.log.ErrorContext(ctx, "task board reload failed",
				slog.String("error", rerr.Error()),
			)
		}
		return nil, perr
	}

	s.log.InfoContext(ctx, "task completed",
		slog.String("user_id", userID.String()),
		slog.String("task_id", taskID.String()),
	)

	return stored, nil
}

// Reopen puts a completed task back on the pending list and reloads the
// cached board.
func (s *Service) Reopen(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	stored, err := s.tasks.SetStatus(ctx, userID, taskID, domain.TaskStatusPending)
	if err != nil {
		return nil, domain.NewPersistenceError("reopen task", err)
	}

	if _, err := s.load(ctx, userID); err != nil {
		s.forget(userID)
		s.log.WarnContext(ctx, "task board reload after reopen failed",
			slog.String("task_id", taskID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "task reopened",
		slog.String("user_id", userID.String()),
		slog.String("task_id", taskID.String()),
	)

	return stored, nil
}
