// Package task serves a user's daily task board: the pending list in
// priority order, the recently completed list, and the P1-P3 focus buckets.
package task

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/leadflow-backend/internal/domain"
)

// DefaultCompletedLimit caps the completed list when no limit is configured.
const DefaultCompletedLimit = 50

type taskRepo interface {
	ListPending(ctx context.Context, userID uuid.UUID) ([]domain.Task, error)
	ListCompleted(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Task, error)
	Create(ctx context.Context, userID uuid.UUID, task *domain.Task) (*domain.Task, error)
	SetStatus(ctx context.Context, userID, taskID uuid.UUID, status domain.TaskStatus) (*domain.Task, error)
}

type leadLookup interface {
	GetByID(ctx context.Context, userID, leadID uuid.UUID) (*domain.Lead, error)
}

// Board is the task view of one user.
type Board struct {
	Pending   []domain.Task
	Completed []domain.Task

	// P1, P2 and P3 bucket the pending tasks. A task may sit in more than one.
	P1 []domain.Task
	P2 []domain.Task
	P3 []domain.Task
}

// Service provides task board operations. Boards are cached per user and
// patched by Complete and CreateManual under mu; store I/O happens outside it.
type Service struct {
	tasks          taskRepo
	leads          leadLookup
	completedLimit int
	log            *slog.Logger
	now            func() time.Time

	mu     sync.Mutex
	boards map[uuid.UUID]Board
}

// NewService creates a new task service.
func NewService(
	log *slog.Logger,
	tasks taskRepo,
	leads leadLookup,
	completedLimit int,
) *Service {
	if completedLimit <= 0 {
		completedLimit = DefaultCompletedLimit
	}
	return &Service{
		tasks:          tasks,
		leads:          leads,
		completedLimit: completedLimit,
		log:            log.With("service", "task"),
		now:            time.Now,
		boards:         make(map[uuid.UUID]Board),
	}
}

// newBoard builds a board and its buckets from the two lists.
func newBoard(pending, completed []domain.Task) Board {
	b := Board{
		Pending:   pending,
		Completed: completed,
		P1:        []domain.Task{},
		P2:        []domain.Task{},
		P3:        []domain.Task{},
	}
	for _, t := range pending {
		if t.Type == domain.TaskTypeNewLead || t.Priority == domain.TaskPriorityHigh {
			b.P1 = append(b.P1, t)
		}
		if t.Type == domain.TaskTypeRuleEngine && t.Priority == domain.TaskPriorityMedium {
			b.P2 = append(b.P2, t)
		}
		if t.Type == domain.TaskTypeManual || t.Priority == domain.TaskPriorityLow {
			b.P3 = append(b.P3, t)
		}
	}
	return b
}

func (b Board) clone() Board {
	return Board{
		Pending:   slices.Clone(b.Pending),
		Completed: slices.Clone(b.Completed),
		P1:        slices.Clone(b.P1),
		P2:        slices.Clone(b.P2),
		P3:        slices.Clone(b.P3),
	}
}

func (s *Service) cached(userID uuid.UUID) (Board, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.boards[userID]
	return b, ok
}

func (s *Service) store(userID uuid.UUID, b Board) {
	s.mu.Lock()
	s.boards[userID] = b
	s.mu.Unlock()
}

// storeIfAbsent caches b unless another call already cached a board, and
// returns whichever board ends up cached.
func (s *Service) storeIfAbsent(userID uuid.UUID, b Board) Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.boards[userID]; ok {
		return cur
	}
	s.boards[userID] = b
	return b
}

// patch applies fn to the cached board and stores the result in one
// critical section, so concurrent patches never overwrite each other. When
// nothing is cached fn runs on base, or is skipped if base is nil. fn must
// not block.
func (s *Service) patch(userID uuid.UUID, base *Board, fn func(Board) (Board, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.boards[userID]
	if !ok {
		if base == nil {
			return nil
		}
		cur = *base
	}
	next, err := fn(cur)
	if err != nil {
		return err
	}
	s.boards[userID] = next
	return nil
}

func (s *Service) forget(userID uuid.UUID) {
	s.mu.Lock()
	delete(s.boards, userID)
	s.mu.Unlock()
}
