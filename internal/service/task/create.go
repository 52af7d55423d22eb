package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/leadflow-backend/internal/domain"
	"github.com/heartmarshall/leadflow-backend/pkg/ctxutil"
)

// CreateManual creates a MANUAL task and prepends it to the cached pending list.
func (s *Service) CreateManual(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// tasks.lead_id only references leads(id); ownership is checked here.
	if input.LeadID != nil {
		if _, err := s.leads.GetByID(ctx, userID, *input.LeadID); err != nil {
			return nil, fmt.Errorf("get lead: %w", err)
		}
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}

	created, err := s.tasks.Create(ctx, userID, &domain.Task{
		LeadID:   input.LeadID,
		Title:    strings.TrimSpace(input.Title),
		DueDate:  input.DueDate,
		Priority: priority,
		Status:   domain.TaskStatusPending,
		Type:     domain.TaskTypeManual,
	})
	if err != nil {
		return nil, domain.NewPersistenceError("create task", err)
	}

	// Without a cached board there is nothing to patch; the next Board loads it.
	_ = s.patch(userID, nil, func(cur Board) (Board, error) {
		pending := append([]domain.Task{*created}, cur.Pending...)
		return newBoard(pending, cur.Completed), nil
	})

	s.log.InfoContext(ctx, "task created",
		slog.String("user_id", userID.String()),
		slog.String("task_id", created.ID.String()),
		slog.String("priority", created.Priority.String()),
	)

	return created, nil
}
