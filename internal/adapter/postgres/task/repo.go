// Package task implements the task repository using PostgreSQL.
package task

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/leadflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/leadflow-backend/internal/adapter/postgres/task/sqlc"
	"github.com/heartmarshall/leadflow-backend/internal/domain"
)

// Task rows are always read joined with the lead name.
var columns = []string{
	"t.id", "t.user_id", "t.lead_id", "l.name AS lead_name", "t.title", "t.due_date",
	"t.priority", "t.status", "t.type", "t.created_at", "t.completed_at",
}

const priorityRank = "CASE t.priority WHEN 'HIGH' THEN 0 WHEN 'MEDIUM' THEN 1 ELSE 2 END"

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new task repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) selectBase() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(columns...).
		From("tasks t").
		LeftJoin("leads l ON l.id = t.lead_id")
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// ListPending returns pending tasks ordered by priority, then due date.
func (r *Repo) ListPending(ctx context.Context, userID uuid.UUID) ([]domain.Task, error) {
	query := r.selectBase().
		Where(squirrel.Eq{"t.user_id": userID, "t.status": string(domain.TaskStatusPending)}).
		OrderBy(priorityRank, "t.due_date ASC", "t.id ASC")

	return r.selectTasks(ctx, query, userID)
}

// ListCompleted returns at most limit done tasks, most recently completed first.
func (r *Repo) ListCompleted(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Task, error) {
	query := r.selectBase().
		Where(squirrel.Eq{"t.user_id": userID, "t.status": string(domain.TaskStatusDone)}).
		OrderBy("t.completed_at DESC", "t.id ASC").
		Limit(uint64(limit))

	return r.selectTasks(ctx, query, userID)
}

// GetByID returns a task owned by the user.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := r.selectBase().
		Where(squirrel.Eq{"t.id": taskID, "t.user_id": userID})

	var rw row
	if err := postgres.Get(ctx, q, &rw, query); err != nil {
		return nil, postgres.MapError(err, "task", taskID)
	}
	t, err := rw.toDomain()
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a pending task and returns it with the lead name resolved.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, t *domain.Task) (*domain.Task, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	insert := postgres.Builder().
		Insert("tasks").
		Columns("user_id", "lead_id", "title", "due_date", "priority", "status", "type").
		Values(userID, t.LeadID, t.Title, t.DueDate, string(t.Priority), string(domain.TaskStatusPending), string(t.Type)).
		Suffix("RETURNING id")

	sql, args, err := insert.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build statement: %w", err)
	}

	var id uuid.UUID
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "task", t.ID)
	}

	return r.GetByID(ctx, userID, id)
}

// SetStatus marks a task done (stamping completed_at) or pending again
// (clearing it) and returns the updated task.
func (r *Repo) SetStatus(ctx context.Context, userID, taskID uuid.UUID, status domain.TaskStatus) (*domain.Task, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("task %s: %w", taskID, domain.NewValidationError("status", "unknown task status"))
	}

	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.db))

	n, err := q.SetTaskStatus(ctx, sqlc.SetTaskStatusParams{
		Status: string(status),
		ID:     taskID,
		UserID: userID,
	})
	if err != nil {
		return nil, postgres.MapError(err, "task", taskID)
	}
	if n == 0 {
		return nil, fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	}

	return r.GetByID(ctx, userID, taskID)
}

// DeleteCompletedBefore removes done tasks completed before the cutoff for
// every user and returns how many were deleted.
func (r *Repo) DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	stmt := postgres.Builder().
		Delete("tasks").
		Where(squirrel.Eq{"status": string(domain.TaskStatusDone)}).
		Where(squirrel.Lt{"completed_at": cutoff})

	tag, err := postgres.Exec(ctx, q, stmt)
	if err != nil {
		return 0, fmt.Errorf("delete completed tasks: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func (r *Repo) selectTasks(ctx context.Context, query squirrel.Sqlizer, userID uuid.UUID) ([]domain.Task, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []row
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "tasks of user", userID)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, rw := range rows {
		t, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

type row struct {
	ID          uuid.UUID  `db:"id"`
	UserID      uuid.UUID  `db:"user_id"`
	LeadID      *uuid.UUID `db:"lead_id"`
	LeadName    *string    `db:"lead_name"`
	Title       string     `db:"title"`
	DueDate     time.Time  `db:"due_date"`
	Priority    string     `db:"priority"`
	Status      string     `db:"status"`
	Type        string     `db:"type"`
	CreatedAt   time.Time  `db:"created_at"`
	CompletedAt *time.Time `db:"completed_at"`
}

func (r row) toDomain() (domain.Task, error) {
	t := domain.Task{
		ID:          r.ID,
		UserID:      r.UserID,
		LeadID:      r.LeadID,
		LeadName:    r.LeadName,
		Title:       r.Title,
		DueDate:     r.DueDate,
		Priority:    domain.TaskPriority(r.Priority),
		Status:      domain.TaskStatus(r.Status),
		Type:        domain.TaskType(r.Type),
		CreatedAt:   r.CreatedAt,
		CompletedAt: r.CompletedAt,
	}
	switch {
	case !t.Priority.IsValid():
		return domain.Task{}, fmt.Errorf("task %s: priority %q: %w", r.ID, r.Priority, domain.ErrValidation)
	case !t.Status.IsValid():
		return domain.Task{}, fmt.Errorf("task %s: status %q: %w", r.ID, r.Status, domain.ErrValidation)
	case !t.Type.IsValid():
		return domain.Task{}, fmt.Errorf("task %s: type %q: %w", r.ID, r.Type, domain.ErrValidation)
	}
	return t, nil
}
