package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/leadflow-backend/internal/domain"
	"github.com/heartmarshall/leadflow-backend/internal/service/task"
)

//go:generate moq -out task_service_mock_test.go -pkg rest . taskService

type taskService interface {
	Board(ctx context.Context) (task.Board, error)
	CreateManual(ctx context.Context, input task.CreateTaskInput) (*domain.Task, error)
	Complete(ctx context.Context, taskID uuid.UUID) (*domain.Task, error)
	Reopen(ctx context.Context, taskID uuid.UUID) (*domain.Task, error)
}

// TaskHandler serves the daily task endpoints.
type TaskHandler struct {
	svc taskService
	log *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc taskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: logger.With("handler", "task")}
}

// Board handles GET /tasks.
func (h *TaskHandler) Board(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.Board(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskBoardResponse(b))
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := task.CreateTaskInput{
		Title:    req.Title,
		DueDate:  req.DueDate,
		Priority: domain.TaskPriority(strings.ToUpper(req.Priority)),
	}
	if req.LeadID != nil {
		id, err := uuid.Parse(*req.LeadID)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("leadId", "must be a UUID"))
			return
		}
		input.LeadID = &id
	}

	created, err := h.svc.CreateManual(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTaskResponse(*created))
}

// Complete handles POST /tasks/{id}/complete.
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.svc.Complete)
}

// Reopen handles POST /tasks/{id}/reopen.
func (h *TaskHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.svc.Reopen)
}

func (h *TaskHandler) setStatus(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID) (*domain.Task, error)) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := fn(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponse(*t))
}
