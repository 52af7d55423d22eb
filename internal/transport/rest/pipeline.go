package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/leadflow-backend/internal/domain"
	"github.com/heartmarshall/leadflow-backend/internal/service/pipeline"
)

//go:generate moq -out pipeline_controller_mock_test.go -pkg rest . pipelineController

type pipelineController interface {
	Snapshot() pipeline.Board
	Initialize(ctx context.Context) error
	AddLead(ctx context.Context, draft pipeline.LeadDraft) (*domain.Lead, error)
	MoveLead(ctx context.Context, leadID, stageID uuid.UUID) (*pipeline.Move, error)
	ResolveOutcome(ctx context.Context, leadID uuid.UUID, outcome domain.Outcome, details map[string]any) (*domain.Lead, error)
	AddNote(ctx context.Context, leadID uuid.UUID, text string) (*domain.LeadEvent, error)
	ListEvents(ctx context.Context, leadID uuid.UUID) ([]domain.LeadEvent, error)
	SearchInactive(ctx context.Context, outcome *domain.Outcome) ([]domain.Lead, error)
	Search(ctx context.Context, query string, outcome *domain.Outcome) ([]domain.Lead, error)
}

type controllerRegistry interface {
	For(ctx context.Context) (*pipeline.Controller, error)
	Lookup(ctx context.Context) (*pipeline.Controller, error)
}

// PipelineHandler serves the board and lead endpoints.
type PipelineHandler struct {
	controllerFor func(ctx context.Context) (pipelineController, error)
	// readerFor skips board initialization, for endpoints that read the store directly.
	readerFor func(ctx context.Context) (pipelineController, error)
	log       *slog.Logger
}

// NewPipelineHandler creates a PipelineHandler backed by the per-user registry.
func NewPipelineHandler(reg controllerRegistry, logger *slog.Logger) *PipelineHandler {
	return &PipelineHandler{
		controllerFor: func(ctx context.Context) (pipelineController, error) {
			c, err := reg.For(ctx)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
		readerFor: func(ctx context.Context) (pipelineController, error) {
			c, err := reg.Lookup(ctx)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
		log: logger.With("handler", "pipeline"),
	}
}

// controller resolves the caller's controller or writes the error.
func (h *PipelineHandler) controller(w http.ResponseWriter, r *http.Request) (pipelineController, bool) {
	c, err := h.controllerFor(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return nil, false
	}
	return c, true
}

// reader resolves the caller's controller without loading its board.
func (h *PipelineHandler) reader(w http.ResponseWriter, r *http.Request) (pipelineController, bool) {
	c, err := h.readerFor(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return nil, false
	}
	return c, true
}

// Board handles GET /pipeline.
func (h *PipelineHandler) Board(w http.ResponseWriter, r *http.Request) {
	c, ok := h.controller(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toBoardResponse(c.Snapshot()))
}

// Reload handles POST /pipeline/reload.
func (h *PipelineHandler) Reload(w http.ResponseWriter, r *http.Request) {
	c, ok := h.controller(w, r)
	if !ok {
		return
	}
	if err := c.Initialize(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBoardResponse(c.Snapshot()))
}

// CreateLead handles POST /leads.
func (h *PipelineHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req createLeadRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, ok := h.controller(w, r)
	if !ok {
		return
	}

	lead, err := c.AddLead(r.Context(), req.toDraft())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLeadResponse(*lead))
}

// MoveLead handles PATCH /leads/{id}/stage. The board is updated before
// the write lands, so the answer is 202 unless the lead was already there.
func (h *PipelineHandler) MoveLead(w http.ResponseWriter, r *http.Request) {
	leadID, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req moveLeadRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	stageID, err := uuid.Parse(req.StageID)
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("stageId", "must be a UUID"))
		return
	}

	c, ok := h.controller(w, r)
	if !ok {
		return
	}

	move, err := c.MoveLead(r.Context(), leadID, stageID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusAccepted
	if move.Noop() {
		status = http.StatusOK
	}
	writeJSON(w, status, toBoardResponse(c.Snapshot()))
}

// ResolveOutcome handles POST /leads/{id}/outcome.
func (h *PipelineHandler) ResolveOutcome(w http.ResponseWriter, r *http.Request) {
	leadID, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req resolveOutcomeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, ok := h.controller(w, r)
	if !ok {
		return
	}

	lead, err := c.ResolveOutcome(r.Context(), leadID, domain.Outcome(strings.ToUpper(req.Outcome)), req.Details)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLeadResponse(*lead))
}

// AddNote handles POST /leads/{id}/notes.
func (h *PipelineHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	leadID, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req addNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, ok := h.controller(w, r)
	if !ok {
		return
	}

	event, err := c.AddNote(r.Context(), leadID, req.Text)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventResponse(*event))
}

// ListEvents handles GET /leads/{id}/events.
func (h *PipelineHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	leadID, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, ok := h.reader(w, r)
	if !ok {
		return
	}

	events, err := c.ListEvents(r.Context(), leadID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]eventResponse, len(events))
	for i, e := range events {
		out[i] = toEventResponse(e)
	}
	writeJSON(w, http.StatusOK, out)
}

// Inactive handles GET /leads/inactive?status=WON|LOST.
func (h *PipelineHandler) Inactive(w http.ResponseWriter, r *http.Request) {
	c, ok := h.reader(w, r)
	if !ok {
		return
	}

	leads, err := c.SearchInactive(r.Context(), outcomeQuery(r, "status"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLeadResponses(leads))
}

// Search handles GET /leads/search?q=&status=.
func (h *PipelineHandler) Search(w http.ResponseWriter, r *http.Request) {
	c, ok := h.reader(w, r)
	if !ok {
		return
	}

	leads, err := c.Search(r.Context(), r.URL.Query().Get("q"), outcomeQuery(r, "status"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLeadResponses(leads))
}
