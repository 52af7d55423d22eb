package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/leadflow-backend/internal/domain"
	"github.com/heartmarshall/leadflow-backend/internal/service/property"
)

//go:generate moq -out property_service_mock_test.go -pkg rest . propertyService

type propertyService interface {
	List(ctx context.Context) ([]domain.Property, error)
	Search(ctx context.Context, term string) ([]domain.Property, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	Create(ctx context.Context, input property.CreatePropertyInput) (*domain.Property, error)
	Update(ctx context.Context, id uuid.UUID, input property.UpdatePropertyInput) (*domain.Property, error)
}

// PropertyHandler serves the property catalog endpoints.
type PropertyHandler struct {
	svc propertyService
	log *slog.Logger
}

// NewPropertyHandler creates a PropertyHandler.
func NewPropertyHandler(svc propertyService, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{svc: svc, log: logger.With("handler", "property")}
}

// List handles GET /properties.
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	props, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPropertyResponses(props))
}

// Search handles GET /properties/search?q=.
func (h *PropertyHandler) Search(w http.ResponseWriter, r *http.Request) {
	props, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPropertyResponses(props))
}

// Get handles GET /properties/{id}.
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPropertyResponse(*p))
}

// Create handles POST /properties.
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPropertyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := h.svc.Create(r.Context(), property.CreatePropertyInput{
		Name:         req.Name,
		Location:     req.Location,
		Status:       domain.PropertyStatus(req.Status),
		Type:         domain.PropertyType(req.Type),
		Purpose:      domain.Purpose(req.Purpose),
		Price:        req.Price,
		Bedrooms:     req.Bedrooms,
		Suites:       req.Suites,
		Bathrooms:    req.Bathrooms,
		ParkingSpots: req.ParkingSpots,
		Description:  req.Description,
		Images:       req.Images,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPropertyResponse(*created))
}

// Update handles PATCH /properties/{id}.
func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updatePropertyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	updated, err := h.svc.Update(r.Context(), id, property.UpdatePropertyInput{
		Name:         req.Name,
		Location:     req.Location,
		Status:       enumPtr[domain.PropertyStatus](req.Status),
		Type:         enumPtr[domain.PropertyType](req.Type),
		Purpose:      enumPtr[domain.Purpose](req.Purpose),
		Price:        req.Price,
		Bedrooms:     req.Bedrooms,
		Suites:       req.Suites,
		Bathrooms:    req.Bathrooms,
		ParkingSpots: req.ParkingSpots,
		Description:  req.Description,
		Images:       req.Images,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPropertyResponse(*updated))
}
