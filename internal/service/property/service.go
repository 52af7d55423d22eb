// Package property manages a user's real-estate listings.
package property

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/leadflow-backend/internal/domain"
	"github.com/heartmarshall/leadflow-backend/pkg/ctxutil"
)

type propertyRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Property, error)
	Search(ctx context.Context, userID uuid.UUID, term string) ([]domain.Property, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Property, error)
	GetForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.Property, error)
	Create(ctx context.Context, userID uuid.UUID, p *domain.Property) (*domain.Property, error)
	Update(ctx context.Context, userID, id uuid.UUID, params domain.PropertyUpdateParams) (*domain.Property, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides property catalog operations.
type Service struct {
	properties propertyRepo
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new property service.
func NewService(
	log *slog.Logger,
	properties propertyRepo,
	tx txManager,
) *Service {
	return &Service{
		properties: properties,
		tx:         tx,
		log:        log.With("service", "property"),
	}
}

// List returns the caller's properties, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Property, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	props, err := s.properties.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	return props, nil
}

// Search matches term against name, location and description.
// An empty term lists everything.
func (s *Service) Search(ctx context.Context, term string) ([]domain.Property, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) > maxSearchLength {
		return nil, domain.NewValidationError("q", "max 200 characters")
	}

	props, err := s.properties.Search(ctx, userID, term)
	if err != nil {
		return nil, fmt.Errorf("search properties: %w", err)
	}
	return props, nil
}

// Get returns one property.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.properties.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get property: %w", err)
	}
	return p, nil
}

// Create validates and stores a new property. Status defaults to AVAILABLE.
func (s *Service) Create(ctx context.Context, input CreatePropertyInput) (*domain.Property, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.properties.Create(ctx, userID, input.toProperty())
	if err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}

	s.log.InfoContext(ctx, "property created",
		slog.String("user_id", userID.String()),
		slog.String("property_id", created.ID.String()),
	)

	return created, nil
}

// Update applies a partial update. The row is locked while the merged
// result is checked, so a concurrent update cannot slip between the two.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdatePropertyInput) (*domain.Property, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	params := input.toParams()

	var updated *domain.Property
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.properties.GetForUpdate(ctx, userID, id)
		if err != nil {
			return fmt.Errorf("get property: %w", err)
		}

		if err := checkTransition(current.Status, params.Status); err != nil {
			return err
		}

		updated, err = s.properties.Update(ctx, userID, id, params)
		if err != nil {
			return fmt.Errorf("update property: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "property updated",
		slog.String("user_id", userID.String()),
		slog.String("property_id", id.String()),
	)

	return updated, nil
}

// checkTransition rejects changing a sold listing back to the market.
func checkTransition(current domain.PropertyStatus, next *domain.PropertyStatus) error {
	if next == nil || *next == current {
		return nil
	}
	if current == domain.PropertyStatusSold {
		return domain.NewValidationError("status", "sold property cannot change status")
	}
	return nil
}
