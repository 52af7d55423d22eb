// Package property implements the property listing repository using PostgreSQL.
package property

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/leadflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/leadflow-backend/internal/domain"
)

var columns = []string{
	"id", "user_id", "name", "location", "status", "type", "purpose", "price",
	"bedrooms", "suites", "bathrooms", "parking_spots", "description", "images",
	"created_at", "updated_at",
}

var columnList = strings.Join(columns, ", ")

// Repo provides property persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new property repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// List returns the user's properties, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.Property, error) {
	query := postgres.Builder().
		Select(columns...).
		From("properties").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id ASC")

	return r.selectProperties(ctx, query, userID)
}

// Search matches term against name, location and description.
func (r *Repo) Search(ctx context.Context, userID uuid.UUID, term string) ([]domain.Property, error) {
	query := squirrel.Expr("SELECT "+columnList+" FROM search_properties($1, $2)", userID, term)
	return r.selectProperties(ctx, query, userID)
}

// GetByID returns a property owned by the user.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Property, error) {
	query := postgres.Builder().
		Select(columns...).
		From("properties").
		Where(squirrel.Eq{"id": id, "user_id": userID})

	return r.getProperty(ctx, query, id)
}

// GetForUpdate is GetByID with a row lock. Call it inside a transaction.
func (r *Repo) GetForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.Property, error) {
	query := postgres.Builder().
		Select(columns...).
		From("properties").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("FOR UPDATE")

	return r.getProperty(ctx, query, id)
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a property and returns the stored row.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, p *domain.Property) (*domain.Property, error) {
	images, err := encodeImages(p.Images)
	if err != nil {
		return nil, err
	}

	insert := postgres.Builder().
		Insert("properties").
		Columns("user_id", "name", "location", "status", "type", "purpose", "price",
			"bedrooms", "suites", "bathrooms", "parking_spots", "description", "images").
		Values(userID, p.Name, p.Location, string(p.Status), string(p.Type), string(p.Purpose), p.Price.String(),
			p.Bedrooms, p.Suites, p.Bathrooms, p.ParkingSpots, p.Description, images).
		Suffix("RETURNING " + columnList)

	return r.getProperty(ctx, insert, p.ID)
}

// Update applies the non-nil fields of params and returns the stored row.
// Returns domain.ErrNotFound if the property does not exist for the user.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, params domain.PropertyUpdateParams) (*domain.Property, error) {
	stmt := postgres.Builder().
		Update("properties").
		Set("updated_at", squirrel.Expr("now()"))

	if params.Name != nil {
		stmt = stmt.Set("name", *params.Name)
	}
	if params.Location != nil {
		stmt = stmt.Set("location", *params.Location)
	}
	if params.Status != nil {
		stmt = stmt.Set("status", string(*params.Status))
	}
	if params.Type != nil {
		stmt = stmt.Set("type", string(*params.Type))
	}
	if params.Purpose != nil {
		stmt = stmt.Set("purpose", string(*params.Purpose))
	}
	if params.Price != nil {
		stmt = stmt.Set("price", params.Price.String())
	}
	if params.Bedrooms != nil {
		stmt = stmt.Set("bedrooms", *params.Bedrooms)
	}
	if params.Suites != nil {
		stmt = stmt.Set("suites", *params.Suites)
	}
	if params.Bathrooms != nil {
		stmt = stmt.Set("bathrooms", *params.Bathrooms)
	}
	if params.ParkingSpots != nil {
		stmt = stmt.Set("parking_spots", *params.ParkingSpots)
	}
	if params.Description != nil {
		stmt = stmt.Set("description", *params.Description)
	}
	if params.Images != nil {
		images, err := encodeImages(params.Images)
		if err != nil {
			return nil, err
		}
		stmt = stmt.Set("images", images)
	}

	stmt = stmt.
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + columnList)

	return r.getProperty(ctx, stmt, id)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getProperty(ctx context.Context, query squirrel.Sqlizer, id uuid.UUID) (*domain.Property, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rw row
	if err := postgres.Get(ctx, q, &rw, query); err != nil {
		return nil, postgres.MapError(err, "property", id)
	}
	p, err := rw.toDomain()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repo) selectProperties(ctx context.Context, query squirrel.Sqlizer, userID uuid.UUID) ([]domain.Property, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []row
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "properties of user", userID)
	}

	out := make([]domain.Property, 0, len(rows))
	for _, rw := range rows {
		p, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func encodeImages(images []string) ([]byte, error) {
	if images == nil {
		images = []string{}
	}
	raw, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("property: encode images: %w", err)
	}
	return raw, nil
}

type row struct {
	ID           uuid.UUID       `db:"id"`
	UserID       uuid.UUID       `db:"user_id"`
	Name         string          `db:"name"`
	Location     string          `db:"location"`
	Status       string          `db:"status"`
	Type         string          `db:"type"`
	Purpose      string          `db:"purpose"`
	Price        decimal.Decimal `db:"price"`
	Bedrooms     int             `db:"bedrooms"`
	Suites       int             `db:"suites"`
	Bathrooms    int             `db:"bathrooms"`
	ParkingSpots int             `db:"parking_spots"`
	Description  *string         `db:"description"`
	Images       []byte          `db:"images"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

func (r row) toDomain() (domain.Property, error) {
	p := domain.Property{
		ID:           r.ID,
		UserID:       r.UserID,
		Name:         r.Name,
		Location:     r.Location,
		Status:       domain.PropertyStatus(r.Status),
		Type:         domain.PropertyType(r.Type),
		Purpose:      domain.Purpose(r.Purpose),
		Price:        r.Price,
		Bedrooms:     r.Bedrooms,
		Suites:       r.Suites,
		Bathrooms:    r.Bathrooms,
		ParkingSpots: r.ParkingSpots,
		Description:  r.Description,
		Images:       []string{},
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	switch {
	case !p.Status.IsValid():
		return domain.Property{}, fmt.Errorf("property %s: status %q: %w", r.ID, r.Status, domain.ErrValidation)
	case !p.Type.IsValid():
		return domain.Property{}, fmt.Errorf("property %s: type %q: %w", r.ID, r.Type, domain.ErrValidation)
	case !p.Purpose.IsValid():
		return domain.Property{}, fmt.Errorf("property %s: purpose %q: %w", r.ID, r.Purpose, domain.ErrValidation)
	}
	if len(r.Images) > 0 {
		if err := json.Unmarshal(r.Images, &p.Images); err != nil {
			return domain.Property{}, fmt.Errorf("property %s: decode images: %w", r.ID, err)
		}
	}
	return p, nil
}
