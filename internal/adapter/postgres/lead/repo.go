// Package lead implements the lead repository using PostgreSQL.
package lead

import (
	"context"
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
	"id", "user_id", "stage_id", "name", "temperature", "email", "phone", "purpose",
	"desired_value", "origin", "origin_details", "notes", "property_of_interest",
	"next_contact_date", "last_activity_at", "outcome", "status", "created_at", "updated_at",
}

var columnList = strings.Join(columns, ", ")

// Repo provides lead persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new lead repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// ListActive returns the user's leads with no outcome, newest first.
func (r *Repo) ListActive(ctx context.Context, userID uuid.UUID) ([]domain.Lead, error) {
	query := postgres.Builder().
		Select(columns...).
		From("leads").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"outcome": nil}).
		OrderBy("created_at DESC", "id ASC")

	return r.selectLeads(ctx, query, "active leads of user", userID)
}

// GetByID returns a lead owned by the user.
// Returns domain.ErrNotFound if it does not exist or belongs to someone else.
func (r *Repo) GetByID(ctx context.Context, userID, leadID uuid.UUID) (*domain.Lead, error) {
	query := postgres.Builder().
		Select(columns...).
		From("leads").
		Where(squirrel.Eq{"id": leadID, "user_id": userID})

	return r.getLead(ctx, query, leadID)
}

// SearchInactive returns resolved leads, optionally filtered by outcome,
// most recently updated first.
func (r *Repo) SearchInactive(ctx context.Context, userID uuid.UUID, outcome *domain.Outcome) ([]domain.Lead, error) {
	query := squirrel.Expr(
		"SELECT "+columnList+" FROM get_inactive_leads($1, $2)",
		userID, outcomeArg(outcome),
	)
	return r.selectLeads(ctx, query, "inactive leads of user", userID)
}

// Search matches term against name, email, phone and notes across all of
// the user's leads, optionally filtered by outcome. A blank term matches all.
func (r *Repo) Search(ctx context.Context, userID uuid.UUID, term string, outcome *domain.Outcome) ([]domain.Lead, error) {
	query := squirrel.Expr(
		"SELECT "+columnList+" FROM search_all_leads($1, $2, $3)",
		userID, term, outcomeArg(outcome),
	)
	return r.selectLeads(ctx, query, "lead search of user", userID)
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new active lead and returns the stored row.
// A zero ID lets the database generate one.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, l *domain.Lead) (*domain.Lead, error) {
	cols := []string{
		"user_id", "stage_id", "name", "temperature", "email", "phone", "purpose",
		"desired_value", "origin", "origin_details", "notes", "property_of_interest",
		"next_contact_date", "status",
	}
	vals := []any{
		userID, l.StageID, l.Name, string(l.Temperature), l.Email, l.Phone, purposeArg(l.Purpose),
		decimalArg(l.DesiredValue), l.Origin, l.OriginDetails, l.Notes, l.PropertyOfInterest,
		l.NextContactDate, string(domain.LeadStatusActive),
	}
	if l.ID != uuid.Nil {
		cols = append(cols, "id")
		vals = append(vals, l.ID)
	}

	insert := postgres.Builder().
		Insert("leads").
		Columns(cols...).
		Values(vals...).
		Suffix("RETURNING " + columnList)

	return r.getLead(ctx, insert, l.ID)
}

// Update applies a partial update and returns the stored row.
// A stage change also refreshes last_activity_at.
// Returns domain.ErrNotFound if the lead does not exist for the user.
func (r *Repo) Update(ctx context.Context, userID, leadID uuid.UUID, upd domain.LeadUpdate) (*domain.Lead, error) {
	if upd.IsEmpty() {
		return nil, fmt.Errorf("lead %s: %w", leadID, domain.NewValidationError("update", "no fields to update"))
	}

	stmt := postgres.Builder().
		Update("leads").
		Set("updated_at", squirrel.Expr("now()"))

	if upd.StageID != nil {
		stmt = stmt.Set("stage_id", *upd.StageID).
			Set("last_activity_at", squirrel.Expr("now()"))
	}
	if upd.Outcome != nil {
		stmt = stmt.Set("outcome", string(*upd.Outcome))
	}
	if upd.Status != nil {
		stmt = stmt.Set("status", string(*upd.Status))
	}

	stmt = stmt.
		Where(squirrel.Eq{"id": leadID, "user_id": userID}).
		Suffix("RETURNING " + columnList)

	return r.getLead(ctx, stmt, leadID)
}

// Reactivate clears the outcome of a resolved lead through the
// reactivate_lead database function.
func (r *Repo) Reactivate(ctx context.Context, userID, leadID uuid.UUID) (*domain.Lead, error) {
	query := squirrel.Expr(
		"SELECT "+columnList+" FROM reactivate_lead($1, $2)",
		leadID, userID,
	)
	return r.getLead(ctx, query, leadID)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getLead(ctx context.Context, query squirrel.Sqlizer, id uuid.UUID) (*domain.Lead, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rw row
	if err := postgres.Get(ctx, q, &rw, query); err != nil {
		return nil, postgres.MapError(err, "lead", id)
	}

	l, err := rw.toDomain()
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *Repo) selectLeads(ctx context.Context, query squirrel.Sqlizer, entity string, userID uuid.UUID) ([]domain.Lead, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []row
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, entity, userID)
	}

	leads := make([]domain.Lead, 0, len(rows))
	for _, rw := range rows {
		l, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, nil
}

type row struct {
	ID                 uuid.UUID           `db:"id"`
	UserID             uuid.UUID           `db:"user_id"`
	StageID            uuid.UUID           `db:"stage_id"`
	Name               string              `db:"name"`
	Temperature        string              `db:"temperature"`
	Email              *string             `db:"email"`
	Phone              *string             `db:"phone"`
	Purpose            *string             `db:"purpose"`
	DesiredValue       decimal.NullDecimal `db:"desired_value"`
	Origin             *string             `db:"origin"`
	OriginDetails      *string             `db:"origin_details"`
	Notes              *string             `db:"notes"`
	PropertyOfInterest *string             `db:"property_of_interest"`
	NextContactDate    *time.Time          `db:"next_contact_date"`
	LastActivityAt     *time.Time          `db:"last_activity_at"`
	Outcome            *string             `db:"outcome"`
	Status             string              `db:"status"`
	CreatedAt          time.Time           `db:"created_at"`
	UpdatedAt          time.Time           `db:"updated_at"`
}

// toDomain rejects rows carrying enum values this build does not know.
func (r row) toDomain() (domain.Lead, error) {
	l := domain.Lead{
		ID:                 r.ID,
		UserID:             r.UserID,
		StageID:            r.StageID,
		Name:               r.Name,
		Temperature:        domain.Temperature(r.Temperature),
		Email:              r.Email,
		Phone:              r.Phone,
		Origin:             r.Origin,
		OriginDetails:      r.OriginDetails,
		Notes:              r.Notes,
		PropertyOfInterest: r.PropertyOfInterest,
		NextContactDate:    r.NextContactDate,
		LastActivityAt:     r.LastActivityAt,
		Status:             domain.LeadStatus(r.Status),
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if !l.Temperature.IsValid() {
		return domain.Lead{}, fmt.Errorf("lead %s: temperature %q: %w", r.ID, r.Temperature, domain.ErrValidation)
	}
	if !l.Status.IsValid() {
		return domain.Lead{}, fmt.Errorf("lead %s: status %q: %w", r.ID, r.Status, domain.ErrValidation)
	}
	if r.Purpose != nil {
		p := domain.Purpose(*r.Purpose)
		if !p.IsValid() {
			return domain.Lead{}, fmt.Errorf("lead %s: purpose %q: %w", r.ID, *r.Purpose, domain.ErrValidation)
		}
		l.Purpose = &p
	}
	if r.Outcome != nil {
		o := domain.Outcome(*r.Outcome)
		if !o.IsValid() {
			return domain.Lead{}, fmt.Errorf("lead %s: outcome %q: %w", r.ID, *r.Outcome, domain.ErrValidation)
		}
		l.Outcome = &o
	}
	if r.DesiredValue.Valid {
		v := r.DesiredValue.Decimal
		l.DesiredValue = &v
	}
	return l, nil
}

func outcomeArg(o *domain.Outcome) any {
	if o == nil {
		return nil
	}
	return string(*o)
}

func purposeArg(p *domain.Purpose) any {
	if p == nil {
		return nil
	}
	return string(*p)
}

func decimalArg(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}
