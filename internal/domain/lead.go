package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Lead is a prospective customer tracked through the pipeline until won or lost.
type Lead struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	StageID            uuid.UUID
	Name               string
	Temperature        Temperature
	Email              *string
	Phone              *string
	Purpose            *Purpose
	DesiredValue       *decimal.Decimal
	Origin             *string
	OriginDetails      *string
	Notes              *string
	PropertyOfInterest *string
	NextContactDate    *time.Time
	LastActivityAt     *time.Time
	Outcome            *Outcome
	Status             LeadStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsActive reports whether the lead belongs on the active board.
func (l Lead) IsActive() bool {
	return l.Outcome == nil
}

// LeadUpdate holds a partial update applied by the lead store.
// Nil fields are left untouched; updated_at is always refreshed.
type LeadUpdate struct {
	StageID *uuid.UUID
	Outcome *Outcome
	Status  *LeadStatus
}

// IsEmpty reports whether the update carries no field.
func (u LeadUpdate) IsEmpty() bool {
	return u.StageID == nil && u.Outcome == nil && u.Status == nil
}

// StatusForOutcome derives the lead status from its outcome.
func StatusForOutcome(o *Outcome) LeadStatus {
	if o == nil {
		return LeadStatusActive
	}
	return LeadStatusFinalized
}
