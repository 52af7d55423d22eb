package pipeline

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/leadflow-backend/internal/domain"
)

const (
	maxNameLength = 200
	maxNoteLength = 2000
)

// LeadDraft holds the fields of a new lead.
type LeadDraft struct {
	Name               string
	Temperature        domain.Temperature // empty = WARM
	Email              *string
	Phone              *string
	Purpose            *domain.Purpose
	DesiredValue       *decimal.Decimal
	Origin             *string
	OriginDetails      *string
	Notes              *string
	PropertyOfInterest *string
	NextContactDate    *time.Time
}

// Validate checks all fields and collects all errors.
func (d LeadDraft) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(d.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	if d.Temperature != "" && !d.Temperature.IsValid() {
		errs = append(errs, domain.FieldError{Field: "temperature", Message: "must be HOT, WARM or COLD"})
	}
	if d.Purpose != nil && !d.Purpose.IsValid() {
		errs = append(errs, domain.FieldError{Field: "purpose", Message: "must be SALE or RENT"})
	}
	if d.DesiredValue != nil && d.DesiredValue.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "desired_value", Message: "must not be negative"})
	}
	if d.Email != nil && strings.TrimSpace(*d.Email) != "" {
		if _, err := mail.ParseAddress(strings.TrimSpace(*d.Email)); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// toLead builds the lead to store on stageID.
func (d LeadDraft) toLead(stageID uuid.UUID) *domain.Lead {
	temp := d.Temperature
	if temp == "" {
		temp = domain.TemperatureWarm
	}
	return &domain.Lead{
		StageID:            stageID,
		Name:               strings.TrimSpace(d.Name),
		Temperature:        temp,
		Email:              trimOrNil(d.Email),
		Phone:              trimOrNil(d.Phone),
		Purpose:            d.Purpose,
		DesiredValue:       d.DesiredValue,
		Origin:             trimOrNil(d.Origin),
		OriginDetails:      trimOrNil(d.OriginDetails),
		Notes:              trimOrNil(d.Notes),
		PropertyOfInterest: trimOrNil(d.PropertyOfInterest),
		NextContactDate:    d.NextContactDate,
		Status:             domain.LeadStatusActive,
	}
}

// initialData is the CREATION event payload: the draft fields that were set.
func initialData(l *domain.Lead) map[string]any {
	data := map[string]any{
		"name":        l.Name,
		"temperature": l.Temperature.String(),
	}
	put := func(key string, v *string) {
		if v != nil {
			data[key] = *v
		}
	}
	put("email", l.Email)
	put("phone", l.Phone)
	put("origin", l.Origin)
	put("origin_details", l.OriginDetails)
	put("notes", l.Notes)
	put("property_of_interest", l.PropertyOfInterest)
	if l.Purpose != nil {
		data["purpose"] = l.Purpose.String()
	}
	if l.DesiredValue != nil {
		data["desired_value"] = l.DesiredValue.String()
	}
	if l.NextContactDate != nil {
		data["next_contact_date"] = l.NextContactDate.UTC().Format(time.RFC3339)
	}
	return data
}

// validateNote checks a note's text.
func validateNote(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.NewValidationError("text", "required")
	}
	if utf8.RuneCountInString(text) > maxNoteLength {
		return domain.NewValidationError("text", "max 2000 characters")
	}
	return nil
}

func validateFilter(outcome *domain.Outcome) error {
	if outcome != nil && !outcome.IsValid() {
		return domain.NewValidationError("status", "must be WON or LOST")
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
