package property

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/leadflow-backend/internal/domain"
)

const (
	maxNameLength        = 200
	maxLocationLength    = 300
	maxDescriptionLength = 5000
	maxImages            = 30
	maxSearchLength      = 200
)

// CreatePropertyInput holds the parameters for a new listing.
type CreatePropertyInput struct {
	Name         string
	Location     string
	Status       domain.PropertyStatus // empty = AVAILABLE
	Type         domain.PropertyType
	Purpose      domain.Purpose
	Price        decimal.Decimal
	Bedrooms     int
	Suites       int
	Bathrooms    int
	ParkingSpots int
	Description  *string
	Images       []string
}

// Validate checks all fields and collects all errors.
func (i CreatePropertyInput) Validate() error {
	var errs []domain.FieldError

	errs = validateText(errs, "name", i.Name, maxNameLength, true)
	errs = validateText(errs, "location", i.Location, maxLocationLength, true)
	if i.Description != nil {
		errs = validateText(errs, "description", *i.Description, maxDescriptionLength, false)
	}

	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be HOUSE, APARTMENT, TOWNHOUSE or LAND"})
	}
	if !i.Purpose.IsValid() {
		errs = append(errs, domain.FieldError{Field: "purpose", Message: "must be SALE or RENT"})
	}
	if i.Price.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "price", Message: "must not be negative"})
	}
	errs = validateCounts(errs, &i.Bedrooms, &i.Suites, &i.Bathrooms, &i.ParkingSpots)
	errs = validateImages(errs, i.Images)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreatePropertyInput) toProperty() *domain.Property {
	status := i.Status
	if status == "" {
		status = domain.PropertyStatusAvailable
	}
	images := i.Images
	if images == nil {
		images = []string{}
	}
	return &domain.Property{
		Name:         strings.TrimSpace(i.Name),
		Location:     strings.TrimSpace(i.Location),
		Status:       status,
		Type:         i.Type,
		Purpose:      i.Purpose,
		Price:        i.Price,
		Bedrooms:     i.Bedrooms,
		Suites:       i.Suites,
		Bathrooms:    i.Bathrooms,
		ParkingSpots: i.ParkingSpots,
		Description:  trimOrNil(i.Description),
		Images:       images,
	}
}

// UpdatePropertyInput holds a partial update. Nil fields are unchanged.
type UpdatePropertyInput struct {
	Name         *string
	Location     *string
	Status       *domain.PropertyStatus
	Type         *domain.PropertyType
	Purpose      *domain.Purpose
	Price        *decimal.Decimal
	Bedrooms     *int
	Suites       *int
	Bathrooms    *int
	ParkingSpots *int
	Description  *string
	Images       []string
}

// Validate checks all fields and collects all errors.
func (i UpdatePropertyInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		errs = validateText(errs, "name", *i.Name, maxNameLength, true)
	}
	if i.Location != nil {
		errs = validateText(errs, "location", *i.Location, maxLocationLength, true)
	}
	if i.Description != nil {
		errs = validateText(errs, "description", *i.Description, maxDescriptionLength, false)
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be HOUSE, APARTMENT, TOWNHOUSE or LAND"})
	}
	if i.Purpose != nil && !i.Purpose.IsValid() {
		errs = append(errs, domain.FieldError{Field: "purpose", Message: "must be SALE or RENT"})
	}
	if i.Price != nil && i.Price.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "price", Message: "must not be negative"})
	}
	errs = validateCounts(errs, i.Bedrooms, i.Suites, i.Bathrooms, i.ParkingSpots)
	errs = validateImages(errs, i.Images)

	if i.isEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field is required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdatePropertyInput) isEmpty() bool {
	return i.Name == nil && i.Location == nil && i.Status == nil && i.Type == nil &&
		i.Purpose == nil && i.Price == nil && i.Bedrooms == nil && i.Suites == nil &&
		i.Bathrooms == nil && i.ParkingSpots == nil && i.Description == nil && i.Images == nil
}

func (i UpdatePropertyInput) toParams() domain.PropertyUpdateParams {
	p := domain.PropertyUpdateParams{
		Status:       i.Status,
		Type:         i.Type,
		Purpose:      i.Purpose,
		Price:        i.Price,
		Bedrooms:     i.Bedrooms,
		Suites:       i.Suites,
		Bathrooms:    i.Bathrooms,
		ParkingSpots: i.ParkingSpots,
		Images:       i.Images,
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		p.Name = &name
	}
	if i.Location != nil {
		loc := strings.TrimSpace(*i.Location)
		p.Location = &loc
	}
	if i.Description != nil {
		desc := strings.TrimSpace(*i.Description)
		p.Description = &desc
	}
	return p
}

func validateText(errs []domain.FieldError, field, value string, maxLen int, required bool) []domain.FieldError {
	v := strings.TrimSpace(value)
	if required && v == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if utf8.RuneCountInString(v) > maxLen {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

func validateCounts(errs []domain.FieldError, bedrooms, suites, bathrooms, parking *int) []domain.FieldError {
	counts := []struct {
		field string
		v     *int
	}{
		{"bedrooms", bedrooms},
		{"suites", suites},
		{"bathrooms", bathrooms},
		{"parking_spots", parking},
	}
	for _, c := range counts {
		if c.v != nil && *c.v < 0 {
			errs = append(errs, domain.FieldError{Field: c.field, Message: "must not be negative"})
		}
	}
	return errs
}

func validateImages(errs []domain.FieldError, images []string) []domain.FieldError {
	if len(images) > maxImages {
		return append(errs, domain.FieldError{Field: "images", Message: "max 30 images"})
	}
	for _, img := range images {
		if strings.TrimSpace(img) == "" {
			return append(errs, domain.FieldError{Field: "images", Message: "empty image url"})
		}
	}
	return errs
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
