package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Property is a real-estate listing owned by a user.
type Property struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Location     string
	Status       PropertyStatus
	Type         PropertyType
	Purpose      Purpose
	Price        decimal.Decimal
	Bedrooms     int
	Suites       int
	Bathrooms    int
	ParkingSpots int
	Description  *string
	Images       []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PropertyUpdateParams holds a partial property update. Nil means unchanged.
type PropertyUpdateParams struct {
	Name         *string
	Location     *string
	Status       *PropertyStatus
	Type         *PropertyType
	Purpose      *Purpose
	Price        *decimal.Decimal
	Bedrooms     *int
	Suites       *int
	Bathrooms    *int
	ParkingSpots *int
	Description  *string
	Images       []string
}
