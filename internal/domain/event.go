package domain

import (
	"time"

	"github.com/google/uuid"
)

// LeadEvent is an append-only record of a lead lifecycle transition.
type LeadEvent struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	LeadID    uuid.UUID
	Type      EventType
	Details   map[string]any
	CreatedAt time.Time
}
