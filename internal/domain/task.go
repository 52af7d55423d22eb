package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is an item on a user's daily mission list, optionally tied to a lead.
type Task struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	LeadID      *uuid.UUID
	LeadName    *string
	Title       string
	DueDate     time.Time
	Priority    TaskPriority
	Status      TaskStatus
	Type        TaskType
	CreatedAt   time.Time
	CompletedAt *time.Time
}
