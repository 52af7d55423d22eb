package task

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/leadflow-backend/internal/domain"
)

const maxTitleLength = 200

// CreateTaskInput holds the parameters for a manual task.
type CreateTaskInput struct {
	Title    string
	DueDate  time.Time
	Priority domain.TaskPriority // empty = MEDIUM
	LeadID   *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateTaskInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.DueDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "due_date", Message: "required"})
	}
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be HIGH, MEDIUM or LOW"})
	}
	if i.LeadID != nil && *i.LeadID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "lead_id", Message: "invalid"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
