package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stage is a named, ordered column of a user's pipeline.
// Position is unique per user; lower comes earlier.
type Stage struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Position  int
	CreatedAt time.Time
}

// DefaultStageNames is the stage set seeded on a user's first pipeline load,
// in position order starting at 0.
var DefaultStageNames = []string{
	"Capture",
	"Qualification",
	"Visit Scheduled",
	"Negotiation",
}

// FirstStage returns the stage with the lowest position.
// On ties the earliest one in the slice wins. ok is false for an empty slice.
func FirstStage(stages []Stage) (Stage, bool) {
	if len(stages) == 0 {
		return Stage{}, false
	}
	first := stages[0]
	for _, s := range stages[1:] {
		if s.Position < first.Position {
			first = s
		}
	}
	return first, true
}

// StageByID finds a stage by id.
func StageByID(stages []Stage, id uuid.UUID) (Stage, bool) {
	for _, s := range stages {
		if s.ID == id {
			return s, true
		}
	}
	return Stage{}, false
}
