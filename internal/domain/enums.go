package domain

import "fmt"

// Temperature is the sales heat of a lead.
type Temperature string

const (
	TemperatureHot  Temperature = "HOT"
	TemperatureWarm Temperature = "WARM"
	TemperatureCold Temperature = "COLD"
)

func (t Temperature) String() string { return string(t) }

func (t Temperature) IsValid() bool {
	switch t {
	case TemperatureHot, TemperatureWarm, TemperatureCold:
		return true
	}
	return false
}

// Purpose is what the customer wants to do with a property.
type Purpose string

const (
	PurposeSale Purpose = "SALE"
	PurposeRent Purpose = "RENT"
)

func (p Purpose) String() string { return string(p) }

func (p Purpose) IsValid() bool {
	switch p {
	case PurposeSale, PurposeRent:
		return true
	}
	return false
}

// Outcome is the terminal classification of a lead. Active leads carry no outcome.
type Outcome string

const (
	OutcomeWon  Outcome = "WON"
	OutcomeLost Outcome = "LOST"
	// OutcomeActive is not stored. It requests reactivation in ResolveOutcome.
	OutcomeActive Outcome = "ACTIVE"
)

func (o Outcome) String() string { return string(o) }

// IsValid reports whether o can be stored on a lead (WON or LOST).
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeWon, OutcomeLost:
		return true
	}
	return false
}

// IsResolution reports whether o is accepted by outcome resolution.
func (o Outcome) IsResolution() bool {
	return o.IsValid() || o == OutcomeActive
}

// LeadStatus is derived from the outcome: ACTIVE when none, FINALIZED otherwise.
type LeadStatus string

const (
	LeadStatusActive    LeadStatus = "ACTIVE"
	LeadStatusFinalized LeadStatus = "FINALIZED"
)

func (s LeadStatus) String() string { return string(s) }

func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusActive, LeadStatusFinalized:
		return true
	}
	return false
}

// EventType identifies a lead lifecycle transition in the event log.
type EventType string

const (
	EventTypeCreation     EventType = "CREATION"
	EventTypeMovement     EventType = "MOVEMENT"
	EventTypeWon          EventType = "WON"
	EventTypeLost         EventType = "LOST"
	EventTypeReactivation EventType = "REACTIVATION"
	EventTypeNote         EventType = "NOTE"
)

func (e EventType) String() string { return string(e) }

func (e EventType) IsValid() bool {
	switch e {
	case EventTypeCreation, EventTypeMovement, EventTypeWon, EventTypeLost,
		EventTypeReactivation, EventTypeNote:
		return true
	}
	return false
}

// EventTypeForOutcome maps a resolution outcome to the event that records it.
func EventTypeForOutcome(o Outcome) (EventType, error) {
	switch o {
	case OutcomeWon:
		return EventTypeWon, nil
	case OutcomeLost:
		return EventTypeLost, nil
	case OutcomeActive:
		return EventTypeReactivation, nil
	}
	return "", fmt.Errorf("outcome %q: %w", o, ErrValidation)
}

// TaskPriority is the urgency of a task.
type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityLow    TaskPriority = "LOW"
)

func (p TaskPriority) String() string { return string(p) }

func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return true
	}
	return false
}

// Rank orders priorities with HIGH first. Unknown values sort last.
func (p TaskPriority) Rank() int {
	switch p {
	case TaskPriorityHigh:
		return 0
	case TaskPriorityMedium:
		return 1
	case TaskPriorityLow:
		return 2
	}
	return 3
}

// TaskStatus is the completion state of a task.
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "PENDING"
	TaskStatusDone    TaskStatus = "DONE"
)

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusDone:
		return true
	}
	return false
}

// TaskType records where a task came from.
type TaskType string

const (
	TaskTypeNewLead    TaskType = "NEW_LEAD"
	TaskTypeRuleEngine TaskType = "RULE_ENGINE"
	TaskTypeManual     TaskType = "MANUAL"
)

func (t TaskType) String() string { return string(t) }

func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeNewLead, TaskTypeRuleEngine, TaskTypeManual:
		return true
	}
	return false
}

// PropertyStatus is the market availability of a listing.
type PropertyStatus string

const (
	PropertyStatusAvailable   PropertyStatus = "AVAILABLE"
	PropertyStatusReserved    PropertyStatus = "RESERVED"
	PropertyStatusSold        PropertyStatus = "SOLD"
	PropertyStatusUnavailable PropertyStatus = "UNAVAILABLE"
)

func (s PropertyStatus) String() string { return string(s) }

func (s PropertyStatus) IsValid() bool {
	switch s {
	case PropertyStatusAvailable, PropertyStatusReserved, PropertyStatusSold, PropertyStatusUnavailable:
		return true
	}
	return false
}

// PropertyType is the kind of building or plot.
type PropertyType string

const (
	PropertyTypeHouse     PropertyType = "HOUSE"
	PropertyTypeApartment PropertyType = "APARTMENT"
	PropertyTypeTownhouse PropertyType = "TOWNHOUSE"
	PropertyTypeLand      PropertyType = "LAND"
)

func (t PropertyType) String() string { return string(t) }

func (t PropertyType) IsValid() bool {
	switch t {
	case PropertyTypeHouse, PropertyTypeApartment, PropertyTypeTownhouse, PropertyTypeLand:
		return true
	}
	return false
}
