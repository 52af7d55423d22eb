package rest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/leadflow-backend/internal/domain"
	"github.com/heartmarshall/leadflow-backend/internal/service/pipeline"
	"github.com/heartmarshall/leadflow-backend/internal/service/task"
)

// ---------------------------------------------------------------------------
// Pipeline
// ---------------------------------------------------------------------------

type stageResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

type leadResponse struct {
	ID                 string           `json:"id"`
	StageID            string           `json:"stageId"`
	Name               string           `json:"name"`
	Temperature        string           `json:"temperature"`
	Email              *string          `json:"email,omitempty"`
	Phone              *string          `json:"phone,omitempty"`
	Purpose            *string          `json:"purpose,omitempty"`
	DesiredValue       *decimal.Decimal `json:"desiredValue,omitempty"`
	Origin             *string          `json:"origin,omitempty"`
	OriginDetails      *string          `json:"originDetails,omitempty"`
	Notes              *string          `json:"notes,omitempty"`
	PropertyOfInterest *string          `json:"propertyOfInterest,omitempty"`
	NextContactDate    *time.Time       `json:"nextContactDate,omitempty"`
	LastActivityAt     *time.Time       `json:"lastActivityAt,omitempty"`
	Outcome            *string          `json:"outcome"`
	Status             string           `json:"status"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

type boardResponse struct {
	Stages   []stageResponse `json:"stages"`
	Leads    []leadResponse  `json:"leads"`
	Ready    bool            `json:"ready"`
	LoadedAt *time.Time      `json:"loadedAt,omitempty"`
}

type eventResponse struct {
	ID        string         `json:"id"`
	LeadID    string         `json:"leadId"`
	Type      string         `json:"type"`
	Details   map[string]any `json:"details"`
	CreatedAt time.Time      `json:"createdAt"`
}

type createLeadRequest struct {
	Name               string           `json:"name"`
	Temperature        string           `json:"temperature"`
	Email              *string          `json:"email"`
	Phone              *string          `json:"phone"`
	Purpose            *string          `json:"purpose"`
	DesiredValue       *decimal.Decimal `json:"desiredValue"`
	Origin             *string          `json:"origin"`
	OriginDetails      *string          `json:"originDetails"`
	Notes              *string          `json:"notes"`
	PropertyOfInterest *string          `json:"propertyOfInterest"`
	NextContactDate    *time.Time       `json:"nextContactDate"`
}

func (req createLeadRequest) toDraft() pipeline.LeadDraft {
	d := pipeline.LeadDraft{
		Name:               req.Name,
		Temperature:        domain.Temperature(req.Temperature),
		Email:              req.Email,
		Phone:              req.Phone,
		DesiredValue:       req.DesiredValue,
		Origin:             req.Origin,
		OriginDetails:      req.OriginDetails,
		Notes:              req.Notes,
		PropertyOfInterest: req.PropertyOfInterest,
		NextContactDate:    req.NextContactDate,
	}
	if req.Purpose != nil {
		p := domain.Purpose(*req.Purpose)
		d.Purpose = &p
	}
	return d
}

type moveLeadRequest struct {
	StageID string `json:"stageId"`
}

type resolveOutcomeRequest struct {
	Outcome string         `json:"outcome"`
	Details map[string]any `json:"details"`
}

type addNoteRequest struct {
	Text string `json:"text"`
}

func toStageResponse(s domain.Stage) stageResponse {
	return stageResponse{ID: s.ID.String(), Name: s.Name, Position: s.Position}
}

func toLeadResponse(l domain.Lead) leadResponse {
	resp := leadResponse{
		ID:                 l.ID.String(),
		StageID:            l.StageID.String(),
		Name:               l.Name,
		Temperature:        l.Temperature.String(),
		Email:              l.Email,
		Phone:              l.Phone,
		DesiredValue:       l.DesiredValue,
		Origin:             l.Origin,
		OriginDetails:      l.OriginDetails,
		Notes:              l.Notes,
		PropertyOfInterest: l.PropertyOfInterest,
		NextContactDate:    l.NextContactDate,
		LastActivityAt:     l.LastActivityAt,
		Status:             l.Status.String(),
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
	}
	if l.Purpose != nil {
		p := l.Purpose.String()
		resp.Purpose = &p
	}
	if l.Outcome != nil {
		o := l.Outcome.String()
		resp.Outcome = &o
	}
	return resp
}

func toLeadResponses(leads []domain.Lead) []leadResponse {
	out := make([]leadResponse, len(leads))
	for i, l := range leads {
		out[i] = toLeadResponse(l)
	}
	return out
}

func toBoardResponse(b pipeline.Board) boardResponse {
	resp := boardResponse{
		Stages: make([]stageResponse, len(b.Stages)),
		Leads:  toLeadResponses(b.Leads),
		Ready:  b.Ready,
	}
	for i, s := range b.Stages {
		resp.Stages[i] = toStageResponse(s)
	}
	if !b.LoadedAt.IsZero() {
		t := b.LoadedAt
		resp.LoadedAt = &t
	}
	return resp
}

func toEventResponse(e domain.LeadEvent) eventResponse {
	details := e.Details
	if details == nil {
		details = map[string]any{}
	}
	return eventResponse{
		ID:        e.ID.String(),
		LeadID:    e.LeadID.String(),
		Type:      e.Type.String(),
		Details:   details,
		CreatedAt: e.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Tasks
// ---------------------------------------------------------------------------

type taskResponse struct {
	ID          string     `json:"id"`
	LeadID      *string    `json:"leadId,omitempty"`
	LeadName    *string    `json:"leadName,omitempty"`
	Title       string     `json:"title"`
	DueDate     time.Time  `json:"dueDate"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	Type        string     `json:"type"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type taskBoardResponse struct {
	Pending   []taskResponse `json:"pending"`
	Completed []taskResponse `json:"completed"`
	P1        []taskResponse `json:"p1"`
	P2        []taskResponse `json:"p2"`
	P3        []taskResponse `json:"p3"`
}

type createTaskRequest struct {
	Title    string    `json:"title"`
	DueDate  time.Time `json:"dueDate"`
	Priority string    `json:"priority"`
	LeadID   *string   `json:"leadId"`
}

func toTaskResponse(t domain.Task) taskResponse {
	resp := taskResponse{
		ID:          t.ID.String(),
		LeadName:    t.LeadName,
		Title:       t.Title,
		DueDate:     t.DueDate,
		Priority:    t.Priority.String(),
		Status:      t.Status.String(),
		Type:        t.Type.String(),
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
	}
	if t.LeadID != nil {
		id := t.LeadID.String()
		resp.LeadID = &id
	}
	return resp
}

func toTaskResponses(tasks []domain.Task) []taskResponse {
	out := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskResponse(t)
	}
	return out
}

func toTaskBoardResponse(b task.Board) taskBoardResponse {
	return taskBoardResponse{
		Pending:   toTaskResponses(b.Pending),
		Completed: toTaskResponses(b.Completed),
		P1:        toTaskResponses(b.P1),
		P2:        toTaskResponses(b.P2),
		P3:        toTaskResponses(b.P3),
	}
}

// ---------------------------------------------------------------------------
// Properties
// ---------------------------------------------------------------------------

type propertyResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Location     string          `json:"location"`
	Status       string          `json:"status"`
	Type         string          `json:"type"`
	Purpose      string          `json:"purpose"`
	Price        decimal.Decimal `json:"price"`
	Bedrooms     int             `json:"bedrooms"`
	Suites       int             `json:"suites"`
	Bathrooms    int             `json:"bathrooms"`
	ParkingSpots int             `json:"parkingSpots"`
	Description  *string         `json:"description,omitempty"`
	Images       []string        `json:"images"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type createPropertyRequest struct {
	Name         string          `json:"name"`
	Location     string          `json:"location"`
	Status       string          `json:"status"`
	Type         string          `json:"type"`
	Purpose      string          `json:"purpose"`
	Price        decimal.Decimal `json:"price"`
	Bedrooms     int             `json:"bedrooms"`
	Suites       int             `json:"suites"`
	Bathrooms    int             `json:"bathrooms"`
	ParkingSpots int             `json:"parkingSpots"`
	Description  *string         `json:"description"`
	Images       []string        `json:"images"`
}

type updatePropertyRequest struct {
	Name         *string          `json:"name"`
	Location     *string          `json:"location"`
	Status       *string          `json:"status"`
	Type         *string          `json:"type"`
	Purpose      *string          `json:"purpose"`
	Price        *decimal.Decimal `json:"price"`
	Bedrooms     *int             `json:"bedrooms"`
	Suites       *int             `json:"suites"`
	Bathrooms    *int             `json:"bathrooms"`
	ParkingSpots *int             `json:"parkingSpots"`
	Description  *string          `json:"description"`
	Images       []string         `json:"images"`
}

func toPropertyResponse(p domain.Property) propertyResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return propertyResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		Location:     p.Location,
		Status:       p.Status.String(),
		Type:         p.Type.String(),
		Purpose:      p.Purpose.String(),
		Price:        p.Price,
		Bedrooms:     p.Bedrooms,
		Suites:       p.Suites,
		Bathrooms:    p.Bathrooms,
		ParkingSpots: p.ParkingSpots,
		Description:  p.Description,
		Images:       images,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toPropertyResponses(props []domain.Property) []propertyResponse {
	out := make([]propertyResponse, len(props))
	for i, p := range props {
		out[i] = toPropertyResponse(p)
	}
	return out
}

// enumPtr converts an optional string into an optional enum value.
func enumPtr[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}
