package form

import (
	"time"

	"eventPlanner/internal/models"
)

// EventRequest is the body accepted when creating or editing an event.
// end_date is not required to follow start_date.
type EventRequest struct {
	Title       string             `json:"title" validate:"required,max=200"`
	Description string             `json:"description"`
	EventType   models.EventType   `json:"event_type" validate:"required,oneof=wedding corporate party other"`
	Status      models.EventStatus `json:"status" validate:"omitempty,oneof=planning confirmed completed cancelled"`
	StartDate   time.Time          `json:"start_date" validate:"required"`
	EndDate     time.Time          `json:"end_date" validate:"required"`
	Venue       string             `json:"venue" validate:"max=200"`
	Location    string             `json:"location"`
	MaxCapacity int                `json:"max_capacity" validate:"min=0"`
}

// Event builds the model owned by userID. An empty status means planning.
func (req EventRequest) Event(id, userID int64) models.Event {
	status := req.Status
	if status == "" {
		status = models.EventStatusPlanning
	}

	return models.Event{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		EventType:   req.EventType,
		Status:      status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Venue:       req.Venue,
		Location:    req.Location,
		MaxCapacity: req.MaxCapacity,
		CreatedBy:   userID,
	}
}
