package models

import "time"

type EventType string

const (
	EventTypeWedding   EventType = "wedding"
	EventTypeCorporate EventType = "corporate"
	EventTypeParty     EventType = "party"
	EventTypeOther     EventType = "other"
)

type EventStatus string

const (
	EventStatusPlanning  EventStatus = "planning"
	EventStatusConfirmed EventStatus = "confirmed"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// Event is owned by the user in CreatedBy. EndDate is not required to follow StartDate.
type Event struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	EventType   EventType   `json:"event_type"`
	Status      EventStatus `json:"status"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	Venue       string      `json:"venue"`
	Location    string      `json:"location"`
	MaxCapacity int         `json:"max_capacity"`
	CreatedBy   int64       `json:"created_by"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// IsActive reports whether the event still shows up among upcoming events.
func (e Event) IsActive() bool {
	return e.Status == EventStatusPlanning || e.Status == EventStatusConfirmed
}

const (
	EventsPerPage     = 10
	UpcomingEventsMax = 5
)

type Dashboard struct {
	TotalEvents int     `json:"total_events"`
	Upcoming    []Event `json:"upcoming_events"`
}
