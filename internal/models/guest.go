package models

import "time"

type Guest struct {
	ID           int64     `json:"id"`
	EventID      int64     `json:"event_id"`
	UserID       int64     `json:"user_id"`
	InvitationID *int64    `json:"invitation_id"`
	AddedAt      time.Time `json:"added_at"`

	User *User `json:"user,omitempty"`
	RSVP *RSVP `json:"rsvp,omitempty"`
}

type RSVPStatus string

const (
	RSVPPending  RSVPStatus = "pending"
	RSVPAccepted RSVPStatus = "accepted"
	RSVPDeclined RSVPStatus = "declined"
)

const DefaultNumberOfGuests = 1

type RSVP struct {
	ID             int64      `json:"id"`
	GuestID        int64      `json:"guest_id"`
	Status         RSVPStatus `json:"status"`
	NumberOfGuests int        `json:"number_of_guests"`
	ResponseDate   *time.Time `json:"response_date"`
	Notes          string     `json:"notes"`
}

// RSVPUpdate carries the editable RSVP fields.
type RSVPUpdate struct {
	Status         RSVPStatus
	NumberOfGuests int
	Notes          string
}

// ResponseDateFor returns the response date to store for an update made at now:
// nil while the RSVP stays pending.
func (u RSVPUpdate) ResponseDateFor(now time.Time) *time.Time {
	if u.Status == RSVPPending {
		return nil
	}

	return &now
}
