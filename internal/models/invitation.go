package models

import (
	"errors"
	"time"
)

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
)

// ResponseAction is what an invitee does with a pending invitation.
type ResponseAction string

const (
	ActionAccept  ResponseAction = "accept"
	ActionDecline ResponseAction = "decline"
)

var (
	ErrUnknownAction = errors.New("unknown invitation action")
	ErrNotPending    = errors.New("invitation already responded")
)

func ParseResponseAction(s string) (ResponseAction, error) {
	switch a := ResponseAction(s); a {
	case ActionAccept, ActionDecline:
		return a, nil
	default:
		return "", ErrUnknownAction
	}
}

// Status returns the terminal status the action leads to.
func (a ResponseAction) Status() InvitationStatus {
	if a == ActionAccept {
		return InvitationAccepted
	}

	return InvitationDeclined
}

type Invitation struct {
	ID          int64            `json:"id"`
	EventID     int64            `json:"event_id"`
	InviteeID   int64            `json:"invitee_id"`
	Status      InvitationStatus `json:"status"`
	InvitedAt   time.Time        `json:"invited_at"`
	RespondedAt *time.Time       `json:"responded_at"`
	Notes       string           `json:"notes"`

	Invitee *User  `json:"invitee,omitempty"`
	Event   *Event `json:"event,omitempty"`
}

// Respond moves a pending invitation to the status implied by action and
// stamps RespondedAt. Any other starting status is rejected untouched.
func (i *Invitation) Respond(action ResponseAction, at time.Time) error {
	if i.Status != InvitationPending {
		return ErrNotPending
	}

	switch action {
	case ActionAccept, ActionDecline:
	default:
		return ErrUnknownAction
	}

	i.Status = action.Status()
	i.RespondedAt = &at

	return nil
}

type InvitationCounts struct {
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Declined int `json:"declined"`
}

func CountInvitations(invitations []Invitation) InvitationCounts {
	var c InvitationCounts

	for _, inv := range invitations {
		switch inv.Status {
		case InvitationPending:
			c.Pending++
		case InvitationAccepted:
			c.Accepted++
		case InvitationDeclined:
			c.Declined++
		}
	}

	return c
}

// SplitByResponse separates pending invitations from answered ones, keeping order.
func SplitByResponse(invitations []Invitation) (pending, responded []Invitation) {
	pending = make([]Invitation, 0, len(invitations))
	responded = make([]Invitation, 0, len(invitations))

	for _, inv := range invitations {
		if inv.Status == InvitationPending {
			pending = append(pending, inv)
		} else {
			responded = append(responded, inv)
		}
	}

	return pending, responded
}
