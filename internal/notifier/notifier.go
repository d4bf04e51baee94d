package notifier

import (
	"context"
	"time"

	"eventPlanner/internal/models"
)

const (
	KeyInvitationSent     = "invitation.sent"
	KeyInvitationAccepted = "invitation.accepted"
	KeyInvitationDeclined = "invitation.declined"
)

// InvitationMessage is the body published for every invitation transition.
type InvitationMessage struct {
	InvitationID int64                   `json:"invitation_id"`
	EventID      int64                   `json:"event_id"`
	InviteeID    int64                   `json:"invitee_id"`
	Status       models.InvitationStatus `json:"status"`
	OccurredAt   time.Time               `json:"occurred_at"`
}

func NewInvitationMessage(inv models.Invitation, at time.Time) InvitationMessage {
	return InvitationMessage{
		InvitationID: inv.ID,
		EventID:      inv.EventID,
		InviteeID:    inv.InviteeID,
		Status:       inv.Status,
		OccurredAt:   at.UTC(),
	}
}

// InvitationKey returns the routing key announcing inv's current status.
func InvitationKey(status models.InvitationStatus) string {
	switch status {
	case models.InvitationAccepted:
		return KeyInvitationAccepted
	case models.InvitationDeclined:
		return KeyInvitationDeclined
	default:
		return KeyInvitationSent
	}
}

// Publisher delivers a message under a routing key.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// Nop drops every message. It stands in when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, string, any) error {
	return nil
}
