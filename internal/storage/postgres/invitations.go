package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventPlanner/internal/models"
	"eventPlanner/internal/storage"
)

// InvitationsForOrganizer lists the invitations of an event owned by userID,
// newest first, with the invitee attached.
func (s *Storage) InvitationsForOrganizer(ctx context.Context, eventID, userID int64) ([]models.Invitation, error) {
	const op = "storage.postgres.InvitationsForOrganizer"

	if err := ensureEventOwner(ctx, s.DB, eventID, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT i.id, i.event_id, i.invitee_id, i.status, i.invited_at, i.responded_at, i.notes,
		       u.id, u.username, u.email, u.first_name, u.last_name
		FROM invitations i
		JOIN users u ON u.id = i.invitee_id
		WHERE i.event_id = $1
		ORDER BY i.invited_at DESC, i.id DESC`

	rows, err := s.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	invitations := make([]models.Invitation, 0)
	for rows.Next() {
		var (
			inv     models.Invitation
			invitee models.User
		)
		err = rows.Scan(
			&inv.ID,
			&inv.EventID,
			&inv.InviteeID,
			&inv.Status,
			&inv.InvitedAt,
			&inv.RespondedAt,
			&inv.Notes,
			&invitee.ID,
			&invitee.Username,
			&invitee.Email,
			&invitee.FirstName,
			&invitee.LastName,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan invitation: %w", op, err)
		}
		inv.Invitee = &invitee
		invitations = append(invitations, inv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return invitations, nil
}

// CreateInvitation sends a pending invitation for an event owned by organizerID.
func (s *Storage) CreateInvitation(ctx context.Context, eventID, organizerID, inviteeID int64, notes string) (models.Invitation, error) {
	const op = "storage.postgres.CreateInvitation"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Invitation{}, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	if err = ensureEventOwner(ctx, tx, eventID, organizerID); err != nil {
		return models.Invitation{}, fmt.Errorf("%s: %w", op, err)
	}

	inv := models.Invitation{
		EventID:   eventID,
		InviteeID: inviteeID,
		Status:    models.InvitationPending,
		Notes:     notes,
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO invitations (event_id, invitee_id, status, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, invited_at`,
		eventID, inviteeID, inv.Status, notes,
	).Scan(&inv.ID, &inv.InvitedAt)
	if err != nil {
		switch pqCode(err) {
		case codeUniqueViolation:
			return models.Invitation{}, fmt.Errorf("%s: %w", op, storage.ErrInvitationExists)
		case codeForeignKeyViolation:
			return models.Invitation{}, fmt.Errorf("%s: %w", op, storage.ErrInvalidReference)
		}
		return models.Invitation{}, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return models.Invitation{}, fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return inv, nil
}

// DeleteInvitationForOrganizer cancels an invitation whose event userID owns.
func (s *Storage) DeleteInvitationForOrganizer(ctx context.Context, invitationID, userID int64) error {
	const op = "storage.postgres.DeleteInvitationForOrganizer"

	res, err := s.DB.ExecContext(ctx, `
		DELETE FROM invitations i
		USING events e
		WHERE i.id = $1 AND e.id = i.event_id AND e.created_by = $2`,
		invitationID, userID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = affectedOrNotFound(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// InvitationsForInvitee lists everything sent to userID with the event attached.
func (s *Storage) InvitationsForInvitee(ctx context.Context, userID int64) ([]models.Invitation, error) {
	const op = "storage.postgres.InvitationsForInvitee"

	query := `
		SELECT i.id, i.event_id, i.invitee_id, i.status, i.invited_at, i.responded_at, i.notes,
		       e.id, e.title, e.event_type, e.status, e.start_date, e.end_date, e.venue, e.created_by
		FROM invitations i
		JOIN events e ON e.id = i.event_id
		WHERE i.invitee_id = $1
		ORDER BY i.invited_at DESC, i.id DESC`

	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	invitations := make([]models.Invitation, 0)
	for rows.Next() {
		var (
			inv   models.Invitation
			event models.Event
		)
		err = rows.Scan(
			&inv.ID,
			&inv.EventID,
			&inv.InviteeID,
			&inv.Status,
			&inv.InvitedAt,
			&inv.RespondedAt,
			&inv.Notes,
			&event.ID,
			&event.Title,
			&event.EventType,
			&event.Status,
			&event.StartDate,
			&event.EndDate,
			&event.Venue,
			&event.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan invitation: %w", op, err)
		}
		inv.Event = &event
		invitations = append(invitations, inv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return invitations, nil
}

// RespondInvitation applies an invitee's answer to their own pending invitation.
// Accepting also gets or creates the Guest for (event, invitee) and its RSVP;
// the RSVP keeps its default pending status. Everything commits together.
func (s *Storage) RespondInvitation(ctx context.Context, invitationID, inviteeID int64, action models.ResponseAction) (models.Invitation, error) {
	const op = "storage.postgres.RespondInvitation"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Invitation{}, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var inv models.Invitation
	err = tx.QueryRowContext(ctx, `
		SELECT id, event_id, invitee_id, status, invited_at, responded_at, notes
		FROM invitations
		WHERE id = $1 AND invitee_id = $2 AND status = $3
		FOR UPDATE`,
		invitationID, inviteeID, models.InvitationPending,
	).Scan(
		&inv.ID,
		&inv.EventID,
		&inv.InviteeID,
		&inv.Status,
		&inv.InvitedAt,
		&inv.RespondedAt,
		&inv.Notes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Invitation{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Invitation{}, fmt.Errorf("%s: failed to lock invitation: %w", op, err)
	}

	if err = inv.Respond(action, s.now().UTC()); err != nil {
		return models.Invitation{}, fmt.Errorf("%s: %w", op, err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE invitations
		SET status = $1, responded_at = $2
		WHERE id = $3`,
		inv.Status, inv.RespondedAt, inv.ID,
	)
	if err != nil {
		return models.Invitation{}, fmt.Errorf("%s: failed to update invitation: %w", op, err)
	}

	if action == models.ActionAccept {
		guestID, err := getOrCreateGuest(ctx, tx, inv)
		if err != nil {
			return models.Invitation{}, fmt.Errorf("%s: %w", op, err)
		}

		if err = getOrCreateRSVP(ctx, tx, guestID); err != nil {
			return models.Invitation{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return models.Invitation{}, fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return inv, nil
}

// getOrCreateGuest relies on UNIQUE(event_id, user_id); an existing guest is
// returned untouched, keeping whatever invitation it was linked to.
func getOrCreateGuest(ctx context.Context, tx *sql.Tx, inv models.Invitation) (int64, error) {
	var guestID int64

	err := tx.QueryRowContext(ctx, `
		INSERT INTO guests (event_id, user_id, invitation_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (event_id, user_id) DO NOTHING
		RETURNING id`,
		inv.EventID, inv.InviteeID, inv.ID,
	).Scan(&guestID)
	if err == nil {
		return guestID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to create guest: %w", err)
	}

	err = tx.QueryRowContext(ctx, `
		SELECT id FROM guests
		WHERE event_id = $1 AND user_id = $2`,
		inv.EventID, inv.InviteeID,
	).Scan(&guestID)
	if err != nil {
		return 0, fmt.Errorf("failed to get guest: %w", err)
	}

	return guestID, nil
}

func getOrCreateRSVP(ctx context.Context, tx *sql.Tx, guestID int64) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO rsvps (guest_id, status, number_of_guests)
		VALUES ($1, $2, $3)
		ON CONFLICT (guest_id) DO NOTHING`,
		guestID, models.RSVPPending, models.DefaultNumberOfGuests,
	)
	if err != nil {
		return fmt.Errorf("failed to create rsvp: %w", err)
	}

	return nil
}
