package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventPlanner/internal/models"
	"eventPlanner/internal/storage"
)

// GuestsForOrganizer lists the guests of an event owned by userID, ordered by
// last then first name, each with its user and RSVP.
func (s *Storage) GuestsForOrganizer(ctx context.Context, eventID, userID int64) ([]models.Guest, error) {
	const op = "storage.postgres.GuestsForOrganizer"

	if err := ensureEventOwner(ctx, s.DB, eventID, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT g.id, g.event_id, g.user_id, g.invitation_id, g.added_at,
		       u.id, u.username, u.email, u.first_name, u.last_name, u.phone_number,
		       r.id, r.status, r.number_of_guests, r.response_date, r.notes
		FROM guests g
		JOIN users u ON u.id = g.user_id
		LEFT JOIN rsvps r ON r.guest_id = g.id
		WHERE g.event_id = $1
		ORDER BY u.last_name, u.first_name, g.id`

	rows, err := s.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	guests := make([]models.Guest, 0)
	for rows.Next() {
		var (
			g      models.Guest
			u      models.User
			rsvpID sql.NullInt64
			status sql.NullString
			number sql.NullInt64
			notes  sql.NullString
			rsvp   models.RSVP
		)
		err = rows.Scan(
			&g.ID,
			&g.EventID,
			&g.UserID,
			&g.InvitationID,
			&g.AddedAt,
			&u.ID,
			&u.Username,
			&u.Email,
			&u.FirstName,
			&u.LastName,
			&u.PhoneNumber,
			&rsvpID,
			&status,
			&number,
			&rsvp.ResponseDate,
			&notes,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan guest: %w", op, err)
		}

		g.User = &u
		if rsvpID.Valid {
			rsvp.ID = rsvpID.Int64
			rsvp.GuestID = g.ID
			rsvp.Status = models.RSVPStatus(status.String)
			rsvp.NumberOfGuests = int(number.Int64)
			rsvp.Notes = notes.String
			g.RSVP = &rsvp
		}

		guests = append(guests, g)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return guests, nil
}

// DeleteGuestForOrganizer removes a guest of an event userID owns; the RSVP
// goes with it through ON DELETE CASCADE.
func (s *Storage) DeleteGuestForOrganizer(ctx context.Context, guestID, userID int64) error {
	const op = "storage.postgres.DeleteGuestForOrganizer"

	res, err := s.DB.ExecContext(ctx, `
		DELETE FROM guests g
		USING events e
		WHERE g.id = $1 AND e.id = g.event_id AND e.created_by = $2`,
		guestID, userID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = affectedOrNotFound(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpdateRSVPForOrganizer edits an RSVP reached through guest -> event owned by userID.
func (s *Storage) UpdateRSVPForOrganizer(ctx context.Context, rsvpID, userID int64, upd models.RSVPUpdate) (models.RSVP, error) {
	const op = "storage.postgres.UpdateRSVPForOrganizer"

	rsvp := models.RSVP{
		ID:             rsvpID,
		Status:         upd.Status,
		NumberOfGuests: upd.NumberOfGuests,
		ResponseDate:   upd.ResponseDateFor(s.now().UTC()),
		Notes:          upd.Notes,
	}

	err := s.DB.QueryRowContext(ctx, `
		UPDATE rsvps r
		SET status = $1, number_of_guests = $2, response_date = $3, notes = $4
		FROM guests g, events e
		WHERE r.id = $5 AND g.id = r.guest_id AND e.id = g.event_id AND e.created_by = $6
		RETURNING r.guest_id`,
		rsvp.Status, rsvp.NumberOfGuests, rsvp.ResponseDate, rsvp.Notes, rsvpID, userID,
	).Scan(&rsvp.GuestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RSVP{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.RSVP{}, fmt.Errorf("%s: %w", op, err)
	}

	return rsvp, nil
}
