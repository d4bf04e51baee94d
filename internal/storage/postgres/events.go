package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventPlanner/internal/models"
	"eventPlanner/internal/storage"
)

const eventColumns = `id, title, description, event_type, status, start_date, end_date,
		       venue, location, max_capacity, created_by, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner, extra ...any) (models.Event, error) {
	var e models.Event

	dest := append([]any{
		&e.ID,
		&e.Title,
		&e.Description,
		&e.EventType,
		&e.Status,
		&e.StartDate,
		&e.EndDate,
		&e.Venue,
		&e.Location,
		&e.MaxCapacity,
		&e.CreatedBy,
		&e.CreatedAt,
		&e.UpdatedAt,
	}, extra...)

	if err := row.Scan(dest...); err != nil {
		return models.Event{}, err
	}

	return e, nil
}

func (s *Storage) CreateEvent(ctx context.Context, e models.Event) (int64, error) {
	const op = "storage.postgres.CreateEvent"

	query := `
		INSERT INTO events (title, description, event_type, status, start_date, end_date,
		                    venue, location, max_capacity, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id int64
	err := s.DB.QueryRowContext(ctx, query,
		e.Title,
		e.Description,
		e.EventType,
		e.Status,
		e.StartDate,
		e.EndDate,
		e.Venue,
		e.Location,
		e.MaxCapacity,
		e.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// EventForOrganizer returns the event only when userID created it.
func (s *Storage) EventForOrganizer(ctx context.Context, eventID, userID int64) (models.Event, error) {
	const op = "storage.postgres.EventForOrganizer"

	query := `SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1 AND created_by = $2`

	e, err := scanEvent(s.DB.QueryRowContext(ctx, query, eventID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Event{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	return e, nil
}

// EventsForOrganizer returns one page (1-based) of the organizer's events,
// newest start date first, along with the organizer's total event count.
func (s *Storage) EventsForOrganizer(ctx context.Context, userID int64, page int) ([]models.Event, int, error) {
	const op = "storage.postgres.EventsForOrganizer"

	if page < 1 {
		page = 1
	}

	query := `SELECT ` + eventColumns + `, COUNT(*) OVER()
		FROM events
		WHERE created_by = $1
		ORDER BY start_date DESC, id DESC
		LIMIT $2 OFFSET $3`

	rows, err := s.DB.QueryContext(ctx, query, userID, models.EventsPerPage, (page-1)*models.EventsPerPage)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	events := make([]models.Event, 0, models.EventsPerPage)
	var total int
	for rows.Next() {
		e, err := scanEvent(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: failed to scan event: %w", op, err)
		}
		events = append(events, e)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	if len(events) == 0 && page > 1 {
		// OFFSET past the end yields no window row to read the total from.
		if err = s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events WHERE created_by = $1`, userID).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	return events, total, nil
}

func (s *Storage) Dashboard(ctx context.Context, userID int64) (models.Dashboard, error) {
	const op = "storage.postgres.Dashboard"

	var d models.Dashboard

	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events WHERE created_by = $1`, userID).Scan(&d.TotalEvents)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `SELECT ` + eventColumns + `
		FROM events
		WHERE created_by = $1 AND status IN ($2, $3)
		ORDER BY start_date ASC
		LIMIT $4`

	rows, err := s.DB.QueryContext(ctx, query,
		userID,
		models.EventStatusPlanning,
		models.EventStatusConfirmed,
		models.UpcomingEventsMax,
	)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	d.Upcoming = make([]models.Event, 0, models.UpcomingEventsMax)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return models.Dashboard{}, fmt.Errorf("%s: failed to scan event: %w", op, err)
		}
		d.Upcoming = append(d.Upcoming, e)
	}

	if err = rows.Err(); err != nil {
		return models.Dashboard{}, fmt.Errorf("%s: %w", op, err)
	}

	return d, nil
}

// UpdateEvent rewrites the editable fields of e.ID when e.CreatedBy owns it.
func (s *Storage) UpdateEvent(ctx context.Context, e models.Event) error {
	const op = "storage.postgres.UpdateEvent"

	query := `
		UPDATE events
		SET title = $1, description = $2, event_type = $3, status = $4, start_date = $5,
		    end_date = $6, venue = $7, location = $8, max_capacity = $9, updated_at = NOW()
		WHERE id = $10 AND created_by = $11`

	res, err := s.DB.ExecContext(ctx, query,
		e.Title,
		e.Description,
		e.EventType,
		e.Status,
		e.StartDate,
		e.EndDate,
		e.Venue,
		e.Location,
		e.MaxCapacity,
		e.ID,
		e.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = affectedOrNotFound(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteEvent removes the event and, through cascades, everything rooted in it.
func (s *Storage) DeleteEvent(ctx context.Context, eventID, userID int64) error {
	const op = "storage.postgres.DeleteEvent"

	res, err := s.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1 AND created_by = $2`, eventID, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = affectedOrNotFound(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
