package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventPlanner/internal/models"
	"eventPlanner/internal/storage"
)

func (s *Storage) CreateVendor(ctx context.Context, v models.Vendor) (int64, error) {
	const op = "storage.postgres.CreateVendor"

	var id int64
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO vendors (name, category, contact_person, email, phone_number, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		v.Name, v.Category, v.ContactPerson, v.Email, v.PhoneNumber, v.Notes,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) Vendors(ctx context.Context) ([]models.Vendor, error) {
	const op = "storage.postgres.Vendors"

	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, name, category, contact_person, email, phone_number, notes
		FROM vendors
		ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	vendors := make([]models.Vendor, 0)
	for rows.Next() {
		var v models.Vendor
		err = rows.Scan(&v.ID, &v.Name, &v.Category, &v.ContactPerson, &v.Email, &v.PhoneNumber, &v.Notes)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan vendor: %w", op, err)
		}
		vendors = append(vendors, v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return vendors, nil
}

func (s *Storage) UpdateVendor(ctx context.Context, v models.Vendor) error {
	const op = "storage.postgres.UpdateVendor"

	res, err := s.DB.ExecContext(ctx, `
		UPDATE vendors
		SET name = $1, category = $2, contact_person = $3, email = $4, phone_number = $5, notes = $6
		WHERE id = $7`,
		v.Name, v.Category, v.ContactPerson, v.Email, v.PhoneNumber, v.Notes, v.ID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = affectedOrNotFound(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) DeleteVendor(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteVendor"

	res, err := s.DB.ExecContext(ctx, `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = affectedOrNotFound(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// VendorAssignment reports the vendor's name and whether it is already assigned
// to eventID by a contract other than excludeID (0 excludes nothing). The event
// must belong to userID; an unknown vendor is an invalid reference.
func (s *Storage) VendorAssignment(ctx context.Context, eventID, vendorID, excludeID, userID int64) (string, bool, error) {
	const op = "storage.postgres.VendorAssignment"

	if err := ensureEventOwner(ctx, s.DB, eventID, userID); err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}

	var (
		name     string
		assigned bool
	)
	err := s.DB.QueryRowContext(ctx, `
		SELECT v.name, EXISTS(
			SELECT 1 FROM event_vendors ev
			WHERE ev.event_id = $1 AND ev.vendor_id = v.id AND ev.id <> $3
		)
		FROM vendors v
		WHERE v.id = $2`,
		eventID, vendorID, excludeID,
	).Scan(&name, &assigned)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, fmt.Errorf("%s: %w", op, storage.ErrInvalidReference)
		}
		return "", false, fmt.Errorf("%s: %w", op, err)
	}

	return name, assigned, nil
}

// EventVendorsForOrganizer lists the contracts of an event owned by userID.
func (s *Storage) EventVendorsForOrganizer(ctx context.Context, eventID, userID int64) ([]models.EventVendor, error) {
	const op = "storage.postgres.EventVendorsForOrganizer"

	if err := ensureEventOwner(ctx, s.DB, eventID, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT ev.id, ev.event_id, ev.vendor_id, ev.service_description, ev.contract_amount, ev.status,
		       v.id, v.name, v.category, v.contact_person, v.email, v.phone_number, v.notes
		FROM event_vendors ev
		JOIN vendors v ON v.id = ev.vendor_id
		WHERE ev.event_id = $1
		ORDER BY ev.id`, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	contracts := make([]models.EventVendor, 0)
	for rows.Next() {
		var (
			ev models.EventVendor
			v  models.Vendor
		)
		err = rows.Scan(
			&ev.ID,
			&ev.EventID,
			&ev.VendorID,
			&ev.ServiceDescription,
			&ev.ContractAmount,
			&ev.Status,
			&v.ID,
			&v.Name,
			&v.Category,
			&v.ContactPerson,
			&v.Email,
			&v.PhoneNumber,
			&v.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan event vendor: %w", op, err)
		}
		ev.Vendor = &v
		contracts = append(contracts, ev)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return contracts, nil
}

// EventVendorForOrganizer returns a single contract reached through an event userID owns.
func (s *Storage) EventVendorForOrganizer(ctx context.Context, id, userID int64) (models.EventVendor, error) {
	const op = "storage.postgres.EventVendorForOrganizer"

	var ev models.EventVendor
	err := s.DB.QueryRowContext(ctx, `
		SELECT ev.id, ev.event_id, ev.vendor_id, ev.service_description, ev.contract_amount, ev.status
		FROM event_vendors ev
		JOIN events e ON e.id = ev.event_id
		WHERE ev.id = $1 AND e.created_by = $2`,
		id, userID,
	).Scan(&ev.ID, &ev.EventID, &ev.VendorID, &ev.ServiceDescription, &ev.ContractAmount, &ev.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EventVendor{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.EventVendor{}, fmt.Errorf("%s: %w", op, err)
	}

	return ev, nil
}

// AssignVendor creates the contract for ev.EventID, which userID must own.
// UNIQUE(event_id, vendor_id) settles races the caller's pre-check lost.
func (s *Storage) AssignVendor(ctx context.Context, ev models.EventVendor, userID int64) (int64, error) {
	const op = "storage.postgres.AssignVendor"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	if err = ensureEventOwner(ctx, tx, ev.EventID, userID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO event_vendors (event_id, vendor_id, service_description, contract_amount, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		ev.EventID, ev.VendorID, ev.ServiceDescription, ev.ContractAmount, ev.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapEventVendorErr(err))
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return id, nil
}

// UpdateEventVendorForOrganizer rewrites a contract reached through an event userID owns.
func (s *Storage) UpdateEventVendorForOrganizer(ctx context.Context, ev models.EventVendor, userID int64) error {
	const op = "storage.postgres.UpdateEventVendorForOrganizer"

	res, err := s.DB.ExecContext(ctx, `
		UPDATE event_vendors ev
		SET vendor_id = $1, service_description = $2, contract_amount = $3, status = $4
		FROM events e
		WHERE ev.id = $5 AND e.id = ev.event_id AND e.created_by = $6`,
		ev.VendorID, ev.ServiceDescription, ev.ContractAmount, ev.Status, ev.ID, userID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapEventVendorErr(err))
	}

	if err = affectedOrNotFound(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) DeleteEventVendorForOrganizer(ctx context.Context, id, userID int64) error {
	const op = "storage.postgres.DeleteEventVendorForOrganizer"

	res, err := s.DB.ExecContext(ctx, `
		DELETE FROM event_vendors ev
		USING events e
		WHERE ev.id = $1 AND e.id = ev.event_id AND e.created_by = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = affectedOrNotFound(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func mapEventVendorErr(err error) error {
	switch pqCode(err) {
	case codeUniqueViolation:
		return storage.ErrEventVendorExists
	case codeForeignKeyViolation:
		return storage.ErrInvalidReference
	default:
		return err
	}
}
