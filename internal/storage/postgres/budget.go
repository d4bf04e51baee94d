package postgres

import (
	"context"
	"fmt"

	"eventPlanner/internal/models"
	"eventPlanner/internal/storage"

	"github.com/shopspring/decimal"
)

// BudgetForOrganizer returns the items of an event owned by userID together with
// totals summed by the database. An event without items totals zero.
func (s *Storage) BudgetForOrganizer(ctx context.Context, eventID, userID int64) ([]models.BudgetItem, models.BudgetTotals, error) {
	const op = "storage.postgres.BudgetForOrganizer"

	if err := ensureEventOwner(ctx, s.DB, eventID, userID); err != nil {
		return nil, models.BudgetTotals{}, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, event_id, event_vendor_id, category, name, estimated_cost, actual_cost, status, payment_date
		FROM budget_items
		WHERE event_id = $1
		ORDER BY category, id`, eventID)
	if err != nil {
		return nil, models.BudgetTotals{}, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]models.BudgetItem, 0)
	for rows.Next() {
		var item models.BudgetItem
		err = rows.Scan(
			&item.ID,
			&item.EventID,
			&item.EventVendorID,
			&item.Category,
			&item.Name,
			&item.EstimatedCost,
			&item.ActualCost,
			&item.Status,
			&item.PaymentDate,
		)
		if err != nil {
			return nil, models.BudgetTotals{}, fmt.Errorf("%s: failed to scan budget item: %w", op, err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, models.BudgetTotals{}, fmt.Errorf("%s: %w", op, err)
	}

	var estimated, actual decimal.Decimal
	err = s.DB.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(estimated_cost), 0), COALESCE(SUM(actual_cost), 0)
		FROM budget_items
		WHERE event_id = $1`, eventID,
	).Scan(&estimated, &actual)
	if err != nil {
		return nil, models.BudgetTotals{}, fmt.Errorf("%s: failed to sum budget: %w", op, err)
	}

	return items, models.NewBudgetTotals(estimated, actual), nil
}

// CreateBudgetItem adds an item to an event owned by userID. A vendor link must
// point at a contract of the same event.
func (s *Storage) CreateBudgetItem(ctx context.Context, item models.BudgetItem, userID int64) (int64, error) {
	const op = "storage.postgres.CreateBudgetItem"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	if err = ensureEventOwner(ctx, tx, item.EventID, userID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err = ensureEventVendorOfEvent(ctx, tx, item.EventVendorID, item.EventID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO budget_items (event_id, event_vendor_id, category, name, estimated_cost, actual_cost, status, payment_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		item.EventID, item.EventVendorID, item.Category, item.Name,
		item.EstimatedCost, item.ActualCost, item.Status, item.PaymentDate,
	).Scan(&id)
	if err != nil {
		if pqCode(err) == codeForeignKeyViolation {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrInvalidReference)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return id, nil
}

// UpdateBudgetItemForOrganizer rewrites an item reached through an event userID owns.
// item.EventID is ignored; the item stays on its event.
func (s *Storage) UpdateBudgetItemForOrganizer(ctx context.Context, item models.BudgetItem, userID int64) error {
	const op = "storage.postgres.UpdateBudgetItemForOrganizer"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var eventID int64
	err = tx.QueryRowContext(ctx, `
		SELECT b.event_id
		FROM budget_items b
		JOIN events e ON e.id = b.event_id
		WHERE b.id = $1 AND e.created_by = $2
		FOR UPDATE OF b`,
		item.ID, userID,
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, noRows(err))
	}

	if err = ensureEventVendorOfEvent(ctx, tx, item.EventVendorID, eventID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE budget_items
		SET event_vendor_id = $1, category = $2, name = $3, estimated_cost = $4,
		    actual_cost = $5, status = $6, payment_date = $7
		WHERE id = $8`,
		item.EventVendorID, item.Category, item.Name, item.EstimatedCost,
		item.ActualCost, item.Status, item.PaymentDate, item.ID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return nil
}

func (s *Storage) DeleteBudgetItemForOrganizer(ctx context.Context, id, userID int64) error {
	const op = "storage.postgres.DeleteBudgetItemForOrganizer"

	res, err := s.DB.ExecContext(ctx, `
		DELETE FROM budget_items b
		USING events e
		WHERE b.id = $1 AND e.id = b.event_id AND e.created_by = $2`,
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

func ensureEventVendorOfEvent(ctx context.Context, q querier, eventVendorID *int64, eventID int64) error {
	if eventVendorID == nil {
		return nil
	}

	var ok bool
	err := q.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM event_vendors
			WHERE id = $1 AND event_id = $2
		)`, *eventVendorID, eventID).Scan(&ok)
	if err != nil {
		return fmt.Errorf("failed to check event vendor: %w", err)
	}

	if !ok {
		return storage.ErrInvalidReference
	}

	return nil
}
