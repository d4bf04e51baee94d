package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventPlanner/internal/models"
	"eventPlanner/internal/storage"
)

func (s *Storage) CreateUser(ctx context.Context, u models.User) (int64, error) {
	const op = "storage.postgres.CreateUser"

	query := `
		INSERT INTO users (username, email, first_name, last_name, phone_number, role, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := s.DB.QueryRowContext(ctx, query,
		u.Username,
		u.Email,
		u.FirstName,
		u.LastName,
		u.PhoneNumber,
		u.Role,
		u.PasswordHash,
	).Scan(&id)
	if err != nil {
		if pqCode(err) == codeUniqueViolation {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrUserExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UserByUsername(ctx context.Context, username string) (models.User, error) {
	const op = "storage.postgres.UserByUsername"

	u, err := scanUser(s.DB.QueryRowContext(ctx, userSelect+` WHERE username = $1`, username))
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}

func (s *Storage) UserByID(ctx context.Context, id int64) (models.User, error) {
	const op = "storage.postgres.UserByID"

	u, err := scanUser(s.DB.QueryRowContext(ctx, userSelect+` WHERE id = $1`, id))
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}

const userSelect = `
		SELECT id, username, email, first_name, last_name, phone_number, role, password_hash, created_at
		FROM users`

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User

	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.PhoneNumber,
		&u.Role,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}

	return u, nil
}
