package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/halcyonarts/gallery/internal/model"
)

// CreateUser creates a new user. The email is normalized to lowercase.
// Returns ErrDuplicate if the email is already registered.
func CreateUser(ctx context.Context, db *sql.DB, name, email, passwordHash string, role model.Role) (*model.User, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO users (name, email, password_hash, role) VALUES (?, ?, ?, ?)`,
		name, NormalizeEmail(email), passwordHash, role,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting user id: %w", err)
	}

	return GetUser(ctx, db, id)
}

// GetUser returns a user by ID.
func GetUser(ctx context.Context, db *sql.DB, id int64) (*model.User, error) {
	u := &model.User{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, role, created_at
		 FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}

// GetUserByEmail returns a user by email, matched case-insensitively.
func GetUserByEmail(ctx context.Context, db *sql.DB, email string) (*model.User, error) {
	u := &model.User{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, role, created_at
		 FROM users WHERE email = ?`, NormalizeEmail(email),
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	return u, nil
}

// ListUsers returns users, newest first, capped at limit (max 250).
func ListUsers(ctx context.Context, db *sql.DB, limit int) ([]model.User, error) {
	if limit <= 0 || limit > 250 {
		limit = 250
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, name, email, password_hash, role, created_at
		 FROM users ORDER BY created_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateUserRole changes a user's role and returns the updated record.
// Returns nil if no such user exists.
func UpdateUserRole(ctx context.Context, db *sql.DB, id int64, role model.Role) (*model.User, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE users SET role = ? WHERE id = ?`, role, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating user role: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, nil
	}
	return GetUser(ctx, db, id)
}

// UpdateUser rewrites a user's name, role, and password hash. Used by the
// startup bootstrap to re-assert the configured admin identity.
func UpdateUser(ctx context.Context, db *sql.DB, id int64, name string, role model.Role, passwordHash string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE users SET name = ?, role = ?, password_hash = ? WHERE id = ?`,
		name, role, passwordHash, id,
	)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	return nil
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
