package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/halcyonarts/gallery/internal/model"
)

const commissionColumns = `id, name, email, size_request, color_palette, description, budget,
	timeline, notes, status, created_at, updated_at`

// CommissionUpdate is a partial update; nil fields are left untouched.
type CommissionUpdate struct {
	Status *string
	Notes  *string
}

// CreateCommission inserts a new commission request with status "new".
func CreateCommission(ctx context.Context, db *sql.DB, c model.Commission) (*model.Commission, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO commissions (name, email, size_request, color_palette, description, budget, timeline, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Name, NormalizeEmail(c.Email), c.SizeRequest, c.ColorPalette, c.Description, c.Budget, c.Timeline, c.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("creating commission: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting commission id: %w", err)
	}

	return GetCommission(ctx, db, id)
}

// GetCommission returns a commission by ID.
func GetCommission(ctx context.Context, db *sql.DB, id int64) (*model.Commission, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+commissionColumns+` FROM commissions WHERE id = ?`, id,
	)
	c, err := scanCommission(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return c, err
}

// ListCommissions returns commissions, newest first, capped at limit (max 200).
func ListCommissions(ctx context.Context, db *sql.DB, limit int) ([]model.Commission, error) {
	if limit <= 0 || limit > 200 {
		limit = 200
	}

	rows, err := db.QueryContext(ctx,
		`SELECT `+commissionColumns+` FROM commissions ORDER BY created_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing commissions: %w", err)
	}
	defer rows.Close()

	var commissions []model.Commission
	for rows.Next() {
		c, err := scanCommission(rows)
		if err != nil {
			return nil, err
		}
		commissions = append(commissions, *c)
	}
	return commissions, rows.Err()
}

// UpdateCommission applies a partial status/notes update and returns the
// updated record. Returns nil if no such commission exists.
func UpdateCommission(ctx context.Context, db *sql.DB, id int64, update CommissionUpdate) (*model.Commission, error) {
	var sets []string
	var args []any

	if update.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *update.Status)
	}
	if update.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *update.Notes)
	}

	if len(sets) == 0 {
		return GetCommission(ctx, db, id)
	}

	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	result, err := db.ExecContext(ctx,
		`UPDATE commissions SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...,
	)
	if err != nil {
		return nil, fmt.Errorf("updating commission: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, nil
	}

	return GetCommission(ctx, db, id)
}

// DeleteCommission permanently removes a commission. Returns false if no
// such commission exists.
func DeleteCommission(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM commissions WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting commission: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting commission: %w", err)
	}
	return n > 0, nil
}

func scanCommission(row rowScanner) (*model.Commission, error) {
	c := &model.Commission{}
	var notes sql.NullString
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.SizeRequest, &c.ColorPalette, &c.Description,
		&c.Budget, &c.Timeline, &notes, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning commission: %w", err)
	}
	c.Notes = notes.String
	return c, nil
}
