package store

import (
	"context"
	"database/sql"
	"fmt"
)

// AddFavorite marks an artwork as a favorite for a user. Adding the same
// favorite twice is a no-op.
func AddFavorite(ctx context.Context, db *sql.DB, userID, artworkID int64) error {
	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO user_favorites (user_id, artwork_id) VALUES (?, ?)`,
		userID, artworkID,
	)
	if err != nil {
		return fmt.Errorf("adding favorite: %w", err)
	}
	return nil
}

// RemoveFavorite removes an artwork from a user's favorites.
func RemoveFavorite(ctx context.Context, db *sql.DB, userID, artworkID int64) error {
	_, err := db.ExecContext(ctx,
		`DELETE FROM user_favorites WHERE user_id = ? AND artwork_id = ?`,
		userID, artworkID,
	)
	if err != nil {
		return fmt.Errorf("removing favorite: %w", err)
	}
	return nil
}

// ListFavorites returns the artwork IDs a user has favorited.
func ListFavorites(ctx context.Context, db *sql.DB, userID int64) ([]int64, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT artwork_id FROM user_favorites WHERE user_id = ?`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning favorite: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
