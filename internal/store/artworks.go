package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/halcyonarts/gallery/internal/model"
)

const artworkColumns = `id, title, slug, description, images, video_url, price, status, size, tone,
	edition_count, dimensions, materials, payment_url, show_in_collection, created_at, updated_at`

// ArtworkFilter narrows ListArtworks results. Zero values mean "no filter";
// ShowInCollection nil with IncludeHidden false applies the default
// visible-only filter.
type ArtworkFilter struct {
	Size             string
	Tone             string
	Status           string
	MinPrice         *float64
	MaxPrice         *float64
	ShowInCollection *bool
	IncludeHidden    bool
	Limit            int
}

// ArtworkUpdate is a partial update; nil fields are left untouched.
type ArtworkUpdate struct {
	Title            *string
	Slug             *string
	Description      *string
	Images           *[]string
	VideoURL         *string
	Price            *float64
	Status           *string
	Size             *string
	Tone             *string
	EditionCount     *int64
	Dimensions       *string
	Materials        *string
	PaymentURL       *string
	ShowInCollection *bool
}

// CreateArtwork inserts a new artwork. Returns ErrDuplicate on a slug
// collision.
func CreateArtwork(ctx context.Context, db *sql.DB, a model.Artwork) (*model.Artwork, error) {
	images, err := json.Marshal(a.Images)
	if err != nil {
		return nil, fmt.Errorf("encoding images: %w", err)
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO artworks (title, slug, description, images, video_url, price, status, size, tone,
		                       edition_count, dimensions, materials, payment_url, show_in_collection)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Title, a.Slug, a.Description, string(images), a.VideoURL, a.Price, a.Status, a.Size, a.Tone,
		a.EditionCount, a.Dimensions, a.Materials, a.PaymentURL, a.ShowInCollection,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("creating artwork: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting artwork id: %w", err)
	}

	return GetArtwork(ctx, db, id)
}

// GetArtwork returns an artwork by ID.
func GetArtwork(ctx context.Context, db *sql.DB, id int64) (*model.Artwork, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+artworkColumns+` FROM artworks WHERE id = ?`, id,
	)
	return scanArtwork(row)
}

// GetArtworkBySlugOrID resolves a path value: numeric values match by ID or
// slug, anything else by slug only.
func GetArtworkBySlugOrID(ctx context.Context, db *sql.DB, value string) (*model.Artwork, error) {
	if id, err := strconv.ParseInt(value, 10, 64); err == nil {
		row := db.QueryRowContext(ctx,
			`SELECT `+artworkColumns+` FROM artworks WHERE id = ? OR slug = ?`, id, value,
		)
		return scanArtwork(row)
	}

	row := db.QueryRowContext(ctx,
		`SELECT `+artworkColumns+` FROM artworks WHERE slug = ?`, value,
	)
	return scanArtwork(row)
}

// ListArtworks returns artworks matching the filter, newest first, capped
// at the filter limit (default 50, max 100).
func ListArtworks(ctx context.Context, db *sql.DB, filter ArtworkFilter) ([]model.Artwork, error) {
	var conds []string
	var args []any

	if filter.Size != "" {
		conds = append(conds, "size = ?")
		args = append(args, filter.Size)
	}
	if filter.Tone != "" {
		conds = append(conds, "tone = ?")
		args = append(args, filter.Tone)
	}
	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.MinPrice != nil {
		conds = append(conds, "price >= ?")
		args = append(args, *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		conds = append(conds, "price <= ?")
		args = append(args, *filter.MaxPrice)
	}
	// An explicit visibility request overrides the default visible-only
	// filter; includeHidden lifts it entirely.
	if filter.ShowInCollection != nil {
		conds = append(conds, "show_in_collection = ?")
		args = append(args, *filter.ShowInCollection)
	} else if !filter.IncludeHidden {
		conds = append(conds, "show_in_collection = 1")
	}

	query := `SELECT ` + artworkColumns + ` FROM artworks`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	args = append(args, limit)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing artworks: %w", err)
	}
	defer rows.Close()

	var artworks []model.Artwork
	for rows.Next() {
		a, err := scanArtworkRow(rows)
		if err != nil {
			return nil, err
		}
		artworks = append(artworks, *a)
	}
	return artworks, rows.Err()
}

// UpdateArtwork applies a partial update and returns the updated record.
// Returns nil if no such artwork exists, ErrDuplicate on a slug collision.
func UpdateArtwork(ctx context.Context, db *sql.DB, id int64, update ArtworkUpdate) (*model.Artwork, error) {
	var sets []string
	var args []any

	set := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if update.Title != nil {
		set("title", *update.Title)
	}
	if update.Slug != nil {
		set("slug", *update.Slug)
	}
	if update.Description != nil {
		set("description", *update.Description)
	}
	if update.Images != nil {
		images, err := json.Marshal(*update.Images)
		if err != nil {
			return nil, fmt.Errorf("encoding images: %w", err)
		}
		set("images", string(images))
	}
	if update.VideoURL != nil {
		set("video_url", *update.VideoURL)
	}
	if update.Price != nil {
		set("price", *update.Price)
	}
	if update.Status != nil {
		set("status", *update.Status)
	}
	if update.Size != nil {
		set("size", *update.Size)
	}
	if update.Tone != nil {
		set("tone", *update.Tone)
	}
	if update.EditionCount != nil {
		set("edition_count", *update.EditionCount)
	}
	if update.Dimensions != nil {
		set("dimensions", *update.Dimensions)
	}
	if update.Materials != nil {
		set("materials", *update.Materials)
	}
	if update.PaymentURL != nil {
		set("payment_url", *update.PaymentURL)
	}
	if update.ShowInCollection != nil {
		set("show_in_collection", *update.ShowInCollection)
	}

	if len(sets) == 0 {
		return GetArtwork(ctx, db, id)
	}

	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	result, err := db.ExecContext(ctx,
		`UPDATE artworks SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("updating artwork: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, nil
	}

	return GetArtwork(ctx, db, id)
}

// DeleteArtwork permanently removes an artwork. Returns false if no such
// artwork exists.
func DeleteArtwork(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM artworks WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting artwork: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting artwork: %w", err)
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArtwork(row *sql.Row) (*model.Artwork, error) {
	a, err := scanArtworkRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return a, err
}

func scanArtworkRow(row rowScanner) (*model.Artwork, error) {
	a := &model.Artwork{}
	var description, videoURL, dimensions, materials, paymentURL sql.NullString
	var images string
	err := row.Scan(&a.ID, &a.Title, &a.Slug, &description, &images, &videoURL, &a.Price,
		&a.Status, &a.Size, &a.Tone, &a.EditionCount, &dimensions, &materials, &paymentURL,
		&a.ShowInCollection, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning artwork: %w", err)
	}

	a.Description = description.String
	a.VideoURL = videoURL.String
	a.Dimensions = dimensions.String
	a.Materials = materials.String
	a.PaymentURL = paymentURL.String
	if err := json.Unmarshal([]byte(images), &a.Images); err != nil {
		return nil, fmt.Errorf("decoding images: %w", err)
	}
	if a.Images == nil {
		a.Images = []string{}
	}
	return a, nil
}
