package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/halcyonarts/gallery/internal/model"
)

// Overview holds the admin dashboard counts. Computed fresh per call.
type Overview struct {
	Artworks struct {
		Total     int `json:"total"`
		Available int `json:"available"`
		Sold      int `json:"sold"`
	} `json:"artworks"`
	Orders struct {
		Total                int `json:"total"`
		PendingPaymentReview int `json:"pending_payment_review"`
	} `json:"orders"`
	Commissions struct {
		Open int `json:"open"`
	} `json:"commissions"`
}

// GetOverview computes aggregate counts across all entities.
func GetOverview(ctx context.Context, db *sql.DB) (*Overview, error) {
	o := &Overview{}

	counts := []struct {
		query string
		args  []any
		dest  *int
	}{
		{`SELECT COUNT(*) FROM artworks`, nil, &o.Artworks.Total},
		{`SELECT COUNT(*) FROM artworks WHERE status = ?`, []any{model.ArtworkAvailable}, &o.Artworks.Available},
		{`SELECT COUNT(*) FROM artworks WHERE status = ?`, []any{model.ArtworkSold}, &o.Artworks.Sold},
		{`SELECT COUNT(*) FROM orders`, nil, &o.Orders.Total},
		{`SELECT COUNT(*) FROM orders WHERE payment_status IN (?, ?)`,
			[]any{model.PaymentAwaiting, model.PaymentNeedsReview}, &o.Orders.PendingPaymentReview},
		{`SELECT COUNT(*) FROM commissions WHERE status IN (?, ?)`,
			[]any{model.CommissionNew, model.CommissionInReview}, &o.Commissions.Open},
	}

	for _, c := range counts {
		if err := db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("computing overview: %w", err)
		}
	}

	return o, nil
}
