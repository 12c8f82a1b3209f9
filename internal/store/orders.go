package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/halcyonarts/gallery/internal/model"
)

const orderColumns = `id, reference, user_id, artwork_id, payment_method, payment_status,
	shipping_status, payment_proof, tracking_number, created_at, updated_at`

// OrderStatusUpdate is a partial status update; nil fields are left
// untouched.
type OrderStatusUpdate struct {
	PaymentStatus  *string
	ShippingStatus *string
	TrackingNumber *string
}

// CreateOrder inserts a new order, assigning it a fresh reference.
func CreateOrder(ctx context.Context, db *sql.DB, o model.Order) (*model.Order, error) {
	reference := uuid.NewString()

	result, err := db.ExecContext(ctx,
		`INSERT INTO orders (reference, user_id, artwork_id, payment_method, payment_status,
		                     shipping_status, payment_proof, tracking_number)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		reference, o.UserID, o.ArtworkID, o.PaymentMethod, o.PaymentStatus,
		o.ShippingStatus, o.PaymentProof, o.TrackingNumber,
	)
	if err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting order id: %w", err)
	}

	return GetOrder(ctx, db, id)
}

// GetOrder returns an order by ID.
func GetOrder(ctx context.Context, db *sql.DB, id int64) (*model.Order, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = ?`, id,
	)
	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return o, err
}

// ListOrders returns orders, newest first, capped at limit (max 100).
func ListOrders(ctx context.Context, db *sql.DB, limit int) ([]model.Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	rows, err := db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

// UpdateOrderStatus applies a partial status update and returns the updated
// record. Returns nil if no such order exists.
func UpdateOrderStatus(ctx context.Context, db *sql.DB, id int64, update OrderStatusUpdate) (*model.Order, error) {
	var sets []string
	var args []any

	if update.PaymentStatus != nil {
		sets = append(sets, "payment_status = ?")
		args = append(args, *update.PaymentStatus)
	}
	if update.ShippingStatus != nil {
		sets = append(sets, "shipping_status = ?")
		args = append(args, *update.ShippingStatus)
	}
	if update.TrackingNumber != nil {
		sets = append(sets, "tracking_number = ?")
		args = append(args, *update.TrackingNumber)
	}

	if len(sets) == 0 {
		return GetOrder(ctx, db, id)
	}

	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	result, err := db.ExecContext(ctx,
		`UPDATE orders SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...,
	)
	if err != nil {
		return nil, fmt.Errorf("updating order status: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, nil
	}

	return GetOrder(ctx, db, id)
}

// DeleteOrder permanently removes an order. Returns false if no such order
// exists.
func DeleteOrder(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting order: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting order: %w", err)
	}
	return n > 0, nil
}

func scanOrder(row rowScanner) (*model.Order, error) {
	o := &model.Order{}
	var userID sql.NullInt64
	var paymentProof, trackingNumber sql.NullString
	err := row.Scan(&o.ID, &o.Reference, &userID, &o.ArtworkID, &o.PaymentMethod, &o.PaymentStatus,
		&o.ShippingStatus, &paymentProof, &trackingNumber, &o.CreatedAt, &o.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning order: %w", err)
	}

	if userID.Valid {
		o.UserID = &userID.Int64
	}
	o.PaymentProof = paymentProof.String
	o.TrackingNumber = trackingNumber.String
	return o, nil
}
