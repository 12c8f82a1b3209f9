package model

import "time"

// Order represents a purchase record. Reference is the buyer-facing
// identifier used to reconcile manual payments.
type Order struct {
	ID             int64     `json:"id"`
	Reference      string    `json:"reference"`
	UserID         *int64    `json:"user_id,omitempty"`
	ArtworkID      int64     `json:"artwork_id"`
	PaymentMethod  string    `json:"payment_method"`
	PaymentStatus  string    `json:"payment_status"`
	ShippingStatus string    `json:"shipping_status"`
	PaymentProof   string    `json:"payment_proof,omitempty"`
	TrackingNumber string    `json:"tracking_number,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Payment statuses.
const (
	PaymentAwaiting    = "awaiting_payment"
	PaymentNeedsReview = "needs_review"
	PaymentPaid        = "paid"
	PaymentFailed      = "failed"
	PaymentRefunded    = "refunded"
)

// Shipping statuses.
const (
	ShippingCreated    = "created"
	ShippingProcessing = "processing"
	ShippingShipped    = "shipped"
	ShippingDelivered  = "delivered"
	ShippingCancelled  = "cancelled"
)

// PaymentMethodCashApp is the fixed method tag for the manual-proof flow.
const PaymentMethodCashApp = "cashapp"

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentAwaiting, PaymentNeedsReview, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// ValidShippingStatus reports whether s is a known shipping status.
func ValidShippingStatus(s string) bool {
	switch s {
	case ShippingCreated, ShippingProcessing, ShippingShipped, ShippingDelivered, ShippingCancelled:
		return true
	}
	return false
}
