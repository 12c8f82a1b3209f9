package model

import "time"

// Commission represents a custom-work request from the public form.
type Commission struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	SizeRequest  string    `json:"size_request"`
	ColorPalette string    `json:"color_palette"`
	Description  string    `json:"description"`
	Budget       string    `json:"budget"`
	Timeline     string    `json:"timeline"`
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Commission statuses.
const (
	CommissionNew       = "new"
	CommissionInReview  = "in_review"
	CommissionResponded = "responded"
	CommissionClosed    = "closed"
)

// ValidCommissionStatus reports whether s is a known commission status.
func ValidCommissionStatus(s string) bool {
	switch s {
	case CommissionNew, CommissionInReview, CommissionResponded, CommissionClosed:
		return true
	}
	return false
}
