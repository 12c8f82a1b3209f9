package model

import "time"

// Artwork represents a catalog item.
type Artwork struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description,omitempty"`
	Images           []string  `json:"images"`
	VideoURL         string    `json:"video_url,omitempty"`
	Price            float64   `json:"price"`
	Status           string    `json:"status"`
	Size             string    `json:"size"`
	Tone             string    `json:"tone"`
	EditionCount     int64     `json:"edition_count"`
	Dimensions       string    `json:"dimensions,omitempty"`
	Materials        string    `json:"materials,omitempty"`
	PaymentURL       string    `json:"payment_url,omitempty"`
	ShowInCollection bool      `json:"show_in_collection"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Artwork statuses.
const (
	ArtworkAvailable = "Available"
	ArtworkReserved  = "Reserved"
	ArtworkSold      = "Sold"
)

// Artwork sizes.
const (
	SizeSmall  = "Small"
	SizeMedium = "Medium"
	SizeLarge  = "Large"
)

// Artwork tones.
const (
	ToneCool     = "Cool"
	ToneWarm     = "Warm"
	ToneBalanced = "Balanced"
)

// ValidArtworkStatus reports whether s is a known artwork status.
func ValidArtworkStatus(s string) bool {
	return s == ArtworkAvailable || s == ArtworkReserved || s == ArtworkSold
}

// ValidSize reports whether s is a known artwork size.
func ValidSize(s string) bool {
	return s == SizeSmall || s == SizeMedium || s == SizeLarge
}

// ValidTone reports whether s is a known artwork tone.
func ValidTone(s string) bool {
	return s == ToneCool || s == ToneWarm || s == ToneBalanced
}
