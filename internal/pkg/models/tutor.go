package models

import (
	"time"

	"github.com/google/uuid"
)

// Subject is an entry in the subject catalog
type Subject struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Category string    `json:"category" db:"category"`
}

// Tutor is the discovery view of a tutor profile: the profile joined with
// its subjects and price range. Sponsored tutors sort first.
type Tutor struct {
	ID            uuid.UUID `json:"id" db:"id"`
	FullName      string    `json:"full_name" db:"full_name"`
	Bio           string    `json:"bio" db:"bio"`
	AvatarURL     string    `json:"avatar_url,omitempty" db:"avatar_url"`
	Sponsored     bool      `json:"sponsored" db:"sponsored"`
	Subjects      []Subject `json:"subjects,omitempty"`
	MinPriceCents int64     `json:"min_price_cents" db:"min_price_cents"`
	Currency      string    `json:"currency" db:"currency"`
}

// TutorPricing is one row of a tutor's price list: the price for a class of
// the given duration, in currency minor units.
type TutorPricing struct {
	ID              uuid.UUID `json:"id" db:"id"`
	TutorID         uuid.UUID `json:"tutor_id" db:"tutor_id"`
	DurationMinutes int       `json:"duration_minutes" db:"duration_minutes"`
	PriceCents      int64     `json:"price_cents" db:"price_cents"`
	Currency        string    `json:"currency" db:"currency"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// PricingEntryRequest is one submitted price-list row. Price is a decimal
// string ("5000.50") parsed into minor units on the way in.
type PricingEntryRequest struct {
	DurationMinutes int    `json:"duration_minutes"`
	Price           string `json:"price"`
	Currency        string `json:"currency,omitempty"`
}

// TutorFilter narrows tutor discovery
type TutorFilter struct {
	SubjectID *uuid.UUID
	Limit     int
}
