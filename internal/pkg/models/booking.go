package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPendingPayment BookingStatus = "pending_payment"
	BookingStatusConfirmed      BookingStatus = "confirmed"
	BookingStatusCancelled      BookingStatus = "cancelled"
	BookingStatusCompleted      BookingStatus = "completed"
)

// Booking represents a scheduled class between a student and a tutor. A
// booking stays pending_payment until its transaction is approved.
type Booking struct {
	ID              uuid.UUID     `json:"id" db:"id"`
	StudentID       uuid.UUID     `json:"student_id" db:"student_id"`
	TutorID         uuid.UUID     `json:"tutor_id" db:"tutor_id"`
	SubjectID       uuid.UUID     `json:"subject_id" db:"subject_id"`
	TransactionID   *uuid.UUID    `json:"transaction_id,omitempty" db:"transaction_id"`
	ScheduledAt     time.Time     `json:"scheduled_at" db:"scheduled_at"`
	DurationMinutes int           `json:"duration_minutes" db:"duration_minutes"`
	Status          BookingStatus `json:"status" db:"status"`
	Notes           string        `json:"notes" db:"notes"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
}

// BookingRequest is the payload for creating a booking
type BookingRequest struct {
	TutorID         uuid.UUID `json:"tutor_id"`
	SubjectID       uuid.UUID `json:"subject_id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Notes           string    `json:"notes"`
}
