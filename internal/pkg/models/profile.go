package models

import (
	"time"

	"github.com/google/uuid"
)

// ProfileRole distinguishes students from tutors
type ProfileRole string

const (
	RoleStudent ProfileRole = "student"
	RoleTutor   ProfileRole = "tutor"
)

// Profile represents a marketplace user profile. Sponsored profiles get
// increased visibility in tutor discovery; the flag is flipped by an
// approved subscription payment.
type Profile struct {
	ID             uuid.UUID   `json:"id" db:"id"`
	FullName       string      `json:"full_name" db:"full_name"`
	Email          string      `json:"email" db:"email"`
	Role           ProfileRole `json:"role" db:"role"`
	Bio            string      `json:"bio" db:"bio"`
	AvatarURL      string      `json:"avatar_url,omitempty" db:"avatar_url"`
	Sponsored      bool        `json:"sponsored" db:"sponsored"`
	SponsoredUntil *time.Time  `json:"sponsored_until,omitempty" db:"sponsored_until"`
	DeletedAt      *time.Time  `json:"-" db:"deleted_at"`
	CreatedAt      time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at" db:"updated_at"`
}

// ProfileUpdateRequest carries the caller-editable profile fields
type ProfileUpdateRequest struct {
	FullName  string `json:"full_name"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

// AccountDeleteRequest requires the user to type the confirmation word
// before the account is removed
type AccountDeleteRequest struct {
	Confirmation string `json:"confirmation"`
}

// AccountDeleteConfirmation is the exact text required to delete an account
const AccountDeleteConfirmation = "ELIMINAR"
