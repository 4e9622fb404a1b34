package models

import (
	"time"
)

// Coach lifecycle statuses.
const (
	CoachStatusActive   = "active"
	CoachStatusInactive = "inactive"
	CoachStatusOnLeave  = "on-leave"
)

// ValidCoachStatuses defines the known coach statuses.
var ValidCoachStatuses = map[string]bool{
	CoachStatusActive:   true,
	CoachStatusInactive: true,
	CoachStatusOnLeave:  true,
}

// SocialMedia holds optional social profile links for a coach.
type SocialMedia struct {
	Instagram *string `json:"instagram,omitempty"`
	Facebook  *string `json:"facebook,omitempty"`
	YouTube   *string `json:"youtube,omitempty"`
}

// Coach represents a coach record
type Coach struct {
	ID             int          `json:"id" db:"id"`
	Name           string       `json:"name" db:"name"`
	Email          string       `json:"email" db:"email"`
	Phone          *string      `json:"phone" db:"phone"`
	Specialties    []string     `json:"specialties" db:"specialties"`
	Experience     *string      `json:"experience" db:"experience"`
	Rating         *float64     `json:"rating" db:"rating"`
	Students       *int         `json:"students" db:"students"`
	Status         string       `json:"status" db:"status"`
	Avatar         *string      `json:"avatar" db:"avatar"`
	Bio            *string      `json:"bio" db:"bio"`
	Certifications []string     `json:"certifications" db:"certifications"`
	JoinedAt       time.Time    `json:"joinedAt" db:"joined_at"`
	SocialMedia    *SocialMedia `json:"socialMedia" db:"social_media"`
}

// CoachInput carries the client-editable fields of a coach.
// Rating and student counts come from external review/enrollment flows.
type CoachInput struct {
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Specialties    StringList   `json:"specialties"`
	Experience     string       `json:"experience"`
	Status         string       `json:"status"`
	Avatar         string       `json:"avatar"`
	Bio            string       `json:"bio"`
	Certifications StringList   `json:"certifications"`
	SocialMedia    *SocialMedia `json:"socialMedia"`
}
