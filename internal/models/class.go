package models

import (
	"time"
)

// Class lifecycle statuses.
const (
	ClassStatusActive   = "active"
	ClassStatusFull     = "full"
	ClassStatusInactive = "inactive"
)

// ValidClassStatuses defines the known class statuses.
var ValidClassStatuses = map[string]bool{
	ClassStatusActive:   true,
	ClassStatusFull:     true,
	ClassStatusInactive: true,
}

// ClassRecord represents a dance class record
type ClassRecord struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Description  *string   `json:"description" db:"description"`
	Instructor   string    `json:"instructor" db:"instructor"`
	InstructorID int       `json:"instructorId" db:"instructor_id"`
	Schedule     *string   `json:"schedule" db:"schedule"`
	Duration     *int      `json:"duration" db:"duration"`
	Capacity     *int      `json:"capacity" db:"capacity"`
	Enrolled     int       `json:"enrolled" db:"enrolled"`
	Price        *float64  `json:"price" db:"price"`
	Status       string    `json:"status" db:"status"`
	Level        *string   `json:"level" db:"level"`
	Image        *string   `json:"image" db:"image"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// ClassInput carries the client-editable fields of a class.
// The enrolled counter is owned by external enrollment flows.
type ClassInput struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Instructor   string   `json:"instructor"`
	InstructorID OptInt   `json:"instructorId"`
	Schedule     string   `json:"schedule"`
	Duration     OptInt   `json:"duration"`
	Capacity     OptInt   `json:"capacity"`
	Price        OptFloat `json:"price"`
	Status       string   `json:"status"`
	Level        string   `json:"level"`
	Image        string   `json:"image"`
}
