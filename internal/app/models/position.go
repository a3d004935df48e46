package models

import (
	"time"
)

// Position defines a job-position catalog entry based on the 'positions'
// table. Positions are created independently and referenced by many teachers.
type Position struct {
	ID          int64     `json:"id" db:"id" example:"1"`                   // Unique identifier for the position
	Code        string    `json:"code" db:"code" example:"HEAD"`            // Globally unique position code
	Name        string    `json:"name" db:"name" example:"Head of Faculty"` // Display name
	Description string    `json:"description" db:"description"`             // Free-text description
	IsActive    bool      `json:"isActive" db:"is_active" example:"true"`   // Whether the position is in use
	IsDeleted   bool      `json:"isDeleted" db:"is_deleted"`                // Soft-delete flag
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`                // Timestamp when the record was created
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`                // Timestamp when the record was last updated
}
