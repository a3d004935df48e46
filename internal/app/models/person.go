package models

import (
	"time"
)

// Person defines the identity record based on the 'persons' table.
// A Person is created once and referenced by role records such as Teacher;
// it is never embedded.
type Person struct {
	ID             int64      `json:"id" db:"id" example:"1"`                                        // Unique identifier for the person
	Email          string     `json:"email" db:"email" example:"teacher@school.edu.vn"`              // Email address, globally unique
	FullName       string     `json:"fullName" db:"full_name" example:"Nguyen Van A"`                // Full display name
	PhoneNumber    *string    `json:"phoneNumber,omitempty" db:"phone_number" example:"0901234567"`  // Phone number (nullable)
	Address        *string    `json:"address,omitempty" db:"address" example:"12 Nguyen Trai, HCMC"` // Postal address (nullable)
	IdentityNumber *string    `json:"identityNumber,omitempty" db:"identity_number"`                 // National identity number (nullable)
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`                      // Date of birth (nullable)
	Role           RoleType   `json:"role" db:"role" example:"TEACHER"`                              // Role tag (STUDENT, TEACHER or ADMIN)
	IsDeleted      bool       `json:"isDeleted" db:"is_deleted" example:"false"`                     // Soft-delete flag
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`                                     // Timestamp when the record was created
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`                                     // Timestamp when the record was last updated
}
