package models

import (
	"time"
)

// Degree is an education record embedded in a Teacher. Degrees have no
// identity of their own and never leave their owning teacher.
type Degree struct {
	Type        string `json:"type" example:"Thạc sĩ"`              // Degree type as entered, normalized at read time
	School      string `json:"school" example:"HCMUS"`              // Awarding school
	Major       string `json:"major" example:"Computer Science"`    // Field of study
	Year        int    `json:"year" example:"2020"`                 // Graduation year
	IsGraduated bool   `json:"isGraduated" example:"true"`          // Whether the degree was completed
}

// Teacher defines the teacher role record based on the 'teachers' table.
// Exactly one Person underlies every Teacher; positions are linked through
// the 'teacher_positions' table and degrees are stored embedded (jsonb).
type Teacher struct {
	ID        int64       `json:"id" db:"id" example:"1"`                  // Unique identifier for the teacher
	Code      string      `json:"code" db:"code" example:"1234567890"`     // Globally unique 10-digit teacher code
	PersonID  int64       `json:"personId" db:"person_id" example:"1"`     // Owning person record
	Degrees   []Degree    `json:"degrees" db:"degrees"`                    // Embedded education history
	IsActive  bool        `json:"isActive" db:"is_active" example:"true"`  // Employment status flag
	IsDeleted bool        `json:"isDeleted" db:"is_deleted"`               // Soft-delete flag
	StartDate time.Time   `json:"startDate" db:"start_date"`               // Employment start date
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`               // Timestamp when the record was created
	UpdatedAt time.Time   `json:"updatedAt" db:"updated_at"`               // Timestamp when the record was last updated
	Person    *Person     `json:"person,omitempty"`                        // Relation, no db tag
	Positions []*Position `json:"positions,omitempty"`                     // Relation, no db tag
}
