package models

// RoleType defines the role attached to a person record
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleTeacher RoleType = "TEACHER"
	RoleAdmin   RoleType = "ADMIN"
)

// StatusActive and StatusInactive are the derived status labels exposed by
// the API for records carrying an is_active flag.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)
