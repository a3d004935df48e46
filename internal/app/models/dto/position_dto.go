package dto

// CreatePositionRequest is the POST /api/teacher-positions request body.
type CreatePositionRequest struct {
	Code        string `json:"code" binding:"required" example:"HEAD"`
	Name        string `json:"name" binding:"required" example:"Head of Faculty"`
	Description string `json:"description" example:"Leads the faculty"`
	Status      string `json:"status" example:"ACTIVE"` // "ACTIVE" marks the position active
}

// PositionResponse is the API shape of a job-position catalog entry.
type PositionResponse struct {
	ID          int64  `json:"id" example:"1"`
	Code        string `json:"code" example:"HEAD"`
	Name        string `json:"name" example:"Head of Faculty"`
	Description string `json:"description"`
	Status      string `json:"status" example:"ACTIVE"`
}
