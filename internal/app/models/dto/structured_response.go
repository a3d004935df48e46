package dto

import "time"

// StructuredResponse provides the base structured API response envelope.
// Every endpoint, success or failure, answers in this shape.
type StructuredResponse struct {
	Success    bool            `json:"success" example:"true"`
	Message    string          `json:"message" example:"Operation completed successfully"`
	Data       interface{}     `json:"data,omitempty"`
	Pagination *PaginationInfo `json:"pagination,omitempty"`
	Error      *ErrorDetail    `json:"error,omitempty"`
	Timestamp  time.Time       `json:"timestamp" example:"2026-08-31T12:01:05.123Z"`
}

// PaginationInfo carries paging metadata for list endpoints.
type PaginationInfo struct {
	Page       int   `json:"page" example:"1"`
	Limit      int   `json:"limit" example:"10"`
	TotalItems int64 `json:"totalItems" example:"15"`
	TotalPages int   `json:"totalPages" example:"2"`
}

// NewStructuredResponse creates a standard structured API response
func NewStructuredResponse(data interface{}, message string) StructuredResponse {
	return StructuredResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewPaginatedResponse creates a structured response carrying paging metadata
func NewPaginatedResponse(data interface{}, message string, pagination PaginationInfo) StructuredResponse {
	return StructuredResponse{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: &pagination,
		Timestamp:  time.Now(),
	}
}
