package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/huyndq/school-admin/internal/app/models/dto"
)

const (
	DefaultLimit = 10
	DefaultPage  = 1 // Page numbers are 1-based
)

// ParsePaginationParams extracts page and limit from the request query.
// Absent or non-numeric values fall back to the defaults (1 and 10).
func ParsePaginationParams(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}

	return page, limit
}

// CalculateOffset converts a 1-based page number into a SQL offset.
func CalculateOffset(page, limit int) int {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return (page - 1) * limit
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
// page must be the 1-based page number.
func NewPaginationInfo(totalItems int64, page, limit int) dto.PaginationInfo {
	if limit < 1 {
		limit = DefaultLimit
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(limit)))
	}

	return dto.PaginationInfo{
		Page:       page,
		Limit:      limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
