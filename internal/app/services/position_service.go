package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/huyndq/school-admin/internal/app/models"
	"github.com/huyndq/school-admin/internal/app/models/dto"
	"github.com/huyndq/school-admin/internal/pkg/apperrors"
)

// PositionService handles job-position catalog operations
type PositionService struct {
	positions PositionStore
}

// NewPositionService creates a new position service instance
func NewPositionService(positions PositionStore) *PositionService {
	return &PositionService{
		positions: positions,
	}
}

// ListPositions returns every position sorted by name, soft-deleted entries
// included.
func (s *PositionService) ListPositions(ctx context.Context) ([]dto.PositionResponse, error) {
	positions, err := s.positions.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing positions: %w", err)
	}

	formatted := make([]dto.PositionResponse, 0, len(positions))
	for _, position := range positions {
		formatted = append(formatted, formatPosition(position))
	}

	return formatted, nil
}

// CreatePosition creates a new catalog entry. Code and name are required;
// a taken code is a conflict.
func (s *PositionService) CreatePosition(ctx context.Context, req *dto.CreatePositionRequest) (*dto.PositionResponse, error) {
	if strings.TrimSpace(req.Code) == "" || strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("Position code and name are required")
	}

	exists, err := s.positions.CodeExists(ctx, req.Code)
	if err != nil {
		return nil, fmt.Errorf("error checking position code: %w", err)
	}
	if exists {
		return nil, apperrors.ErrPositionCodeExists
	}

	position := &models.Position{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.Status == models.StatusActive,
	}

	// The unique constraint still backs the pre-check: a race loser gets the
	// same conflict from the repository.
	if err := s.positions.Create(ctx, position); err != nil {
		return nil, err
	}

	resp := formatPosition(position)
	return &resp, nil
}

func formatPosition(position *models.Position) dto.PositionResponse {
	status := models.StatusInactive
	if position.IsActive {
		status = models.StatusActive
	}
	return dto.PositionResponse{
		ID:          position.ID,
		Code:        position.Code,
		Name:        position.Name,
		Description: position.Description,
		Status:      status,
	}
}
