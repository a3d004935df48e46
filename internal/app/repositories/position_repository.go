package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/huyndq/school-admin/internal/app/models"
	"github.com/huyndq/school-admin/internal/pkg/apperrors"
	"github.com/huyndq/school-admin/internal/pkg/dberrors"
)

// PositionRepository handles database operations for job positions
type PositionRepository struct {
	db *pgxpool.Pool
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(db *pgxpool.Pool) *PositionRepository {
	return &PositionRepository{
		db: db,
	}
}

// Create inserts a new position. A duplicate code surfaces as
// apperrors.ErrPositionCodeExists.
func (r *PositionRepository) Create(ctx context.Context, position *models.Position) error {
	query := `
		INSERT INTO positions (code, name, description, is_active, is_deleted)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		position.Code, position.Name, position.Description, position.IsActive, position.IsDeleted,
	).Scan(&position.ID, &position.CreatedAt, &position.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintPositionCode) {
			return apperrors.ErrPositionCodeExists
		}
		return fmt.Errorf("error creating position: %w", err)
	}

	return nil
}

// CodeExists checks if a position with the given code already exists
func (r *PositionRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM positions WHERE code = $1)`,
		code).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking position code: %w", err)
	}

	return exists, nil
}

// GetAll retrieves every position sorted by name ascending. No soft-delete
// filter is applied: deleted entries stay visible, matching the behavior the
// frontend was built against.
func (r *PositionRepository) GetAll(ctx context.Context) ([]*models.Position, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, code, name, description, is_active, is_deleted, created_at, updated_at
		FROM positions
		ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("error listing positions: %w", err)
	}
	defer rows.Close()

	var positions []*models.Position
	for rows.Next() {
		position := &models.Position{}
		if err := rows.Scan(
			&position.ID, &position.Code, &position.Name, &position.Description,
			&position.IsActive, &position.IsDeleted, &position.CreatedAt, &position.UpdatedAt,
		); err != nil {
			return nil, err
		}
		positions = append(positions, position)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return positions, nil
}
