package services

import (
	"context"

	"github.com/huyndq/school-admin/internal/app/models"
)

// TeacherStore is the persistence surface the teacher service depends on.
// *repositories.TeacherRepository implements it; tests substitute an
// in-memory fake.
type TeacherStore interface {
	// CreateWithPerson persists a person and its teacher record atomically,
	// generating the teacher code. On success the generated fields of both
	// records are filled in.
	CreateWithPerson(ctx context.Context, person *models.Person, teacher *models.Teacher, positionIDs []int64) error
	GetByIDWithRelations(ctx context.Context, id int64) (*models.Teacher, error)
	List(ctx context.Context, offset, limit int) ([]*models.Teacher, error)
	Count(ctx context.Context) (int64, error)
}

// PositionStore is the persistence surface the position service depends on.
type PositionStore interface {
	Create(ctx context.Context, position *models.Position) error
	CodeExists(ctx context.Context, code string) (bool, error)
	GetAll(ctx context.Context) ([]*models.Position, error)
}
