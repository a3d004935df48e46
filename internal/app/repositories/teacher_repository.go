package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"

	"github.com/huyndq/school-admin/internal/app/models"
	"github.com/huyndq/school-admin/internal/db"
	"github.com/huyndq/school-admin/internal/pkg/apperrors"
	"github.com/huyndq/school-admin/internal/pkg/dberrors"
	"github.com/huyndq/school-admin/internal/pkg/teachercode"
)

// codeAttempts is the total number of candidate codes tried before teacher
// creation fails with ErrTeacherCodeExhausted.
const codeAttempts = 5

// TeacherRepository handles database operations for teacher records
type TeacherRepository struct {
	db      *pgxpool.Pool
	persons *PersonRepository
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool, persons *PersonRepository) *TeacherRepository {
	return &TeacherRepository{
		db:      db,
		persons: persons,
	}
}

// CreateWithPerson creates a person and its teacher record as one atomic
// unit of work. The duplicate-email check runs inside the transaction; the
// teacher code is generated and inserted under the store's unique
// constraint, regenerating on collision, so concurrent creations cannot
// produce duplicate codes. On any failure nothing persists.
func (r *TeacherRepository) CreateWithPerson(ctx context.Context, person *models.Person, teacher *models.Teacher, positionIDs []int64) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		exists, err := r.persons.EmailExists(ctx, tx, person.Email)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrEmailAlreadyExists
		}

		if err := r.persons.Create(ctx, tx, person); err != nil {
			return err
		}

		teacher.PersonID = person.ID
		if err := r.insertTeacher(ctx, tx, teacher); err != nil {
			return err
		}

		for _, positionID := range positionIDs {
			_, err := tx.Exec(ctx, `
				INSERT INTO teacher_positions (teacher_id, position_id)
				VALUES ($1, $2)
				ON CONFLICT DO NOTHING`,
				teacher.ID, positionID)
			if err != nil {
				return fmt.Errorf("error linking position %d: %w", positionID, err)
			}
		}

		return nil
	})

	if err != nil {
		// A concurrent creation can slip past the in-transaction check and
		// lose at commit time; surface that as the same conflict.
		if dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintPersonEmail) {
			return apperrors.ErrEmailAlreadyExists
		}
		return err
	}

	return nil
}

// insertTeacher inserts the teacher row, generating candidate codes until
// one clears the unique constraint. Each attempt runs in a savepoint so a
// collision does not poison the surrounding transaction.
func (r *TeacherRepository) insertTeacher(ctx context.Context, tx pgx.Tx, teacher *models.Teacher) error {
	degrees := teacher.Degrees
	if degrees == nil {
		degrees = []models.Degree{}
	}
	degreesJSON, err := json.Marshal(degrees)
	if err != nil {
		return fmt.Errorf("error encoding degrees: %w", err)
	}

	code, err := generateUniqueCode(ctx, func(ctx context.Context, code string) error {
		nested, err := tx.Begin(ctx)
		if err != nil {
			return fmt.Errorf("error starting savepoint: %w", err)
		}

		insertErr := nested.QueryRow(ctx, `
			INSERT INTO teachers (code, person_id, degrees, is_active)
			VALUES ($1, $2, $3, $4)
			RETURNING id, is_deleted, start_date, created_at, updated_at`,
			code, teacher.PersonID, degreesJSON, teacher.IsActive,
		).Scan(&teacher.ID, &teacher.IsDeleted, &teacher.StartDate, &teacher.CreatedAt, &teacher.UpdatedAt)

		if insertErr != nil {
			_ = nested.Rollback(ctx)
			return insertErr
		}
		return nested.Commit(ctx)
	})
	if err != nil {
		return err
	}

	teacher.Code = code
	return nil
}

// generateUniqueCode runs attempt with fresh candidate codes until one is
// accepted or the retry budget runs out. Only a collision on the teacher
// code constraint is retried; any other failure propagates immediately.
func generateUniqueCode(ctx context.Context, attempt func(ctx context.Context, code string) error) (string, error) {
	var code string

	backoff := retry.WithMaxRetries(codeAttempts-1, retry.NewConstant(time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		code = teachercode.Generate()
		if err := attempt(ctx, code); err != nil {
			if dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintTeacherCode) {
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintTeacherCode) {
			return "", apperrors.ErrTeacherCodeExhausted
		}
		return "", err
	}

	return code, nil
}

// GetByIDWithRelations retrieves a teacher joined with its person record and
// resolved positions.
func (r *TeacherRepository) GetByIDWithRelations(ctx context.Context, id int64) (*models.Teacher, error) {
	row := r.db.QueryRow(ctx, teacherSelect+` WHERE t.id = $1`, id)

	teacher, err := scanTeacher(row)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	if err := r.loadPositions(ctx, []*models.Teacher{teacher}); err != nil {
		return nil, err
	}

	return teacher, nil
}

// List retrieves one page of teachers ordered by creation time descending,
// each joined with its person and positions.
func (r *TeacherRepository) List(ctx context.Context, offset, limit int) ([]*models.Teacher, error) {
	rows, err := r.db.Query(ctx, teacherSelect+`
		ORDER BY t.created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error listing teachers: %w", err)
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		teacher, err := scanTeacher(rows)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadPositions(ctx, teachers); err != nil {
		return nil, err
	}

	return teachers, nil
}

// Count returns the total number of teacher records, deleted ones included.
func (r *TeacherRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM teachers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting teachers: %w", err)
	}
	return count, nil
}

const teacherSelect = `
	SELECT t.id, t.code, t.person_id, t.degrees, t.is_active, t.is_deleted, t.start_date, t.created_at, t.updated_at,
	       p.id, p.email, p.full_name, p.phone_number, p.address, p.identity_number, p.date_of_birth, p.role, p.is_deleted, p.created_at, p.updated_at
	FROM teachers t
	JOIN persons p ON p.id = t.person_id`

// scanTeacher scans one joined teacher+person row.
func scanTeacher(row pgx.Row) (*models.Teacher, error) {
	teacher := &models.Teacher{Person: &models.Person{}}
	var degreesJSON []byte

	err := row.Scan(
		&teacher.ID, &teacher.Code, &teacher.PersonID, &degreesJSON,
		&teacher.IsActive, &teacher.IsDeleted, &teacher.StartDate,
		&teacher.CreatedAt, &teacher.UpdatedAt,
		&teacher.Person.ID, &teacher.Person.Email, &teacher.Person.FullName,
		&teacher.Person.PhoneNumber, &teacher.Person.Address,
		&teacher.Person.IdentityNumber, &teacher.Person.DateOfBirth,
		&teacher.Person.Role, &teacher.Person.IsDeleted,
		&teacher.Person.CreatedAt, &teacher.Person.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(degreesJSON, &teacher.Degrees); err != nil {
		return nil, fmt.Errorf("error decoding degrees: %w", err)
	}

	return teacher, nil
}

// loadPositions resolves the linked positions for a batch of teachers.
func (r *TeacherRepository) loadPositions(ctx context.Context, teachers []*models.Teacher) error {
	if len(teachers) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(teachers))
	byID := make(map[int64]*models.Teacher, len(teachers))
	for _, t := range teachers {
		ids = append(ids, t.ID)
		byID[t.ID] = t
	}

	rows, err := r.db.Query(ctx, `
		SELECT tp.teacher_id, p.id, p.code, p.name, p.description, p.is_active, p.is_deleted, p.created_at, p.updated_at
		FROM teacher_positions tp
		JOIN positions p ON p.id = tp.position_id
		WHERE tp.teacher_id = ANY($1)
		ORDER BY p.name`, ids)
	if err != nil {
		return fmt.Errorf("error loading teacher positions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var teacherID int64
		position := &models.Position{}
		if err := rows.Scan(
			&teacherID, &position.ID, &position.Code, &position.Name, &position.Description,
			&position.IsActive, &position.IsDeleted, &position.CreatedAt, &position.UpdatedAt,
		); err != nil {
			return err
		}
		if t, ok := byID[teacherID]; ok {
			t.Positions = append(t.Positions, position)
		}
	}

	return rows.Err()
}
