package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/huyndq/school-admin/internal/app/models"
)

// PersonRepository handles database operations for person records
type PersonRepository struct {
	db *pgxpool.Pool
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *pgxpool.Pool) *PersonRepository {
	return &PersonRepository{
		db: db,
	}
}

// EmailExists checks if a person with the given email already exists.
// Deleted persons count too: an email is never reusable.
func (r *PersonRepository) EmailExists(ctx context.Context, q Querier, email string) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM persons WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}

	return exists, nil
}

// Create inserts a new person record and fills in its generated fields.
// It runs on the given Querier so callers can scope it to a transaction.
func (r *PersonRepository) Create(ctx context.Context, q Querier, person *models.Person) error {
	query := `
		INSERT INTO persons (email, full_name, phone_number, address, identity_number, date_of_birth, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		person.Email,
		person.FullName,
		person.PhoneNumber,
		person.Address,
		person.IdentityNumber,
		person.DateOfBirth,
		person.Role,
	).Scan(&person.ID, &person.CreatedAt, &person.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating person: %w", err)
	}

	return nil
}

// GetByEmail retrieves a person by email
func (r *PersonRepository) GetByEmail(ctx context.Context, email string) (*models.Person, error) {
	person := &models.Person{}
	err := r.db.QueryRow(ctx, `
		SELECT id, email, full_name, phone_number, address, identity_number, date_of_birth, role, is_deleted, created_at, updated_at
		FROM persons
		WHERE email = $1`,
		email).Scan(
		&person.ID, &person.Email, &person.FullName, &person.PhoneNumber, &person.Address,
		&person.IdentityNumber, &person.DateOfBirth, &person.Role, &person.IsDeleted,
		&person.CreatedAt, &person.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("error retrieving person: %w", err)
	}

	return person, nil
}
