package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgx executors shared by connection pools and
// transactions. Repository methods that must run inside a caller-owned
// transaction take a Querier instead of reaching for the pool.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories bundles all repositories sharing one connection pool
type Repositories struct {
	Person   *PersonRepository
	Teacher  *TeacherRepository
	Position *PositionRepository
}

// NewRepositories creates the repository container
func NewRepositories(db *pgxpool.Pool) *Repositories {
	person := NewPersonRepository(db)
	return &Repositories{
		Person:   person,
		Teacher:  NewTeacherRepository(db, person),
		Position: NewPositionRepository(db),
	}
}
