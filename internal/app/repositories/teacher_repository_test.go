package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/huyndq/school-admin/internal/pkg/apperrors"
	"github.com/huyndq/school-admin/internal/pkg/dberrors"
)

// duplicateCodeError mimics the unique violation PostgreSQL raises when a
// candidate code is already taken.
func duplicateCodeError() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: dberrors.ConstraintTeacherCode}
}

func TestGenerateUniqueCodeAvoidsSeededCode(t *testing.T) {
	const seeded = "1234567890"
	codePattern := regexp.MustCompile(`^\d{10}$`)

	for i := 0; i < 100; i++ {
		code, err := generateUniqueCode(context.Background(), func(ctx context.Context, candidate string) error {
			if candidate == seeded {
				return duplicateCodeError()
			}
			return nil
		})
		if err != nil {
			t.Fatalf("generateUniqueCode() error: %v", err)
		}
		if code == seeded {
			t.Fatalf("generateUniqueCode() returned the pre-seeded code %q", seeded)
		}
		if !codePattern.MatchString(code) {
			t.Fatalf("generateUniqueCode() = %q, want 10 digits", code)
		}
	}
}

func TestGenerateUniqueCodeRetriesOnCollision(t *testing.T) {
	attempts := 0
	code, err := generateUniqueCode(context.Background(), func(ctx context.Context, candidate string) error {
		attempts++
		if attempts < 3 {
			return duplicateCodeError()
		}
		return nil
	})
	if err != nil {
		t.Fatalf("generateUniqueCode() error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
	if code == "" {
		t.Error("generateUniqueCode() returned an empty code")
	}
}

func TestGenerateUniqueCodeExhaustsBudget(t *testing.T) {
	attempts := 0
	_, err := generateUniqueCode(context.Background(), func(ctx context.Context, candidate string) error {
		attempts++
		return duplicateCodeError()
	})
	if !errors.Is(err, apperrors.ErrTeacherCodeExhausted) {
		t.Fatalf("err = %v, want ErrTeacherCodeExhausted", err)
	}
	if attempts != codeAttempts {
		t.Errorf("attempts = %d, want %d", attempts, codeAttempts)
	}
}

func TestGenerateUniqueCodeStopsOnUnrelatedError(t *testing.T) {
	boom := errors.New("connection reset")
	attempts := 0
	_, err := generateUniqueCode(context.Background(), func(ctx context.Context, candidate string) error {
		attempts++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the attempt error", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1: unrelated failures must not be retried", attempts)
	}
}
