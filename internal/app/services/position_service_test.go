package services

import (
	"context"
	"errors"
	"testing"

	"github.com/huyndq/school-admin/internal/app/models"
	"github.com/huyndq/school-admin/internal/app/models/dto"
	"github.com/huyndq/school-admin/internal/pkg/apperrors"
)

type fakePositionStore struct {
	positions []*models.Position
	nextID    int64
}

func (f *fakePositionStore) Create(ctx context.Context, position *models.Position) error {
	for _, p := range f.positions {
		if p.Code == position.Code {
			return apperrors.ErrPositionCodeExists
		}
	}
	f.nextID++
	position.ID = f.nextID
	f.positions = append(f.positions, position)
	return nil
}

func (f *fakePositionStore) CodeExists(ctx context.Context, code string) (bool, error) {
	for _, p := range f.positions {
		if p.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePositionStore) GetAll(ctx context.Context) ([]*models.Position, error) {
	return f.positions, nil
}

func TestCreatePositionRequiresCodeAndName(t *testing.T) {
	svc := NewPositionService(&fakePositionStore{})

	for name, req := range map[string]*dto.CreatePositionRequest{
		"missing code": {Name: "Lecturer"},
		"missing name": {Code: "LECT"},
	} {
		_, err := svc.CreatePosition(context.Background(), req)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("%s: err = %v, want ErrValidationFailed", name, err)
		}
	}
}

func TestCreatePosition(t *testing.T) {
	svc := NewPositionService(&fakePositionStore{})

	resp, err := svc.CreatePosition(context.Background(), &dto.CreatePositionRequest{
		Code:        "HEAD",
		Name:        "Head of Faculty",
		Description: "Leads the faculty",
		Status:      "ACTIVE",
	})
	if err != nil {
		t.Fatalf("CreatePosition() error: %v", err)
	}
	if resp.Status != models.StatusActive {
		t.Errorf("Status = %q, want ACTIVE", resp.Status)
	}
	if resp.Description != "Leads the faculty" {
		t.Errorf("Description = %q", resp.Description)
	}

	// Anything other than the ACTIVE status text creates an inactive entry.
	resp, err = svc.CreatePosition(context.Background(), &dto.CreatePositionRequest{
		Code: "LECT", Name: "Lecturer",
	})
	if err != nil {
		t.Fatalf("CreatePosition() error: %v", err)
	}
	if resp.Status != models.StatusInactive {
		t.Errorf("Status = %q, want INACTIVE when status text absent", resp.Status)
	}
}

func TestCreatePositionDuplicateCode(t *testing.T) {
	store := &fakePositionStore{}
	svc := NewPositionService(store)
	req := &dto.CreatePositionRequest{Code: "HEAD", Name: "Head of Faculty"}

	if _, err := svc.CreatePosition(context.Background(), req); err != nil {
		t.Fatalf("first CreatePosition() error: %v", err)
	}
	_, err := svc.CreatePosition(context.Background(), req)
	if !errors.Is(err, apperrors.ErrPositionCodeExists) {
		t.Fatalf("err = %v, want ErrPositionCodeExists", err)
	}
	if len(store.positions) != 1 {
		t.Errorf("store holds %d positions, want 1", len(store.positions))
	}
}

func TestListPositionsIncludesDeleted(t *testing.T) {
	store := &fakePositionStore{positions: []*models.Position{
		{ID: 1, Code: "HEAD", Name: "Head of Faculty", IsActive: true},
		{ID: 2, Code: "OLD", Name: "Retired Role", IsDeleted: true},
	}}
	svc := NewPositionService(store)

	positions, err := svc.ListPositions(context.Background())
	if err != nil {
		t.Fatalf("ListPositions() error: %v", err)
	}
	if len(positions) != 2 {
		t.Fatalf("got %d positions, want 2: soft-deleted entries stay visible", len(positions))
	}
	if positions[1].Status != models.StatusInactive {
		t.Errorf("deleted entry status = %q, want INACTIVE", positions[1].Status)
	}
}
