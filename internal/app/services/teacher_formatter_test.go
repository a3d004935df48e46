package services

import (
	"errors"
	"testing"
	"time"

	"github.com/huyndq/school-admin/internal/app/models"
	"github.com/huyndq/school-admin/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func sampleTeacher() *models.Teacher {
	dob := time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC)
	return &models.Teacher{
		ID:       7,
		Code:     "1234567890",
		PersonID: 3,
		IsActive: true,
		Degrees: []models.Degree{
			{Type: "Cử nhân", School: "HCMUS", Major: "CS", Year: 2012, IsGraduated: true},
			{Type: "thạc sĩ", School: "HUST", Major: "CS", Year: 2015, IsGraduated: true},
			{Type: "Tiến sĩ", School: "VNU", Major: "CS", Year: 2024, IsGraduated: false},
		},
		Person: &models.Person{
			ID:             3,
			Email:          "a@x.com",
			FullName:       "Nguyen Van A",
			PhoneNumber:    strPtr("0901234567"),
			Address:        strPtr("12 Nguyen Trai"),
			IdentityNumber: strPtr("079123456789"),
			DateOfBirth:    &dob,
			Role:           models.RoleTeacher,
		},
		Positions: []*models.Position{
			{ID: 1, Code: "HEAD", Name: "Head of Faculty"},
			{ID: 2, Code: "LECT", Name: "Lecturer"},
		},
	}
}

func TestFormatTeacher(t *testing.T) {
	resp, err := FormatTeacher(sampleTeacher())
	if err != nil {
		t.Fatalf("FormatTeacher() error: %v", err)
	}

	if resp.ID != 7 || resp.Code != "1234567890" {
		t.Errorf("identity fields = (%d, %q)", resp.ID, resp.Code)
	}
	if resp.FullName != "Nguyen Van A" || resp.Email != "a@x.com" {
		t.Errorf("person fields = (%q, %q)", resp.FullName, resp.Email)
	}
	if resp.Phone != "0901234567" || resp.Address != "12 Nguyen Trai" || resp.IdentityCard != "079123456789" {
		t.Errorf("contact fields = (%q, %q, %q)", resp.Phone, resp.Address, resp.IdentityCard)
	}
	if resp.DOB != "1990-05-20" {
		t.Errorf("DOB = %q, want plain calendar date", resp.DOB)
	}
	if resp.Status != models.StatusActive {
		t.Errorf("Status = %q, want ACTIVE", resp.Status)
	}
	if resp.AvatarURL != "https://ui-avatars.com/api/?name=Nguyen+Van+A&background=random" {
		t.Errorf("AvatarURL = %q", resp.AvatarURL)
	}

	// Highest completed degree wins; the non-graduated doctorate does not.
	if resp.HighestDegree != "Thạc sĩ" || resp.HighestSchool != "HUST" {
		t.Errorf("highest degree = (%q, %q), want (Thạc sĩ, HUST)", resp.HighestDegree, resp.HighestSchool)
	}

	if len(resp.RawDegrees) != 3 {
		t.Errorf("RawDegrees has %d entries, want all 3 round-tripped", len(resp.RawDegrees))
	}

	if len(resp.JobPositions) != 2 || resp.JobPositions[0].Name != "Head of Faculty" {
		t.Errorf("JobPositions = %+v", resp.JobPositions)
	}
	if len(resp.JobPositionIDs) != 2 || resp.JobPositionIDs[0] != 1 || resp.JobPositionIDs[1] != 2 {
		t.Errorf("JobPositionIDs = %v", resp.JobPositionIDs)
	}
}

func TestFormatTeacherInactiveStatus(t *testing.T) {
	teacher := sampleTeacher()
	teacher.IsActive = false

	resp, err := FormatTeacher(teacher)
	if err != nil {
		t.Fatalf("FormatTeacher() error: %v", err)
	}
	if resp.Status != models.StatusInactive {
		t.Errorf("Status = %q, want INACTIVE", resp.Status)
	}
}

func TestFormatTeacherMissingJoin(t *testing.T) {
	missingPerson := sampleTeacher()
	missingPerson.Person = nil

	missingName := sampleTeacher()
	missingName.Person.FullName = ""

	for name, teacher := range map[string]*models.Teacher{
		"nil person":  missingPerson,
		"empty name":  missingName,
	} {
		if _, err := FormatTeacher(teacher); !errors.Is(err, apperrors.ErrMissingJoin) {
			t.Errorf("%s: err = %v, want ErrMissingJoin", name, err)
		}
	}
}

func TestFormatTeacherEmptyOptionalFields(t *testing.T) {
	teacher := sampleTeacher()
	teacher.Person.PhoneNumber = nil
	teacher.Person.DateOfBirth = nil
	teacher.Degrees = nil
	teacher.Positions = nil

	resp, err := FormatTeacher(teacher)
	if err != nil {
		t.Fatalf("FormatTeacher() error: %v", err)
	}
	if resp.Phone != "" || resp.DOB != "" {
		t.Errorf("optional fields = (%q, %q), want empty", resp.Phone, resp.DOB)
	}
	if resp.HighestDegree != "N/A" || resp.HighestSchool != "N/A" {
		t.Errorf("highest degree = (%q, %q), want sentinel pair", resp.HighestDegree, resp.HighestSchool)
	}
	if resp.RawDegrees == nil || len(resp.RawDegrees) != 0 {
		t.Errorf("RawDegrees = %v, want empty list", resp.RawDegrees)
	}
	if len(resp.JobPositions) != 0 || len(resp.JobPositionIDs) != 0 {
		t.Errorf("positions = (%v, %v), want empty", resp.JobPositions, resp.JobPositionIDs)
	}
}

func TestFormatTeacherDoesNotMutateInput(t *testing.T) {
	teacher := sampleTeacher()
	original := teacher.Degrees[1].Type

	if _, err := FormatTeacher(teacher); err != nil {
		t.Fatalf("FormatTeacher() error: %v", err)
	}
	if teacher.Degrees[1].Type != original {
		t.Errorf("degree type mutated to %q", teacher.Degrees[1].Type)
	}
}
