package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/huyndq/school-admin/internal/app/models"
	"github.com/huyndq/school-admin/internal/app/models/dto"
	"github.com/huyndq/school-admin/internal/pkg/apperrors"
	"github.com/huyndq/school-admin/internal/pkg/helpers"
	"github.com/huyndq/school-admin/internal/pkg/logger"
)

// graduatedStatus is the status text marking a degree as completed.
// The comparison is case-insensitive after trimming.
const graduatedStatus = "hoàn thành"

// TeacherService handles teacher-related operations
type TeacherService struct {
	teachers TeacherStore
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teachers TeacherStore) *TeacherService {
	return &TeacherService{
		teachers: teachers,
	}
}

// CreateTeacher creates a person and teacher pair atomically and returns the
// formatted record. Missing email or full name fails validation before any
// store access; a duplicate email aborts the unit of work with
// ErrEmailAlreadyExists. A formatting failure after commit surfaces as
// ErrMissingJoin: the data persisted but cannot be rendered.
func (s *TeacherService) CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.TeacherResponse, error) {
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.FullName) == "" {
		return nil, apperrors.NewValidationError("Email and full name are required")
	}

	person := &models.Person{
		Email:          strings.TrimSpace(req.Email),
		FullName:       req.FullName,
		PhoneNumber:    optionalString(req.PhoneNumber),
		Address:        optionalString(req.Address),
		IdentityNumber: optionalString(req.IdentityCard),
		Role:           models.RoleTeacher,
	}

	if req.DOB != "" {
		dob, err := time.Parse(dateLayout, req.DOB)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("Invalid date of birth %q, expected YYYY-MM-DD", req.DOB))
		}
		person.DateOfBirth = &dob
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	teacher := &models.Teacher{
		Degrees:  normalizeDegreeInputs(req.Degrees),
		IsActive: isActive,
	}

	if err := s.teachers.CreateWithPerson(ctx, person, teacher, req.JobPositionID); err != nil {
		return nil, err
	}

	created, err := s.teachers.GetByIDWithRelations(ctx, teacher.ID)
	if err != nil {
		return nil, fmt.Errorf("error fetching created teacher: %w", err)
	}

	resp, err := FormatTeacher(created)
	if err != nil {
		// Committed but unrenderable: a data fault, not a rollback.
		logger.Error().Err(err).Int64("teacherId", teacher.ID).Msg("Created teacher could not be formatted")
		return nil, err
	}

	return resp, nil
}

// ListTeachers returns one page of formatted teachers ordered by creation
// time descending. Records that cannot be formatted are dropped from the
// page, so a page may come back smaller than the requested limit.
func (s *TeacherService) ListTeachers(ctx context.Context, page, limit int) ([]*dto.TeacherResponse, dto.PaginationInfo, error) {
	totalItems, err := s.teachers.Count(ctx)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error counting teachers: %w", err)
	}

	teachers, err := s.teachers.List(ctx, helpers.CalculateOffset(page, limit), limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing teachers: %w", err)
	}

	formatted := make([]*dto.TeacherResponse, 0, len(teachers))
	for _, teacher := range teachers {
		resp, err := FormatTeacher(teacher)
		if err != nil {
			if errors.Is(err, apperrors.ErrMissingJoin) {
				logger.Warn().Int64("teacherId", teacher.ID).Msg("Skipping teacher with missing person data")
				continue
			}
			return nil, dto.PaginationInfo{}, err
		}
		formatted = append(formatted, resp)
	}

	return formatted, helpers.NewPaginationInfo(totalItems, page, limit), nil
}

// normalizeDegreeInputs converts submitted degree entries into the embedded
// model form. Entries missing type, school, major or a parseable year are
// dropped; the graduated flag is derived from the status text.
func normalizeDegreeInputs(inputs []dto.DegreeInput) []models.Degree {
	degrees := make([]models.Degree, 0, len(inputs))
	for _, in := range inputs {
		if in.Degree == "" || in.School == "" || in.Major == "" || in.Year == "" {
			continue
		}
		year, err := strconv.Atoi(strings.TrimSpace(string(in.Year)))
		if err != nil {
			continue
		}
		degrees = append(degrees, models.Degree{
			Type:        in.Degree,
			School:      in.School,
			Major:       in.Major,
			Year:        year,
			IsGraduated: strings.ToLower(strings.TrimSpace(in.Status)) == graduatedStatus,
		})
	}
	return degrees
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
