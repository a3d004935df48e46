package services

import (
	"fmt"
	"net/url"

	"github.com/huyndq/school-admin/internal/app/models"
	"github.com/huyndq/school-admin/internal/app/models/dto"
	"github.com/huyndq/school-admin/internal/pkg/apperrors"
	"github.com/huyndq/school-admin/internal/pkg/degrees"
)

const dateLayout = "2006-01-02"

// FormatTeacher assembles the flat API shape of a teacher whose person and
// position references have been resolved. A teacher without a joined person,
// or with a person lacking a name, cannot be rendered and yields
// apperrors.ErrMissingJoin; callers formatting a batch drop such records.
// The input is never mutated.
func FormatTeacher(teacher *models.Teacher) (*dto.TeacherResponse, error) {
	person := teacher.Person
	if person == nil || person.FullName == "" {
		return nil, apperrors.ErrMissingJoin
	}

	highestDegree, highestSchool := degrees.Highest(teacher.Degrees)

	status := models.StatusInactive
	if teacher.IsActive {
		status = models.StatusActive
	}

	resp := &dto.TeacherResponse{
		ID:            teacher.ID,
		Code:          teacher.Code,
		FullName:      person.FullName,
		Email:         person.Email,
		Status:        status,
		AvatarURL:     avatarURL(person.FullName),
		HighestDegree: highestDegree,
		HighestSchool: highestSchool,
		RawDegrees:    teacher.Degrees,
	}
	if resp.RawDegrees == nil {
		resp.RawDegrees = []models.Degree{}
	}

	if person.PhoneNumber != nil {
		resp.Phone = *person.PhoneNumber
	}
	if person.Address != nil {
		resp.Address = *person.Address
	}
	if person.IdentityNumber != nil {
		resp.IdentityCard = *person.IdentityNumber
	}
	if person.DateOfBirth != nil {
		resp.DOB = person.DateOfBirth.Format(dateLayout)
	}

	resp.JobPositions = make([]dto.PositionSummary, 0, len(teacher.Positions))
	resp.JobPositionIDs = make([]int64, 0, len(teacher.Positions))
	for _, position := range teacher.Positions {
		if position == nil {
			continue
		}
		resp.JobPositions = append(resp.JobPositions, dto.PositionSummary{
			ID:   position.ID,
			Name: position.Name,
		})
		resp.JobPositionIDs = append(resp.JobPositionIDs, position.ID)
	}

	return resp, nil
}

// avatarURL derives a deterministic avatar for a display name.
func avatarURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(name))
}
