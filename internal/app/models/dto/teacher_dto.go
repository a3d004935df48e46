package dto

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/huyndq/school-admin/internal/app/models"
)

// CreateTeacherRequest is the POST /api/teachers request body.
// Email and full name are the only required fields.
type CreateTeacherRequest struct {
	Email          string        `json:"email" binding:"required" example:"a@x.com"`
	FullName       string        `json:"fullName" binding:"required" example:"Nguyen Van A"`
	PhoneNumber    string        `json:"phoneNumber" example:"0901234567"`
	Address        string        `json:"address" example:"12 Nguyen Trai, HCMC"`
	IdentityCard   string        `json:"identityCard" example:"079123456789"`
	DOB            string        `json:"dob" example:"1990-05-20"` // Calendar date, no time component
	JobPositionID  IDList        `json:"jobPositionId" swaggertype:"array,integer"`
	Degrees        []DegreeInput `json:"degrees"`
	IsActive       *bool         `json:"isActive" example:"true"` // Defaults to true when omitted
}

// DegreeInput is one entry of the degrees list as submitted by the client.
// Entries missing type, school, major or year are dropped during creation.
type DegreeInput struct {
	Degree string     `json:"degree" example:"Thạc sĩ"`
	School string     `json:"school" example:"HCMUS"`
	Major  string     `json:"major" example:"Computer Science"`
	Year   FlexString `json:"year" example:"2020"`
	Status string     `json:"status" example:"Hoàn thành"`
}

// TeacherResponse is the flat API shape of a teacher joined with its person
// and position records.
type TeacherResponse struct {
	ID             int64             `json:"id" example:"1"`
	Code           string            `json:"code" example:"1234567890"`
	FullName       string            `json:"fullName" example:"Nguyen Van A"`
	Email          string            `json:"email" example:"a@x.com"`
	Phone          string            `json:"phone,omitempty" example:"0901234567"`
	Address        string            `json:"address,omitempty"`
	IdentityCard   string            `json:"identityCard,omitempty"`
	DOB            string            `json:"dob,omitempty" example:"1990-05-20"`
	Status         string            `json:"status" example:"ACTIVE"`
	AvatarURL      string            `json:"avatarUrl"`
	JobPositions   []PositionSummary `json:"jobPositions"`
	HighestDegree  string            `json:"highestDegree" example:"Thạc sĩ"`
	HighestSchool  string            `json:"highestSchool" example:"HCMUS"`
	RawDegrees     []models.Degree   `json:"rawDegrees"`
	JobPositionIDs []int64           `json:"jobPositionIds"`
}

// PositionSummary is the {id, name} pair of a resolved position reference.
type PositionSummary struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"Head of Faculty"`
}

// IDList accepts either a single id or a list of ids, each given as a JSON
// number or a numeric string.
type IDList []int64

// UnmarshalJSON implements json.Unmarshaler
func (l *IDList) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*l = nil
		return nil
	}

	// List form first, then fall back to a single scalar.
	if data[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		ids := make([]int64, 0, len(raw))
		for _, r := range raw {
			id, err := parseID(r)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		*l = ids
		return nil
	}

	id, err := parseID(data)
	if err != nil {
		return err
	}
	*l = []int64{id}
	return nil
}

func parseID(data []byte) (int64, error) {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return strconv.ParseInt(s, 10, 64)
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return 0, fmt.Errorf("invalid position id %s", data)
	}
	return n, nil
}

// FlexString is a string that also accepts a JSON number.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}
