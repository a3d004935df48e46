package degrees

import (
	"testing"

	"github.com/huyndq/school-admin/internal/app/models"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Tiến sĩ", Doctorate},
		{"tiến sĩ", Doctorate},
		{"TIẾN SĨ", Doctorate},
		{"tiên sĩ", Doctorate},
		{"Doctorate", Doctorate},
		{"Thạc sĩ", Master},
		{"thạc sĩ", Master},
		{"thac si", Master},
		{"MASTER", Master},
		{"Cử nhân", Bachelor},
		{"cu nhan", Bachelor},
		{"bachelor", Bachelor},
		{"Cao đẳng", Associate},
		{"cao dang", Associate},
		{"  thạc sĩ  ", Master},
		{"", NotAvailable},
		{"trung cấp", NotAvailable},
		{"phd", NotAvailable},
	}

	for _, tc := range tests {
		if got := Normalize(tc.input); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestHighest(t *testing.T) {
	tests := []struct {
		name       string
		degrees    []models.Degree
		wantLabel  string
		wantSchool string
	}{
		{
			name:       "empty list",
			degrees:    nil,
			wantLabel:  NotAvailable,
			wantSchool: NotAvailable,
		},
		{
			name: "single graduated degree",
			degrees: []models.Degree{
				{Type: "thạc sĩ", School: "S", Major: "M", Year: 2020, IsGraduated: true},
			},
			wantLabel:  Master,
			wantSchool: "S",
		},
		{
			name: "higher degree wins regardless of order",
			degrees: []models.Degree{
				{Type: "Cử nhân", School: "A", IsGraduated: true},
				{Type: "Tiến sĩ", School: "B", IsGraduated: true},
			},
			wantLabel:  Doctorate,
			wantSchool: "B",
		},
		{
			name: "non-graduated degrees never contribute",
			degrees: []models.Degree{
				{Type: "Tiến sĩ", School: "A", IsGraduated: false},
				{Type: "Cử nhân", School: "B", IsGraduated: true},
			},
			wantLabel:  Bachelor,
			wantSchool: "B",
		},
		{
			name: "equal rank keeps the earlier entry",
			degrees: []models.Degree{
				{Type: "Thạc sĩ", School: "first", IsGraduated: true},
				{Type: "master", School: "second", IsGraduated: true},
			},
			wantLabel:  Master,
			wantSchool: "first",
		},
		{
			name: "all unrecognized types",
			degrees: []models.Degree{
				{Type: "trung cấp", School: "A", IsGraduated: true},
			},
			wantLabel:  NotAvailable,
			wantSchool: NotAvailable,
		},
		{
			name: "all non-graduated",
			degrees: []models.Degree{
				{Type: "Tiến sĩ", School: "A", IsGraduated: false},
			},
			wantLabel:  NotAvailable,
			wantSchool: NotAvailable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			label, school := Highest(tc.degrees)
			if label != tc.wantLabel || school != tc.wantSchool {
				t.Errorf("Highest() = (%q, %q), want (%q, %q)", label, school, tc.wantLabel, tc.wantSchool)
			}
		})
	}
}

func TestHighestDoesNotMutateInput(t *testing.T) {
	degrees := []models.Degree{
		{Type: "thac si", School: "S", IsGraduated: true},
	}
	Highest(degrees)
	if degrees[0].Type != "thac si" {
		t.Errorf("input degree type was mutated to %q", degrees[0].Type)
	}
}
