package dto

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestIDListUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  IDList
	}{
		{"single number", `5`, IDList{5}},
		{"single string", `"5"`, IDList{5}},
		{"number list", `[1, 2]`, IDList{1, 2}},
		{"string list", `["1", "2"]`, IDList{1, 2}},
		{"mixed list", `[1, "2"]`, IDList{1, 2}},
		{"null", `null`, nil},
		{"empty list", `[]`, IDList{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got IDList
			if err := json.Unmarshal([]byte(tc.input), &got); err != nil {
				t.Fatalf("Unmarshal(%s) error: %v", tc.input, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Unmarshal(%s) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}

	var got IDList
	if err := json.Unmarshal([]byte(`"abc"`), &got); err == nil {
		t.Error("Unmarshal of a non-numeric id did not fail")
	}
}

func TestCreateTeacherRequestUnmarshal(t *testing.T) {
	body := `{
		"email": "a@x.com",
		"fullName": "A",
		"jobPositionId": "3",
		"degrees": [
			{"degree": "thạc sĩ", "school": "S", "major": "M", "year": "2020", "status": "Hoàn thành"},
			{"degree": "Cử nhân", "school": "S2", "major": "M2", "year": 2012, "status": "Hoàn thành"}
		]
	}`

	var req CreateTeacherRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	if !reflect.DeepEqual(req.JobPositionID, IDList{3}) {
		t.Errorf("JobPositionID = %v, want [3]", req.JobPositionID)
	}
	// Year arrives as either a string or a number and must read back the same.
	if req.Degrees[0].Year != "2020" || req.Degrees[1].Year != "2012" {
		t.Errorf("years = (%q, %q), want both normalized to text", req.Degrees[0].Year, req.Degrees[1].Year)
	}
}
