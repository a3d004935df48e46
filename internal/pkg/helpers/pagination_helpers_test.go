package helpers

import (
	"testing"
)

func TestCalculateOffset(t *testing.T) {
	tests := []struct {
		page, limit int
		want        int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{3, 5, 10},
		{0, 10, 0},  // invalid page falls back to 1
		{2, 0, 10},  // invalid limit falls back to 10
		{-1, -1, 0}, // both invalid
	}

	for _, tc := range tests {
		if got := CalculateOffset(tc.page, tc.limit); got != tc.want {
			t.Errorf("CalculateOffset(%d, %d) = %d, want %d", tc.page, tc.limit, got, tc.want)
		}
	}
}

func TestNewPaginationInfo(t *testing.T) {
	tests := []struct {
		name        string
		totalItems  int64
		page, limit int
		wantPages   int
	}{
		{"15 items over pages of 10", 15, 1, 10, 2},
		{"exact multiple", 20, 1, 10, 2},
		{"single partial page", 3, 1, 10, 1},
		{"no items", 0, 1, 10, 0},
		{"invalid limit falls back", 15, 1, 0, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info := NewPaginationInfo(tc.totalItems, tc.page, tc.limit)
			if info.TotalPages != tc.wantPages {
				t.Errorf("TotalPages = %d, want %d", info.TotalPages, tc.wantPages)
			}
			if info.TotalItems != tc.totalItems {
				t.Errorf("TotalItems = %d, want %d", info.TotalItems, tc.totalItems)
			}
		})
	}
}
