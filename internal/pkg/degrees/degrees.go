// Package degrees normalizes free-text degree types into a fixed taxonomy
// and picks the highest completed degree from a teacher's education history.
package degrees

import (
	"strings"

	"github.com/huyndq/school-admin/internal/app/models"
)

// NotAvailable is the sentinel label for unrecognized or absent degrees.
const NotAvailable = "N/A"

// Canonical degree labels, highest first.
const (
	Doctorate = "Tiến sĩ"
	Master    = "Thạc sĩ"
	Bachelor  = "Cử nhân"
	Associate = "Cao đẳng"
)

// rank assigns each canonical label its position on the ordinal scale.
// NotAvailable ranks 0 and never wins.
var rank = map[string]int{
	Doctorate:    4,
	Master:       3,
	Bachelor:     2,
	Associate:    1,
	NotAvailable: 0,
}

// Normalize maps a free-text degree type to its canonical label. Matching is
// case-insensitive and covers the accented spelling, common unaccented
// variants and the English synonym of each label. Anything unrecognized,
// including the empty string, maps to NotAvailable.
func Normalize(degreeType string) string {
	switch strings.ToLower(strings.TrimSpace(degreeType)) {
	case "tiến sĩ", "tiên sĩ", "doctorate":
		return Doctorate
	case "thạc sĩ", "thac si", "master":
		return Master
	case "cử nhân", "cu nhan", "bachelor":
		return Bachelor
	case "cao đẳng", "cao dang":
		return Associate
	default:
		return NotAvailable
	}
}

// Rank returns the ordinal rank of a canonical label, 0 for anything else.
func Rank(label string) int {
	return rank[label]
}

// Highest reduces a degree list to the label and school of the
// highest-ranked completed degree. Degrees that were not graduated rank 0
// and never contribute. The comparison is strictly-greater, so on equal
// rank the earlier entry wins. An empty list, or one where every entry
// ranks 0, yields (NotAvailable, NotAvailable).
func Highest(list []models.Degree) (label, school string) {
	var best *models.Degree
	maxRank := 0

	for i := range list {
		d := &list[i]
		if !d.IsGraduated {
			continue
		}
		if r := rank[Normalize(d.Type)]; r > maxRank {
			maxRank = r
			best = d
		}
	}

	if best == nil {
		return NotAvailable, NotAvailable
	}
	return Normalize(best.Type), best.School
}
