// Package teachercode generates candidate teacher codes. Uniqueness is not
// decided here: the creation transaction inserts a candidate and regenerates
// on a unique-constraint violation, so a collision costs one retry.
package teachercode

import (
	"math/rand/v2"
	"strconv"
)

// Length is the fixed number of digits in a teacher code.
const Length = 10

const (
	min  = 1_000_000_000 // smallest 10-digit number, keeps the first digit non-zero
	span = 9_000_000_000
)

// Generate returns a random code of exactly Length digits, uniformly sampled
// from the full 10-digit range.
func Generate() string {
	return strconv.FormatInt(min+rand.Int64N(span), 10)
}
