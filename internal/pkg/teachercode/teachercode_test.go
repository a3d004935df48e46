package teachercode

import (
	"strconv"
	"testing"
)

func TestGenerate(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := Generate()

		if len(code) != Length {
			t.Fatalf("Generate() = %q, want %d digits", code, Length)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("Generate() = %q, contains non-digit %q", code, r)
			}
		}

		n, err := strconv.ParseInt(code, 10, 64)
		if err != nil {
			t.Fatalf("Generate() = %q, not numeric: %v", code, err)
		}
		if n < 1_000_000_000 || n > 9_999_999_999 {
			t.Fatalf("Generate() = %d, outside the 10-digit range", n)
		}
	}
}
