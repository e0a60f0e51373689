package scanner

import (
	"regexp"
	"testing"

	"github.com/coregx/coregex"
)

var (
	_ Pattern = (*coregex.Regex)(nil)
	_ Pattern = (*regexp.Regexp)(nil)
)

// TestEngineAgnostic runs the same scanning sequence through coregex and
// through the standard library engine; the scanner must not care which one
// produced the submatch indices.
func TestEngineAgnostic(t *testing.T) {
	patterns := map[string][2]Pattern{
		`(\w+) (\w+)`: {coregex.MustCompile(`(\w+) (\w+)`), regexp.MustCompile(`(\w+) (\w+)`)},
		`\d+`:         {coregex.MustCompile(`\d+`), regexp.MustCompile(`\d+`)},
	}

	for src, pair := range patterns {
		t.Run(src, func(t *testing.T) {
			a, b := New("Fri Dec 12 1975 14:39"), New("Fri Dec 12 1975 14:39")

			gotA, okA := a.ScanUntil(pair[0])
			gotB, okB := b.ScanUntil(pair[1])
			if gotA != gotB || okA != okB {
				t.Errorf("ScanUntil diverged: coregex (%q, %v), stdlib (%q, %v)", gotA, okA, gotB, okB)
			}
			if a.Pos() != b.Pos() {
				t.Errorf("cursor diverged: coregex %d, stdlib %d", a.Pos(), b.Pos())
			}

			ga, okA := a.Group(1)
			gb, okB := b.Group(1)
			if ga != gb || okA != okB {
				t.Errorf("Group(1) diverged: coregex (%q, %v), stdlib (%q, %v)", ga, okA, gb, okB)
			}
		})
	}
}
