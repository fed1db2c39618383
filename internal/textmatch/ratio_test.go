package textmatch

import (
	"math"
	"testing"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "paris", "paris", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "", "paris", 0.0},
		{"disjoint", "xyz", "abc", 0.0},
		{"near match", "pariss", "paris", 2.0 * 5 / 11},
		{"single shared char", "a", "ab", 2.0 * 1 / 3},
		{"crossed pair", "ab", "ba", 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Ratio(tc.a, tc.b)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Ratio(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestRatio_Symmetryish(t *testing.T) {
	// The matching-blocks total is symmetric, so the ratio is too.
	pairs := [][2]string{
		{"hello world", "world hello"},
		{"the quick brown fox", "the slow brown fox"},
		{"abcdef", "abdcef"},
	}
	for _, p := range pairs {
		if got, rev := Ratio(p[0], p[1]), Ratio(p[1], p[0]); math.Abs(got-rev) > 1e-9 {
			t.Errorf("Ratio(%q, %q) = %v but reversed = %v", p[0], p[1], got, rev)
		}
	}
}

func TestRatio_MonotonicInCoverage(t *testing.T) {
	// Growing the shared prefix never lowers the score.
	target := "photosynthesis"
	prev := -1.0
	for i := 1; i <= len(target); i++ {
		got := Ratio(target[:i], target)
		if got < prev {
			t.Fatalf("Ratio(%q, %q) = %v dropped below %v", target[:i], target, got, prev)
		}
		prev = got
	}
	if prev != 1.0 {
		t.Errorf("full prefix should score 1.0, got %v", prev)
	}
}

func TestRatio_Runes(t *testing.T) {
	if got := Ratio("héllo", "héllo"); got != 1.0 {
		t.Errorf("Ratio with multi-byte runes = %v, want 1.0", got)
	}
	// One rune of five differs: 2*4/10.
	if got := Ratio("héllo", "hállo"); math.Abs(got-0.8) > 1e-9 {
		t.Errorf("Ratio(héllo, hállo) = %v, want 0.8", got)
	}
}
