package quiz

import "testing"

func TestGrade(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		correct string
		want    bool
	}{
		{"exact", "Paris", "Paris", true},
		{"case and whitespace", "  paris ", "Paris", true},
		{"empty user", "", "Paris", false},
		{"blank user", "   ", "Paris", false},
		{"empty correct", "Paris", "", false},
		{"disjoint", "xyz", "abc", false},
		{"high overlap", "Pariss", "Paris", true},
		{"minor typo in a sentence", "The mitochondria is the powerhouse of the cel", "The mitochondria is the powerhouse of the cell.", true},
		{"unrelated answer", "something else entirely", "The Krebs cycle produces ATP.", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Grade(tc.user, tc.correct); got != tc.want {
				t.Errorf("Grade(%q, %q) = %v, want %v", tc.user, tc.correct, got, tc.want)
			}
		})
	}
}
