package quiz

import (
	"strings"

	"github.com/abhisek/notiz/internal/textmatch"
)

// gradeThreshold is the minimum similarity ratio for an answer to count as
// correct.
const gradeThreshold = 0.6

// Grade fuzzily compares a free-text answer against the expected one.
// Both sides are trimmed and lowercased; an empty side grades as incorrect.
func Grade(userAnswer, correctAnswer string) bool {
	user := strings.ToLower(strings.TrimSpace(userAnswer))
	correct := strings.ToLower(strings.TrimSpace(correctAnswer))
	if user == "" || correct == "" {
		return false
	}
	return textmatch.Ratio(user, correct) >= gradeThreshold
}
