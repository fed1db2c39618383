package quiz

// Summary is the result of a finished (or abandoned) quiz run.
type Summary struct {
	Answered  int
	Correct   int
	Incorrect int
}

// Accuracy returns the percentage of correct answers. The second return is
// false when nothing was answered, in which case accuracy is undefined.
func (s Summary) Accuracy() (float64, bool) {
	if s.Answered == 0 {
		return 0, false
	}
	return 100 * float64(s.Correct) / float64(s.Answered), true
}
