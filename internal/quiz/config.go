package quiz

// Config carries everything needed to build a quiz session.
type Config struct {
	// NotesText is the raw notes or textbook content.
	NotesText string

	// Topic optionally narrows the session to chunks containing this
	// keyword (case-insensitive substring match). Empty means no filter.
	Topic string

	// NumQuestions is the number of questions to attempt.
	NumQuestions int

	// MinChunkLength and MaxChunkLength bound chunk size in characters.
	// Callers are expected to keep min <= max; a violated bound degrades
	// chunk quality but does not fail.
	MinChunkLength int
	MaxChunkLength int

	// Quiet suppresses all progress, prompt and summary output. Grading
	// and difficulty adaptation still happen.
	Quiet bool

	// Seed fixes the bucket shuffle order for reproducible sessions.
	// Zero means a nondeterministic seed.
	Seed uint64
}

// DefaultConfig returns the standard session configuration.
func DefaultConfig() Config {
	return Config{
		NumQuestions:   5,
		MinChunkLength: 50,
		MaxChunkLength: 300,
	}
}
