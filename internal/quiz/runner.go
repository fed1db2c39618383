package quiz

import "fmt"

// LineReader supplies one answer per served question. ReadLine blocks until
// a full line is available; an error (including EOF) ends the session early.
type LineReader interface {
	ReadLine() (string, error)
}

// Emitter receives every line of user-facing output.
type Emitter interface {
	Emit(line string)
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(line string)

func (f EmitterFunc) Emit(line string) { f(line) }

// Runner drives a line-oriented quiz loop over injectable collaborators,
// so the same loop serves both the terminal and tests.
type Runner struct {
	Session *Session
	Input   LineReader
	Output  Emitter
	Quiet   bool
}

// Run serves up to numQuestions questions, grading each answer and adapting
// difficulty, then reports a summary. The loop ends early when the question
// pool or the input is exhausted; that is a normal outcome, not an error.
func (r *Runner) Run(numQuestions int) Summary {
	for i := 0; i < numQuestions; i++ {
		q, ok := r.Session.Next()
		if !ok {
			r.emit("No more questions available.")
			break
		}

		r.emit(fmt.Sprintf("\nQuestion %d/%d (%s):", i+1, numQuestions, r.Session.Level))
		r.emit(q.Text)
		r.emit("Your answer: ")

		answer, err := r.Input.ReadLine()
		if err != nil {
			r.emit("(input closed)")
			break
		}

		if correct := Grade(answer, q.Answer); correct {
			r.Session.Record(true)
			r.emit("Correct!")
		} else {
			r.Session.Record(false)
			r.emit(fmt.Sprintf("Incorrect. Correct answer: %s", q.Answer))
		}
	}

	summary := r.Session.Summary()
	r.emitSummary(summary)
	return summary
}

func (r *Runner) emitSummary(s Summary) {
	r.emit("\nQuiz complete!")
	r.emit(fmt.Sprintf("Questions attempted: %d", s.Answered))
	r.emit(fmt.Sprintf("Correct answers:   %d", s.Correct))
	r.emit(fmt.Sprintf("Incorrect answers: %d", s.Incorrect))
	if accuracy, ok := s.Accuracy(); ok {
		r.emit(fmt.Sprintf("Accuracy:          %.1f%%", accuracy))
	}
}

func (r *Runner) emit(line string) {
	if r.Quiet || r.Output == nil {
		return
	}
	r.Output.Emit(line)
}
