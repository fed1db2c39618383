package quiz

import (
	"io"
	"strings"
	"testing"
)

// scriptedInput replays a fixed list of answers, then reports EOF.
type scriptedInput struct {
	answers []string
	pos     int
}

func (s *scriptedInput) ReadLine() (string, error) {
	if s.pos >= len(s.answers) {
		return "", io.EOF
	}
	line := s.answers[s.pos]
	s.pos++
	return line, nil
}

// collectOutput records every emitted line.
type collectOutput struct {
	lines []string
}

func (c *collectOutput) Emit(line string) {
	c.lines = append(c.lines, line)
}

func twoQuestionSession(t *testing.T) *Session {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 1
	cfg.NotesText = "The heart pumps blood through arteries and veins across the body.\n\n" +
		"The lungs exchange oxygen and carbon dioxide during every breath cycle."
	s := NewSession(cfg)
	if s.Remaining() != 2 {
		t.Fatalf("fixture should yield 2 questions, got %d", s.Remaining())
	}
	return s
}

func TestRunner_EndsEarlyWhenPoolExhausted(t *testing.T) {
	out := &collectOutput{}
	r := &Runner{
		Session: twoQuestionSession(t),
		Input:   &scriptedInput{answers: []string{"wrong answer", "also wrong"}},
		Output:  out,
	}

	summary := r.Run(5)
	if summary.Answered != 2 {
		t.Errorf("Answered = %d, want 2 (pool exhausted before 5)", summary.Answered)
	}
	if summary.Correct != 0 || summary.Incorrect != 2 {
		t.Errorf("Correct/Incorrect = %d/%d, want 0/2", summary.Correct, summary.Incorrect)
	}

	joined := strings.Join(out.lines, "\n")
	if !strings.Contains(joined, "No more questions available.") {
		t.Error("expected the exhaustion notice in the output")
	}
	if !strings.Contains(joined, "Questions attempted: 2") {
		t.Error("expected the summary to report 2 attempts")
	}
}

func TestRunner_GradesAndAdapts(t *testing.T) {
	session := twoQuestionSession(t)

	// Answer the first question with its own answer text (a guaranteed
	// match), the second with garbage.
	first, ok := session.Next()
	if !ok {
		t.Fatal("expected a first question")
	}
	// Rebuild the session so the runner serves from the full pool again.
	session = twoQuestionSession(t)

	out := &collectOutput{}
	r := &Runner{
		Session: session,
		Input:   &scriptedInput{answers: []string{first.Answer, "zzz qqq"}},
		Output:  out,
	}

	summary := r.Run(2)
	if summary.Answered != 2 {
		t.Fatalf("Answered = %d, want 2", summary.Answered)
	}
	if summary.Correct != 1 || summary.Incorrect != 1 {
		t.Errorf("Correct/Incorrect = %d/%d, want 1/1", summary.Correct, summary.Incorrect)
	}

	joined := strings.Join(out.lines, "\n")
	if !strings.Contains(joined, "Correct!") {
		t.Error("expected positive feedback for the matching answer")
	}
	if !strings.Contains(joined, "Incorrect. Correct answer:") {
		t.Error("expected the correct answer to be revealed on a miss")
	}
	if !strings.Contains(joined, "Accuracy") || !strings.Contains(joined, "50.0%") {
		t.Errorf("expected a 50.0%% accuracy line, got:\n%s", joined)
	}
}

func TestRunner_QuietSuppressesOutput(t *testing.T) {
	out := &collectOutput{}
	r := &Runner{
		Session: twoQuestionSession(t),
		Input:   &scriptedInput{answers: []string{"a", "b"}},
		Output:  out,
		Quiet:   true,
	}

	summary := r.Run(2)
	if summary.Answered != 2 {
		t.Errorf("Answered = %d, want 2 (grading still happens when quiet)", summary.Answered)
	}
	if len(out.lines) != 0 {
		t.Errorf("quiet run emitted %d lines: %v", len(out.lines), out.lines)
	}
}

func TestRunner_EmptyNotes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NotesText = ""
	out := &collectOutput{}
	r := &Runner{
		Session: NewSession(cfg),
		Input:   &scriptedInput{},
		Output:  out,
	}

	summary := r.Run(5)
	if summary.Answered != 0 {
		t.Errorf("Answered = %d, want 0", summary.Answered)
	}
	// Summary must not contain an accuracy line — that would be 0/0.
	for _, line := range out.lines {
		if strings.Contains(line, "Accuracy") {
			t.Errorf("accuracy reported with nothing answered: %q", line)
		}
	}
}

func TestRunner_InputClosed(t *testing.T) {
	out := &collectOutput{}
	r := &Runner{
		Session: twoQuestionSession(t),
		Input:   &scriptedInput{answers: []string{"only one line"}},
		Output:  out,
	}

	summary := r.Run(5)
	if summary.Answered != 1 {
		t.Errorf("Answered = %d, want 1 (input closed after one line)", summary.Answered)
	}
}
