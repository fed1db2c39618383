package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/notiz/internal/quiz"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testConfig() quiz.Config {
	cfg := quiz.DefaultConfig()
	cfg.Seed = 1
	cfg.NumQuestions = 2
	cfg.NotesText = "The heart pumps blood through arteries and veins across the body.\n\n" +
		"The lungs exchange oxygen and carbon dioxide during every breath cycle."
	return cfg
}

func TestQuizScreen_ServesFirstQuestion(t *testing.T) {
	s := New(testConfig())
	if s.current == nil {
		t.Fatal("expected a question on construction")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Question 1/2") {
		t.Errorf("expected question counter in view, got:\n%s", view)
	}
	if !strings.Contains(view, "refer to in this context?") {
		t.Errorf("expected question text in view, got:\n%s", view)
	}
}

func TestQuizScreen_BlankAnswerGradesIncorrect(t *testing.T) {
	s := New(testConfig())
	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*QuizScreen)

	if !s.showingFeedback {
		t.Fatal("expected feedback after submit")
	}
	if s.lastCorrect {
		t.Error("blank answer should grade incorrect")
	}
	if s.session.Incorrect != 1 {
		t.Errorf("Incorrect = %d, want 1", s.session.Incorrect)
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Expected:") {
		t.Errorf("feedback should reveal the expected answer, got:\n%s", view)
	}
}

func TestQuizScreen_FeedbackDismissServesNext(t *testing.T) {
	s := New(testConfig())
	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*QuizScreen)

	updated, _ = s.Update(keyPress(' '))
	s = updated.(*QuizScreen)
	if s.showingFeedback {
		t.Error("any key should dismiss feedback")
	}
	if s.current == nil {
		t.Error("expected a second question")
	}
}

func TestQuizScreen_FinishAfterTarget(t *testing.T) {
	s := New(testConfig())

	// Answer both questions blank, dismissing feedback in between.
	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*QuizScreen)
	updated, _ = s.Update(keyPress(' '))
	s = updated.(*QuizScreen)
	updated, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*QuizScreen)

	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command (push summary) after the final feedback")
	}
}

func TestQuizScreen_EscShowsQuitConfirm(t *testing.T) {
	s := New(testConfig())
	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	s = updated.(*QuizScreen)
	if !s.showingQuitConfirm {
		t.Fatal("expected quit confirmation on Esc")
	}

	// N keeps going.
	updated, _ = s.Update(keyPress('n'))
	s = updated.(*QuizScreen)
	if s.showingQuitConfirm {
		t.Error("N should dismiss the quit confirmation")
	}

	// Y ends the quiz.
	updated, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	s = updated.(*QuizScreen)
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected a command (push summary) on Y")
	}
}
