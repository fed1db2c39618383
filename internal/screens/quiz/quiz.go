package quiz

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/notiz/internal/quiz"
	"github.com/abhisek/notiz/internal/router"
	"github.com/abhisek/notiz/internal/screen"
	summaryscreen "github.com/abhisek/notiz/internal/screens/summary"
	"github.com/abhisek/notiz/internal/ui/components"
	"github.com/abhisek/notiz/internal/ui/layout"
)

// QuizScreen serves questions from a quiz.Session one at a time, grading
// free-text answers and adapting difficulty between questions.
type QuizScreen struct {
	session *quiz.Session
	target  int

	current     *quiz.Question
	asked       int
	input       components.TextInput
	lastAnswer  string
	lastCorrect bool

	showingFeedback    bool
	showingQuitConfirm bool
	exhausted          bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New builds the session from the config and serves the first question.
func New(cfg quiz.Config) *QuizScreen {
	s := &QuizScreen{
		session: quiz.NewSession(cfg),
		target:  cfg.NumQuestions,
		input:   components.NewTextInput("Type your answer...", 200),
	}
	s.nextQuestion()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

// Remaining reports unserved questions for the header.
func (s *QuizScreen) Remaining() int {
	return s.session.Remaining()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		return s.handleKey(kmsg)
	}

	if s.current != nil && !s.showingFeedback && !s.showingQuitConfirm {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s.finish()
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.showingFeedback {
		s.showingFeedback = false
		if s.asked >= s.target {
			return s.finish()
		}
		s.nextQuestion()
		if s.current == nil {
			return s.finish()
		}
		return s, s.input.Init()
	}

	// No question could be served at all.
	if s.current == nil {
		return s.finish()
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		return s.submitAnswer()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAnswer grades the current input and shows feedback.
func (s *QuizScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	if s.current == nil {
		return s, nil
	}

	s.lastAnswer = s.input.Value()
	s.lastCorrect = quiz.Grade(s.lastAnswer, s.current.Answer)
	s.session.Record(s.lastCorrect)
	s.input.Submit(s.lastCorrect)
	s.asked++
	s.showingFeedback = true
	return s, nil
}

// nextQuestion pops the next question, or leaves current nil when the pool
// is exhausted.
func (s *QuizScreen) nextQuestion() {
	if q, ok := s.session.Next(); ok {
		s.current = &q
		s.input = components.NewTextInput("Type your answer...", 200)
		return
	}
	s.current = nil
	s.exhausted = true
}

// finish replaces this screen with the summary.
func (s *QuizScreen) finish() (screen.Screen, tea.Cmd) {
	summary := s.session.Summary()
	exhausted := s.exhausted && summary.Answered < s.target
	return s, func() tea.Msg {
		return router.PushScreenMsg{
			Screen: summaryscreen.New(summary, exhausted),
		}
	}
}
