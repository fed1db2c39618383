package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/notiz/internal/quiz"
	"github.com/abhisek/notiz/internal/router"
	"github.com/abhisek/notiz/internal/screen"
	"github.com/abhisek/notiz/internal/ui/layout"
	"github.com/abhisek/notiz/internal/ui/theme"
)

// SummaryScreen displays the quiz result counts.
type SummaryScreen struct {
	summary   quiz.Summary
	exhausted bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. exhausted marks a session that ran out of
// questions before reaching the requested count.
func New(summary quiz.Summary, exhausted bool) *SummaryScreen {
	return &SummaryScreen{summary: summary, exhausted: exhausted}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Quiz complete!"))
	b.WriteString("\n\n")

	if s.exhausted {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Ran out of questions before reaching the requested count."))
		b.WriteString("\n\n")
	}

	statsLine := fmt.Sprintf("Answered: %d        Correct: %d        Incorrect: %d",
		s.summary.Answered, s.summary.Correct, s.summary.Incorrect)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	if accuracy, ok := s.summary.Accuracy(); ok {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("Accuracy: %.1f%%", accuracy)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to return home."))

	return b.String()
}
