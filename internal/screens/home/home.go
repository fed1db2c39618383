package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/notiz/internal/chunker"
	"github.com/abhisek/notiz/internal/quiz"
	"github.com/abhisek/notiz/internal/router"
	"github.com/abhisek/notiz/internal/screen"
	chunksscreen "github.com/abhisek/notiz/internal/screens/chunks"
	quizscreen "github.com/abhisek/notiz/internal/screens/quiz"
	"github.com/abhisek/notiz/internal/ui/components"
	"github.com/abhisek/notiz/internal/ui/layout"
	"github.com/abhisek/notiz/internal/ui/theme"
)

const titleArt = ` ███╗   ██╗ ██████╗ ████████╗██╗███████╗
 ████╗  ██║██╔═══██╗╚══██╔══╝██║╚══███╔╝
 ██╔██╗ ██║██║   ██║   ██║   ██║  ███╔╝
 ██║╚██╗██║██║   ██║   ██║   ██║ ███╔╝
 ██║ ╚████║╚██████╔╝   ██║   ██║███████╗
 ╚═╝  ╚═══╝ ╚═════╝    ╚═╝   ╚═╝╚══════╝`

// HomeScreen is the entry screen: notes stats plus the main menu.
type HomeScreen struct {
	cfg    quiz.Config
	menu   components.Menu
	chunks []string
	counts map[quiz.Level]int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. The notes are chunked once up front so the
// screen can show what a session will be built from.
func New(cfg quiz.Config) *HomeScreen {
	s := &HomeScreen{
		cfg:    cfg,
		chunks: chunker.Split(cfg.NotesText, cfg.MinChunkLength, cfg.MaxChunkLength),
		counts: make(map[quiz.Level]int),
	}

	topic := strings.ToLower(cfg.Topic)
	for _, chunk := range s.chunks {
		if topic != "" && !strings.Contains(strings.ToLower(chunk), topic) {
			continue
		}
		if q, ok := quiz.FromChunk(chunk); ok {
			s.counts[q.Level]++
		}
	}

	total := s.counts[quiz.LevelEasy] + s.counts[quiz.LevelMedium] + s.counts[quiz.LevelHard]
	s.menu = components.NewMenu([]components.MenuItem{
		{
			Label:    "Start quiz",
			Disabled: total == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: quizscreen.New(cfg)}
				}
			},
		},
		{
			Label:    "Browse chunks",
			Disabled: len(s.chunks) == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: chunksscreen.New(s.chunks)}
				}
			},
		},
		{
			Label: "Quit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	})

	return s
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func (s *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(titleArt))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Quiz yourself on your own notes"))
	b.WriteString("\n\n")

	total := s.counts[quiz.LevelEasy] + s.counts[quiz.LevelMedium] + s.counts[quiz.LevelHard]
	stats := fmt.Sprintf("%d chunks   %d questions  (easy %d / medium %d / hard %d)",
		len(s.chunks), total,
		s.counts[quiz.LevelEasy], s.counts[quiz.LevelMedium], s.counts[quiz.LevelHard])
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(stats))
	if s.cfg.Topic != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render(fmt.Sprintf("topic filter: %q", s.cfg.Topic)))
	}
	b.WriteString("\n\n")

	if total == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("No questions could be derived from these notes."))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	return b.String()
}
