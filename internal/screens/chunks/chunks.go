package chunks

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

// ChunksScreen is a simple pager over the chunk breakdown of the notes.
type ChunksScreen struct {
	chunks []string
	index  int
}

var _ screen.Screen = (*ChunksScreen)(nil)
var _ screen.KeyHintProvider = (*ChunksScreen)(nil)

// New creates a chunk browser over the given chunks.
func New(chunks []string) *ChunksScreen {
	return &ChunksScreen{chunks: chunks}
}

func (s *ChunksScreen) Init() tea.Cmd {
	return nil
}

func (s *ChunksScreen) Title() string {
	return "Chunks"
}

func (s *ChunksScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Prev/Next"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ChunksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc", "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "left", "h", "up", "k":
		if s.index > 0 {
			s.index--
		}
	case "right", "l", "down", "j":
		if s.index < len(s.chunks)-1 {
			s.index++
		}
	}
	return s, nil
}

func (s *ChunksScreen) View(width, height int) string {
	if len(s.chunks) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  No chunks to show.")
	}

	chunk := s.chunks[s.index]
	words := len(strings.Fields(chunk))

	var b strings.Builder
	b.WriteString("\n")

	header := fmt.Sprintf("Chunk %d/%d — %d chars, %d words",
		s.index+1, len(s.chunks), len(chunk), words)
	if q, ok := quiz.FromChunk(chunk); ok {
		header += fmt.Sprintf(", %s", q.Level)
	} else {
		header += ", unusable"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render(header))
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Foreground(theme.Text).
		Render(chunk)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))

	return b.String()
}
