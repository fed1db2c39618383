package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/notiz/internal/ui/theme"
)

// ProgressBar renders a fixed-width horizontal bar filled to a fraction.
type ProgressBar struct {
	Width   int
	Percent float64
}

func NewProgressBar(width int) ProgressBar {
	return ProgressBar{Width: width}
}

func (p ProgressBar) View() string {
	pct := p.Percent
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(pct * float64(p.Width))
	empty := p.Width - filled

	filledStyle := lipgloss.NewStyle().Foreground(theme.Primary)
	emptyStyle := lipgloss.NewStyle().Foreground(theme.Border)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", empty))
}
