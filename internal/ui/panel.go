package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel frames content in a rounded border filled with the theme background.
// width is the outer width; zero lets lipgloss size it to the content.
func Panel(t Theme, content string, width int) string {
	st := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		BorderBackground(t.Bg).
		Foreground(t.Fg).
		Background(t.Bg).
		Padding(0, 1)
	if width > 2 {
		st = st.Width(width - 2)
	}
	return st.Render(content)
}

// Dialog renders a modal box with a title line above body.
func Dialog(t Theme, title, body string) string {
	st := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.Accent.GetForeground()).
		BorderBackground(t.Bg).
		Foreground(t.Fg).
		Background(t.Bg).
		Padding(0, 1)
	return st.Render(t.Title.Render(title) + "\n" + body)
}

// ProgressBar renders a bar with a done/total count.
func ProgressBar(done, total, width int) string {
	if width < 5 {
		width = 5
	}
	filled := 0
	if total > 0 {
		filled = int(float64(done) / float64(total) * float64(width))
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf(" %d/%d done", done, total)
}
