package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# Keyboard

| Key | Action |
| --- | --- |
| enter (input) / ctrl+a | Add task |
| tab | Switch between input and list |
| space, x / ctrl+x | Mark as done, or undo |
| d, delete / ctrl+r | Remove selected |
| C / ctrl+l | Clear all tasks |
| e, enter (list) | Edit selected |
| double-click | Edit row |
| t / ctrl+t | Dark mode |
| q / ctrl+c | Quit |

Tasks live only while the program runs.
`

// renderHelp renders the keyboard reference for the given glamour style.
// Falls back to the raw markdown if rendering fails.
func renderHelp(style string, width int) string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.Trim(out, "\n")
}
