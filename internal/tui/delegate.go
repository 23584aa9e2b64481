package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/ui"
)

// listItem adapts model.Task to bubbles/list.Item
type listItem struct {
	task model.Task
}

func (i listItem) FilterValue() string { return i.task.Text }

func toItems(tasks []model.Task) []list.Item {
	out := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, listItem{task: t})
	}
	return out
}

// itemDelegate renders one row per task: box, label and the done marker.
type itemDelegate struct {
	theme ui.Theme
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := d.theme

	box, boxStyle, textStyle := t.BoxUnchecked, t.Muted, t.Base
	if it.task.Done {
		box, boxStyle, textStyle = t.BoxChecked, t.Success, t.Done
	}

	label := it.task.Text
	if width := m.Width() - 4 - xansi.StringWidth(model.DoneMarker) - 1; width > 0 {
		label = xansi.Truncate(label, width, "…")
	}
	line := boxStyle.Render(box) + t.Base.Render(" ") + textStyle.Render(label)
	if it.task.Done {
		line += t.Base.Render(" ") + t.Success.Render(model.DoneMarker)
	}

	prefix := t.Base.Render("  ")
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprint(w, prefix+line)
}
