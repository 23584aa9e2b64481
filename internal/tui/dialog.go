package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/ui"
)

type dialogKind int

const (
	dialogNone dialogKind = iota
	dialogMessage
	dialogConfirm
	dialogEdit
	dialogHelp
)

// pendingAction is what a confirm dialog runs on Yes.
type pendingAction int

const (
	actionNone pendingAction = iota
	actionRemove
	actionClear
)

func (a pendingAction) String() string {
	switch a {
	case actionRemove:
		return "remove"
	case actionClear:
		return "clear"
	}
	return "none"
}

type dialog struct {
	kind   dialogKind
	title  string
	body   string
	action pendingAction
	index  int  // row the dialog acts on
	yes    bool // Yes button highlighted
}

// User-facing messages.
const (
	msgEnterTask      = "Please enter a task."
	msgDuplicate      = "This task already exists."
	msgSelectRemove   = "Please select a task to remove."
	msgSelectDone     = "Please select a task to mark as done."
	msgNothingToClear = "No tasks to clear."
	msgConfirmRemove  = "Are you sure you want to remove this task?"
	msgConfirmClear   = "Are you sure you want to clear all tasks?"
)

func (m *Model) showMessage(text string) {
	m.dialog = dialog{kind: dialogMessage, title: "Message", body: text}
	m.resize()
}

func (m *Model) askConfirm(title, text string, action pendingAction, index int) {
	m.dialog = dialog{kind: dialogConfirm, title: title, body: text, action: action, index: index, yes: true}
	m.resize()
}

func (m *Model) closeDialog() {
	m.dialog = dialog{}
	m.edit.Blur()
	m.resize()
}

func (m Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	switch m.dialog.kind {
	case dialogMessage:
		switch msg.String() {
		case "enter", "esc", " ":
			m.closeDialog()
		}
		return m, nil

	case dialogHelp:
		m.closeDialog()
		return m, nil

	case dialogConfirm:
		switch {
		case key.Matches(msg, m.keys.Yes):
			return m.resolveConfirm(true)
		case key.Matches(msg, m.keys.No):
			return m.resolveConfirm(false)
		case key.Matches(msg, m.keys.Enter):
			return m.resolveConfirm(m.dialog.yes)
		case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
			m.dialog.yes = !m.dialog.yes
		}
		return m, nil

	case dialogEdit:
		switch msg.String() {
		case "enter":
			m.submitEdit()
			return m, nil
		case "esc":
			m.log.Debug("edit canceled", "index", m.dialog.index)
			m.closeDialog()
			return m, nil
		}
		var cmd tea.Cmd
		m.edit, cmd = m.edit.Update(msg)
		return m, cmd
	}
	return m, nil
}

// resolveConfirm runs the pending action on Yes; anything else aborts silently.
func (m Model) resolveConfirm(yes bool) (tea.Model, tea.Cmd) {
	d := m.dialog
	m.closeDialog()
	if !yes {
		m.log.Debug("confirmation declined", "action", d.action)
		return m, nil
	}
	var cmd tea.Cmd
	switch d.action {
	case actionRemove:
		cmd = m.removeTask(d.index)
	case actionClear:
		cmd = m.clearTasks()
	}
	return m, cmd
}

func (m Model) dialogView() string {
	t := m.theme
	switch m.dialog.kind {
	case dialogMessage:
		return ui.Dialog(t, m.dialog.title, t.Base.Render(m.dialog.body)+"\n\n"+t.Focused.Render("OK"))
	case dialogConfirm:
		yes, no := t.Button, t.Focused
		if m.dialog.yes {
			yes, no = t.Focused, t.Button
		}
		buttons := lipgloss.JoinHorizontal(lipgloss.Top, yes.Render("Yes"), t.Base.Render("  "), no.Render("No"))
		return ui.Dialog(t, m.dialog.title, t.Base.Render(m.dialog.body)+"\n\n"+buttons)
	case dialogEdit:
		return ui.Dialog(t, m.dialog.title, m.edit.View()+"\n"+t.Muted.Render("enter save • esc cancel"))
	case dialogHelp:
		return ui.Dialog(t, m.dialog.title, m.dialog.body)
	}
	return ""
}
