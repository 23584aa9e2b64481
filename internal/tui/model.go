// Package tui is the interactive shell over a memstore.Store.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store/memstore"
	"github.com/Makepad-fr/tada/internal/ui"
)

const (
	appTitle = "My To-Do List"

	// DoubleClickInterval is the longest gap between two clicks on one row
	// that still counts as a double-click.
	DoubleClickInterval = 500 * time.Millisecond

	defaultWidth  = 80
	defaultHeight = 24

	// Rows above the list inside the panel: border, title, blank, input, blank.
	listTop     = 5
	// Fixed rows around the list: listTop plus blank, counter, help, border.
	chromeLines = listTop + 4
)

type focus int

const (
	focusInput focus = iota
	focusList
)

// Option configures a Model.
type Option func(*Model)

func WithDark(dark bool) Option {
	return func(m *Model) { m.dark = dark }
}

func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.log = l }
}

// WithCharLimit caps the input length; zero means unlimited.
func WithCharLimit(n int) Option {
	return func(m *Model) { m.charLimit = n }
}

// WithClock overrides time.Now for double-click detection.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

type click struct {
	row int
	at  time.Time
}

// Model is the bubbletea model for the task window.
type Model struct {
	store *memstore.Store
	log   *log.Logger
	keys  keyMap
	help  help.Model

	list  list.Model
	input textinput.Model
	edit  textinput.Model

	focus      focus
	dialog     dialog
	dark       bool
	theme      ui.Theme
	countLabel string
	charLimit  int

	width, height int
	lastClick     click
	now           func() time.Time
}

// New builds the shell around store.
func New(store *memstore.Store, opts ...Option) Model {
	m := Model{
		store:     store,
		log:       logging.Discard(),
		keys:      defaultKeyMap(),
		help:      help.New(),
		charLimit: 200,
		width:     defaultWidth,
		height:    defaultHeight,
		lastClick: click{row: -1},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}

	l := list.New(toItems(store.Tasks()), itemDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.SetStatusBarItemName("task", "tasks")
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)
	m.list = l

	m.input = textinput.New()
	m.input.Prompt = "> "
	m.input.Placeholder = "New task..."
	m.input.CharLimit = m.charLimit
	m.input.Focus()

	m.edit = textinput.New()
	m.edit.Prompt = "> "
	m.edit.CharLimit = m.charLimit

	m.applyTheme()
	m.refreshCount()
	m.resize()
	return m
}

// Run starts the program on the alternate screen with mouse support.
func Run(store *memstore.Store, opts ...Option) error {
	m := New(store, opts...)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.MouseMsg:
		if m.dialog.kind != dialogNone {
			return m, nil
		}
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.dialog.kind != dialogNone {
			return m.updateDialog(msg)
		}
		return m.handleKey(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	if m.dialog.kind == dialogEdit {
		m.edit, cmd = m.edit.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus):
		return m, m.toggleFocus()
	case key.Matches(msg, m.keys.Add):
		return m, m.addTask()
	case key.Matches(msg, m.keys.Toggle):
		m.toggleSelected()
		return m, nil
	case key.Matches(msg, m.keys.Remove):
		m.confirmRemove()
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.confirmClear()
		return m, nil
	case key.Matches(msg, m.keys.Dark):
		m.toggleDark()
		return m, nil
	}

	if m.focus == focusInput {
		switch {
		case key.Matches(msg, m.keys.Submit):
			return m, m.addTask()
		case key.Matches(msg, m.keys.Leave):
			return m, m.setFocus(focusList)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.ListQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Insert):
		return m, m.setFocus(focusInput)
	case key.Matches(msg, m.keys.ListToggle):
		m.toggleSelected()
		return m, nil
	case key.Matches(msg, m.keys.ListRemove):
		m.confirmRemove()
		return m, nil
	case key.Matches(msg, m.keys.ListClear):
		m.confirmClear()
		return m, nil
	case key.Matches(msg, m.keys.ListDark):
		m.toggleDark()
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		i, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.openEdit(i)
	case key.Matches(msg, m.keys.Help):
		m.dialog = dialog{kind: dialogHelp, title: "Help", body: renderHelp(m.theme.Markdown, m.width-12)}
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.list.CursorUp()
		return m, nil
	case tea.MouseButtonWheelDown:
		m.list.CursorDown()
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	row, ok := m.rowAt(msg.Y)
	if !ok {
		m.lastClick = click{row: -1}
		return m, nil
	}
	m.list.Select(row)
	if m.focus != focusList {
		m.setFocus(focusList)
	}

	now := m.now()
	if m.lastClick.row == row && now.Sub(m.lastClick.at) <= DoubleClickInterval {
		m.lastClick = click{row: -1}
		return m, m.openEdit(row)
	}
	m.lastClick = click{row: row, at: now}
	return m, nil
}

// rowAt maps a screen line to a task index on the current list page.
func (m Model) rowAt(y int) (int, bool) {
	offset := y - listTop
	if offset < 0 || offset >= m.list.Paginator.PerPage {
		return 0, false
	}
	i := m.list.Paginator.Page*m.list.Paginator.PerPage + offset
	if i >= len(m.list.Items()) {
		return 0, false
	}
	return i, true
}

// selected returns the highlighted row, if there is one.
func (m Model) selected() (int, bool) {
	i := m.list.Index()
	if m.store.IsEmpty() || i < 0 || i >= m.store.Count() {
		return 0, false
	}
	return i, true
}

func (m *Model) addTask() tea.Cmd {
	raw := m.input.Value()
	i, err := m.store.Add(raw)
	switch {
	case errors.Is(err, memstore.ErrEmptyInput):
		m.log.Info("add rejected", "reason", err)
		m.showMessage(msgEnterTask)
		return nil
	case errors.Is(err, memstore.ErrDuplicateTask):
		m.log.Info("add rejected", "reason", err)
		m.showMessage(msgDuplicate)
		return nil
	case err != nil:
		m.log.Error("add failed", "err", err)
		m.showMessage(err.Error())
		return nil
	}

	m.log.Debug("task added", "index", i, "count", m.store.Count())
	m.input.Reset()
	m.sync(i)
	m.refreshCount()
	return m.setFocus(focusInput)
}

func (m *Model) toggleSelected() {
	i, ok := m.selected()
	if !ok {
		m.showMessage(msgSelectDone)
		return
	}
	if err := m.store.ToggleDone(i); err != nil {
		m.log.Error("toggle failed", "index", i, "err", err)
		m.showMessage(msgSelectDone)
		return
	}
	if t, err := m.store.Task(i); err == nil {
		m.log.Debug("task toggled", "index", i, "label", t.Label())
		m.list.SetItem(i, listItem{task: t})
	}
}

func (m *Model) confirmRemove() {
	i, ok := m.selected()
	if !ok {
		m.showMessage(msgSelectRemove)
		return
	}
	m.askConfirm("Confirm Remove", msgConfirmRemove, actionRemove, i)
}

func (m *Model) removeTask(i int) tea.Cmd {
	if err := m.store.Remove(i); err != nil {
		m.log.Error("remove failed", "index", i, "err", err)
		m.showMessage(msgSelectRemove)
		return nil
	}
	m.log.Debug("task removed", "index", i, "count", m.store.Count())
	sel := i
	if sel >= m.store.Count() {
		sel = m.store.Count() - 1
	}
	m.sync(sel)
	m.refreshCount()
	return m.setFocus(focusInput)
}

func (m *Model) confirmClear() {
	if m.store.IsEmpty() {
		m.showMessage(msgNothingToClear)
		return
	}
	m.askConfirm("Confirm Clear All", msgConfirmClear, actionClear, -1)
}

func (m *Model) clearTasks() tea.Cmd {
	n := m.store.Count()
	m.store.Clear()
	m.log.Debug("tasks cleared", "removed", n)
	m.sync(0)
	m.refreshCount()
	return m.setFocus(focusInput)
}

// openEdit shows the edit prompt pre-filled with the task's plain text.
func (m *Model) openEdit(i int) tea.Cmd {
	t, err := m.store.Task(i)
	if err != nil {
		return nil
	}
	m.dialog = dialog{kind: dialogEdit, title: "Edit task:", index: i}
	m.edit.SetValue(model.StripMarker(t.Text))
	m.edit.CursorEnd()
	m.resize()
	return m.edit.Focus()
}

func (m *Model) submitEdit() {
	i := m.dialog.index
	raw := m.edit.Value()
	m.closeDialog()
	if strings.TrimSpace(raw) == "" {
		return
	}
	if err := m.store.Edit(i, raw); err != nil {
		if errors.Is(err, memstore.ErrDuplicateTask) {
			m.log.Info("edit rejected", "index", i, "reason", err)
			m.showMessage(msgDuplicate)
			return
		}
		m.log.Error("edit failed", "index", i, "err", err)
		return
	}
	if t, err := m.store.Task(i); err == nil {
		m.log.Debug("task edited", "index", i)
		m.list.SetItem(i, listItem{task: t})
	}
}

func (m *Model) toggleDark() {
	m.dark = !m.dark
	m.log.Debug("display mode", "dark", m.dark)
	m.applyTheme()
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusInput {
		return m.setFocus(focusList)
	}
	return m.setFocus(focusInput)
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	if f == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// sync reloads list rows from the store and selects sel when valid.
func (m *Model) sync(sel int) {
	m.list.SetItems(toItems(m.store.Tasks()))
	if sel >= 0 && sel < m.store.Count() {
		m.list.Select(sel)
	}
}

func (m *Model) refreshCount() {
	m.countLabel = fmt.Sprintf("Total tasks: %d", m.store.Count())
}

func (m *Model) applyTheme() {
	t := ui.For(m.dark)
	m.theme = t
	m.list.SetDelegate(itemDelegate{theme: t})
	m.list.Styles.NoItems = t.Muted
	m.list.Styles.PaginationStyle = t.Muted
	m.list.Styles.ActivePaginationDot = t.Accent.SetString("•")
	m.list.Styles.InactivePaginationDot = t.Muted.SetString("•")

	for _, in := range []*textinput.Model{&m.input, &m.edit} {
		in.PromptStyle = t.Accent
		in.TextStyle = t.Base
		in.PlaceholderStyle = t.Muted
		in.Cursor.Style = t.Accent
		in.Cursor.TextStyle = t.Base
	}

	m.help.Styles.ShortKey = t.Accent
	m.help.Styles.ShortDesc = t.Muted
	m.help.Styles.ShortSeparator = t.Muted
	m.help.Styles.Ellipsis = t.Muted
}

// resize fits the list and input to the window and any open dialog.
func (m *Model) resize() {
	inner := m.width - 4
	if inner < 20 {
		inner = 20
	}
	extra := 0
	if m.dialog.kind != dialogNone {
		// The dialog takes the place of the counter and help lines.
		extra = lipgloss.Height(m.dialogView()) - 2
	}
	h := m.height - chromeLines - extra
	if h < 1 {
		h = 1
	}
	m.list.SetSize(inner, h)
	m.input.Width = inner - lipgloss.Width(m.addButton()) - len(m.input.Prompt) - 2
	if m.input.Width < 10 {
		m.input.Width = 10
	}
	m.edit.Width = inner - 10
	m.help.Width = inner
}

func (m Model) addButton() string {
	if m.focus == focusInput {
		return m.theme.Focused.Render("Add Task")
	}
	return m.theme.Button.Render("Add Task")
}

func (m Model) View() string {
	t := m.theme
	var b strings.Builder

	title := t.Title.Render(appTitle)
	if m.dark {
		title += t.Muted.Render("  ☾ dark")
	}
	b.WriteString(title + "\n\n")
	b.WriteString(m.input.View() + t.Base.Render("  ") + m.addButton() + "\n\n")
	b.WriteString(m.list.View() + "\n\n")

	if m.dialog.kind != dialogNone {
		b.WriteString(m.dialogView())
	} else {
		counter := t.Accent.Render(m.countLabel)
		progress := t.Muted.Render(ui.ProgressBar(doneCount(m.store.Tasks()), m.store.Count(), 10))
		b.WriteString(counter + t.Base.Render("   ") + progress + "\n")
		bindings := m.keys.listHelp()
		if m.focus == focusInput {
			bindings = m.keys.inputHelp()
		}
		b.WriteString(m.help.ShortHelpView(bindings))
	}
	return ui.Panel(t, b.String(), m.width)
}

func doneCount(tasks []model.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Done {
			n++
		}
	}
	return n
}
