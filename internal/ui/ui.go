package ui

import (
	"fmt"
	"maps"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"tada/internal/config"
	"tada/internal/todo"
)

type focus int

const (
	focusList focus = iota
	focusInput
	focusItem
)

type Model struct {
	store  *todo.Store
	cfg    config.Config
	keys   keyMap
	styles styles
	help   help.Model
	input  textinput.Model
	items  map[todo.ID]itemView
	cursor int
	focus  focus
	seen   uint64
	status string
	width  int
}

func New(store *todo.Store, cfg config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Add a new task..."
	ti.CharLimit = cfg.CharLimit
	ti.Width = 40
	ti.SetValue(store.Input())

	snap := store.Snapshot()
	return Model{
		store:  store,
		cfg:    cfg,
		keys:   newKeyMap(cfg.Keys),
		styles: defaultStyles(),
		help:   help.New(),
		input:  ti,
		cursor: clampCursor(0, snap.Len()),
		focus:  focusList,
		seen:   snap.Version(),
		status: fmt.Sprintf("Press '%s' to add, %s to toggle, '%s' to delete.",
			keyLabel(cfg.Keys.Add), keyLabel(cfg.Keys.Toggle), keyLabel(cfg.Keys.Delete)),
	}
}

func Run(store *todo.Store, cfg config.Config, logger *log.Logger) error {
	logger.Info("starting tui")
	program := tea.NewProgram(New(store, cfg))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	st := store.Stats()
	logger.Info("tui exited", "total", st.Total, "completed", st.Completed)
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.focus {
		case focusInput:
			return m.updateInput(msg)
		case focusItem:
			return m.updateItem(msg)
		}
		return m.updateList(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.input.Width = inputWidth(msg.Width)
		for id, v := range m.items {
			m.setItem(id, v.setWidth(inputWidth(msg.Width)))
		}
		return m, nil
	}
	return m.forward(msg)
}

// forward passes non-key messages (cursor blink) to whatever holds focus.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusInput:
		m.input, cmd = m.input.Update(msg)
	case focusItem:
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		if e, ok := m.items[t.ID].editor(); ok {
			e.input, cmd = e.input.Update(msg)
			m.setItem(t.ID, itemView{state: e})
		}
	}
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Focus):
		m.input.Blur()
		m.focus = focusList
		m.status = ""
		return m, nil
	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Save):
		return m.submit(), nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.store.SetInput(m.input.Value())
		return m, cmd
	}
}

// submit is the only path that creates tasks.
func (m Model) submit() Model {
	m.store.SetInput(m.input.Value())
	t, ok := m.store.Submit()
	if !ok {
		m.status = "Title cannot be empty"
		return m
	}
	m.input.SetValue(m.store.Input())
	m.reconcile()
	m.cursor = clampCursor(m.store.Snapshot().Index(t.ID), m.store.Snapshot().Len())
	m.status = "Added task"
	return m
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.store.Snapshot().Len()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, n)
	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, n)
	case key.Matches(msg, m.keys.Add), key.Matches(msg, m.keys.Focus):
		m.focus = focusInput
		m.status = "Type a task and press " + keyLabel(m.cfg.Keys.Confirm)
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Toggle):
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.items[t.ID].toggle(t.ID, m.store)
		m.reconcile()
		if t.Completed {
			m.status = "Reopened task"
		} else {
			m.status = "Completed task"
		}
	case key.Matches(msg, m.keys.Delete):
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.items[t.ID].remove(t.ID, m.store)
		m.reconcile()
		m.status = "Deleted task"
	case key.Matches(msg, m.keys.Edit):
		t, ok := m.selected()
		if !ok {
			m.status = "No tasks to edit"
			return m, nil
		}
		return m.startEdit(t)
	}
	return m, nil
}

func (m Model) startEdit(t todo.Task) (tea.Model, tea.Cmd) {
	v := m.items[t.ID]
	if v.isEditing() {
		v, cmd := v.focus()
		m.setItem(t.ID, v)
		m.focus = focusItem
		m.status = "Resumed edit"
		return m, cmd
	}
	v, cmd, ok := v.startEdit(t, m.cfg.CharLimit, inputWidth(m.width))
	if !ok {
		m.status = "Completed tasks cannot be edited"
		return m, nil
	}
	m.setItem(t.ID, v)
	m.focus = focusItem
	m.status = fmt.Sprintf("Editing: %s saves, %s cancels", keyLabel(m.cfg.Keys.Confirm), keyLabel(m.cfg.Keys.Cancel))
	return m, cmd
}

func (m Model) updateItem(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t, ok := m.selected()
	if !ok {
		m.focus = focusList
		return m, nil
	}
	v := m.items[t.ID]
	if key.Matches(msg, m.keys.Focus) {
		m.setItem(t.ID, v.blur())
		m.focus = focusList
		m.status = fmt.Sprintf("Edit kept open; press '%s' to resume", keyLabel(m.cfg.Keys.Edit))
		return m, nil
	}

	v, cmd, outcome := v.handleKey(msg, t.ID, m.keys, m.store)
	m.setItem(t.ID, v)
	switch outcome {
	case itemCommitted:
		m.focus = focusList
		m.status = "Saved task"
	case itemRejected:
		m.status = "Title cannot be empty"
	case itemCancelled:
		m.focus = focusList
		m.status = "Edit cancelled"
	case itemIgnored:
		m.focus = focusList
	}
	m.reconcile()
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("My Todo List"))
	b.WriteString("\n\n")

	b.WriteString(renderList(m.store.Snapshot(), m.items, m.selectedID(), m.focus != focusInput, m.styles, m.width))

	b.WriteString("\n")
	b.WriteString("Add Task: ")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	st := m.store.Stats()
	b.WriteString(m.styles.Stats.Render(fmt.Sprintf("Total: %d | Completed: %d", st.Total, st.Completed)))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Status.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys.help(m.focus)))

	return b.String()
}

func (m Model) selected() (todo.Task, bool) {
	snap := m.store.Snapshot()
	if snap.Len() == 0 {
		return todo.Task{}, false
	}
	return snap.At(clampCursor(m.cursor, snap.Len())), true
}

func (m Model) selectedID() todo.ID {
	t, _ := m.selected()
	return t.ID
}

// setItem records per-item state. Displaying is the zero value and is not stored.
// The map is copied so earlier Model values keep their own view of it.
func (m *Model) setItem(id todo.ID, v itemView) {
	items := maps.Clone(m.items)
	if items == nil {
		items = map[todo.ID]itemView{}
	}
	if v.isEditing() {
		items[id] = v
	} else {
		delete(items, id)
	}
	m.items = items
}

// reconcile drops views of deleted tasks once the collection version moves.
func (m *Model) reconcile() {
	snap := m.store.Snapshot()
	if snap.Version() == m.seen {
		return
	}
	m.seen = snap.Version()
	m.cursor = clampCursor(m.cursor, snap.Len())
	var stale []todo.ID
	for id := range m.items {
		if snap.Index(id) < 0 {
			stale = append(stale, id)
		}
	}
	if len(stale) == 0 {
		return
	}
	items := maps.Clone(m.items)
	for _, id := range stale {
		delete(items, id)
	}
	m.items = items
}

// inputWidth leaves room for the prompt. textinput panics on negative widths.
func inputWidth(termWidth int) int {
	return max(termWidth-10, 0)
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
