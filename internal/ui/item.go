package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"tada/internal/todo"
)

// Actions are the task mutations an item view may ask its owner to perform.
type Actions interface {
	Edit(id todo.ID, text string) bool
	ToggleComplete(id todo.ID) bool
	Delete(id todo.ID) bool
}

// itemState is either displaying or editing.
type itemState interface {
	isItemState()
}

type displaying struct{}

// editing carries the edit buffer; it exists only while the item is being edited.
type editing struct {
	input textinput.Model
}

func (displaying) isItemState() {}
func (editing) isItemState()    {}

// itemView is the per-task view state, kept by task id across renders.
// The zero value is displaying.
type itemView struct {
	state itemState
}

type itemOutcome int

const (
	itemIgnored itemOutcome = iota
	itemTyping
	itemCommitted
	itemRejected
	itemCancelled
)

func (v itemView) editor() (editing, bool) {
	e, ok := v.state.(editing)
	return e, ok
}

func (v itemView) isEditing() bool {
	_, ok := v.editor()
	return ok
}

// buffer returns the edit buffer, or "" when displaying.
func (v itemView) buffer() string {
	if e, ok := v.editor(); ok {
		return e.input.Value()
	}
	return ""
}

// startEdit moves a displayed, incomplete task into editing with the buffer
// seeded from the task's current text.
func (v itemView) startEdit(t todo.Task, charLimit, width int) (itemView, tea.Cmd, bool) {
	if t.Completed || v.isEditing() {
		return v, nil, false
	}
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = charLimit
	if width > 0 {
		ti.Width = width
	}
	ti.SetValue(t.Text)
	ti.CursorEnd()
	cmd := ti.Focus()
	return itemView{state: editing{input: ti}}, cmd, true
}

// confirm commits a non-blank buffer through actions and returns to
// displaying. A blank buffer leaves the item editing.
func (v itemView) confirm(id todo.ID, a Actions) (itemView, bool) {
	e, ok := v.editor()
	if !ok {
		return v, false
	}
	text := strings.TrimSpace(e.input.Value())
	if text == "" {
		return v, false
	}
	a.Edit(id, text)
	return itemView{state: displaying{}}, true
}

// toggle and remove forward immediately; neither changes the edit state.
func (v itemView) toggle(id todo.ID, a Actions) bool {
	return a.ToggleComplete(id)
}

func (v itemView) remove(id todo.ID, a Actions) bool {
	return a.Delete(id)
}

// cancel drops the buffer without touching the task.
func (v itemView) cancel() itemView {
	return itemView{state: displaying{}}
}

func (v itemView) focus() (itemView, tea.Cmd) {
	e, ok := v.editor()
	if !ok {
		return v, nil
	}
	cmd := e.input.Focus()
	v.state = e
	return v, cmd
}

func (v itemView) blur() itemView {
	e, ok := v.editor()
	if !ok {
		return v
	}
	e.input.Blur()
	v.state = e
	return v
}

func (v itemView) setWidth(w int) itemView {
	e, ok := v.editor()
	if !ok || w <= 0 {
		return v
	}
	e.input.Width = w
	v.state = e
	return v
}

// handleKey processes a key while the item holds focus.
func (v itemView) handleKey(msg tea.KeyMsg, id todo.ID, keys keyMap, a Actions) (itemView, tea.Cmd, itemOutcome) {
	e, ok := v.editor()
	if !ok {
		return v, nil, itemIgnored
	}
	switch {
	case key.Matches(msg, keys.Confirm), key.Matches(msg, keys.Save):
		next, ok := v.confirm(id, a)
		if !ok {
			return v, nil, itemRejected
		}
		return next, nil, itemCommitted
	case key.Matches(msg, keys.Cancel):
		return v.cancel(), nil, itemCancelled
	}
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	v.state = e
	return v, cmd, itemTyping
}

func (v itemView) render(t todo.Task, selected bool, st styles, width int) string {
	cursor := " "
	if selected {
		cursor = st.Cursor.Render(">")
	}
	checkbox := "[ ]"
	if t.Completed {
		checkbox = "[x]"
	}
	prefix := cursor + " " + checkbox + " "

	if e, ok := v.editor(); ok {
		return prefix + e.input.View()
	}

	text := t.Text
	if avail := width - ansi.StringWidth(prefix); width > 0 && avail > 0 {
		text = ansi.Truncate(text, avail, "…")
	}
	if t.Completed {
		return prefix + st.Done.Render(text)
	}
	return prefix + st.Text.Render(text)
}
