package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tada/internal/config"
	"tada/internal/todo"
)

// recordingActions counts calls and applies them to a real store.
type recordingActions struct {
	store   *todo.Store
	edits   []string
	toggles []todo.ID
	deletes []todo.ID
}

func (r *recordingActions) Edit(id todo.ID, text string) bool {
	r.edits = append(r.edits, text)
	return r.store.Edit(id, text)
}

func (r *recordingActions) ToggleComplete(id todo.ID) bool {
	r.toggles = append(r.toggles, id)
	return r.store.ToggleComplete(id)
}

func (r *recordingActions) Delete(id todo.ID) bool {
	r.deletes = append(r.deletes, id)
	return r.store.Delete(id)
}

func editingItem(t *testing.T, task todo.Task) itemView {
	t.Helper()
	v, _, ok := itemView{}.startEdit(task, config.DefaultCharLimit, 0)
	require.True(t, ok)
	return v
}

func TestItem_ZeroValueIsDisplaying(t *testing.T) {
	var v itemView
	assert.False(t, v.isEditing())
	assert.Empty(t, v.buffer())
}

func TestItem_StartEditSeedsBuffer(t *testing.T) {
	v := editingItem(t, todo.Task{ID: 1, Text: "Buy milk"})
	assert.True(t, v.isEditing())
	assert.Equal(t, "Buy milk", v.buffer())
}

func TestItem_CompletedTaskCannotEnterEdit(t *testing.T) {
	v, cmd, ok := itemView{}.startEdit(todo.Task{ID: 1, Text: "done", Completed: true}, 0, 0)
	assert.False(t, ok)
	assert.Nil(t, cmd)
	assert.False(t, v.isEditing())
}

func TestItem_StartEditOnlyFromDisplay(t *testing.T) {
	v := editingItem(t, todo.Task{ID: 1, Text: "A"})
	_, _, ok := v.startEdit(todo.Task{ID: 1, Text: "A"}, 0, 0)
	assert.False(t, ok)
}

func TestItem_ConfirmCommitsTrimmedBuffer(t *testing.T) {
	store := todo.NewStore()
	task, _ := store.Create("A")
	a := &recordingActions{store: store}
	keys := newKeyMap(config.Default().Keys)

	v := editingItem(t, task)
	v, _, _ = v.handleKey(tea.KeyMsg{Type: tea.KeyCtrlU}, task.ID, keys, a)
	v, _, _ = v.handleKey(runes("  A2 "), task.ID, keys, a)
	v, _, outcome := v.handleKey(tea.KeyMsg{Type: tea.KeyEnter}, task.ID, keys, a)

	assert.Equal(t, itemCommitted, outcome)
	assert.False(t, v.isEditing())
	assert.Equal(t, []string{"A2"}, a.edits)
	assert.Equal(t, "A2", store.Snapshot().At(0).Text)
}

func TestItem_SaveKeyMatchesConfirmKey(t *testing.T) {
	store := todo.NewStore()
	task, _ := store.Create("A")
	a := &recordingActions{store: store}
	keys := newKeyMap(config.Default().Keys)

	v := editingItem(t, task)
	v, _, _ = v.handleKey(runes("!"), task.ID, keys, a)
	_, _, outcome := v.handleKey(tea.KeyMsg{Type: tea.KeyCtrlS}, task.ID, keys, a)

	assert.Equal(t, itemCommitted, outcome)
	assert.Equal(t, "A!", store.Snapshot().At(0).Text)
}

func TestItem_ConfirmBlankStaysEditing(t *testing.T) {
	store := todo.NewStore()
	task, _ := store.Create("A")
	a := &recordingActions{store: store}
	keys := newKeyMap(config.Default().Keys)

	v := editingItem(t, task)
	v, _, _ = v.handleKey(tea.KeyMsg{Type: tea.KeyCtrlU}, task.ID, keys, a)
	v, _, _ = v.handleKey(runes("  "), task.ID, keys, a)
	v, _, outcome := v.handleKey(tea.KeyMsg{Type: tea.KeyEnter}, task.ID, keys, a)

	assert.Equal(t, itemRejected, outcome)
	assert.True(t, v.isEditing())
	assert.Equal(t, "  ", v.buffer())
	assert.Empty(t, a.edits)
	assert.Equal(t, "A", store.Snapshot().At(0).Text)
}

func TestItem_CancelDiscardsBuffer(t *testing.T) {
	store := todo.NewStore()
	task, _ := store.Create("A")
	a := &recordingActions{store: store}
	keys := newKeyMap(config.Default().Keys)

	v := editingItem(t, task)
	v, _, _ = v.handleKey(runes("zzz"), task.ID, keys, a)
	v, _, outcome := v.handleKey(tea.KeyMsg{Type: tea.KeyEsc}, task.ID, keys, a)

	assert.Equal(t, itemCancelled, outcome)
	assert.False(t, v.isEditing())
	assert.Empty(t, a.edits)

	v = editingItem(t, store.Snapshot().At(0))
	assert.Equal(t, "A", v.buffer(), "reopened editor starts from the unmodified text")
}

func TestItem_KeysIgnoredWhileDisplaying(t *testing.T) {
	store := todo.NewStore()
	task, _ := store.Create("A")
	a := &recordingActions{store: store}

	_, _, outcome := itemView{}.handleKey(tea.KeyMsg{Type: tea.KeyEnter}, task.ID, newKeyMap(config.Default().Keys), a)

	assert.Equal(t, itemIgnored, outcome)
	assert.Empty(t, a.edits)
}

func TestItem_RenderMarksCompleted(t *testing.T) {
	st := defaultStyles()

	open := itemView{}.render(todo.Task{ID: 1, Text: "walk"}, false, st, 0)
	done := itemView{}.render(todo.Task{ID: 1, Text: "walk", Completed: true}, true, st, 0)

	assert.Contains(t, open, "[ ] walk")
	assert.Contains(t, done, "[x]")
	assert.Contains(t, done, "walk")
	assert.Contains(t, done, ">")
}

func TestItem_RenderTruncatesToWidth(t *testing.T) {
	out := itemView{}.render(todo.Task{ID: 1, Text: "a very long task description"}, false, defaultStyles(), 16)
	assert.Contains(t, out, "…")
	assert.NotContains(t, out, "description")
}

func TestItem_ToggleAndRemoveGoThroughActions(t *testing.T) {
	store := todo.NewStore()
	a1, _ := store.Create("A")
	b, _ := store.Create("B")
	a := &recordingActions{store: store}

	assert.True(t, itemView{}.toggle(a1.ID, a))
	assert.True(t, itemView{}.remove(b.ID, a))
	assert.False(t, itemView{}.remove(b.ID, a))

	assert.Equal(t, []todo.ID{a1.ID}, a.toggles)
	assert.Equal(t, []todo.ID{b.ID, b.ID}, a.deletes)
	assert.Equal(t, []string{"A"}, texts(store))
	assert.True(t, store.Snapshot().At(0).Completed)
}

func TestItem_ToggleKeepsEditOpen(t *testing.T) {
	store := todo.NewStore()
	task, _ := store.Create("A")
	a := &recordingActions{store: store}
	keys := newKeyMap(config.Default().Keys)

	v := editingItem(t, task)
	v, _, _ = v.handleKey(runes("!"), task.ID, keys, a)
	require.True(t, v.toggle(task.ID, a))

	assert.True(t, v.isEditing())
	assert.Equal(t, "A!", v.buffer())
	assert.Empty(t, a.edits)
}

func TestItem_SetWidthIgnoresNonPositive(t *testing.T) {
	v := editingItem(t, todo.Task{ID: 1, Text: "A"}).setWidth(30)

	v = v.setWidth(0)
	e, ok := v.editor()
	require.True(t, ok)
	assert.Equal(t, 30, e.input.Width)
	assert.NotPanics(t, func() { _ = v.render(todo.Task{ID: 1, Text: "A"}, true, defaultStyles(), 1) })
}
