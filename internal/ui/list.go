package ui

import (
	"iter"
	"strings"

	"tada/internal/todo"
)

const emptyListMessage = "No tasks yet. Add one to get started!"

// listEntry is one line of the task list. Placeholder entries carry no task.
type listEntry struct {
	Key         todo.ID
	Task        todo.Task
	Item        itemView
	Placeholder bool
}

// listEntries yields one entry per task, keyed by task id, or a single
// placeholder when there are no tasks.
func listEntries(snap todo.Snapshot, items map[todo.ID]itemView) iter.Seq[listEntry] {
	return func(yield func(listEntry) bool) {
		if snap.Len() == 0 {
			yield(listEntry{Placeholder: true})
			return
		}
		for t := range snap.All() {
			if !yield(listEntry{Key: t.ID, Task: t, Item: items[t.ID]}) {
				return
			}
		}
	}
}

func renderList(snap todo.Snapshot, items map[todo.ID]itemView, selected todo.ID, listFocused bool, st styles, width int) string {
	var b strings.Builder
	for e := range listEntries(snap, items) {
		if e.Placeholder {
			b.WriteString(st.Placeholder.Render(emptyListMessage))
			b.WriteString("\n")
			continue
		}
		b.WriteString(e.Item.render(e.Task, listFocused && e.Key == selected, st, width))
		b.WriteString("\n")
	}
	return b.String()
}
