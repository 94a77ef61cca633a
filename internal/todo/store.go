package todo

import (
	"slices"
	"strings"
)

// Store owns the task collection and the pending new-task input.
//
// Every mutation builds a new slice and bumps the version, so a Snapshot
// handed out earlier keeps describing the collection it was taken from.
// Operations that find nothing to do return false and change nothing.
type Store struct {
	tasks   []Task
	input   string
	lastID  ID
	version uint64
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Snapshot() Snapshot {
	return Snapshot{tasks: s.tasks, version: s.version}
}

func (s *Store) Stats() Stats {
	return s.Snapshot().Stats()
}

func (s *Store) Input() string {
	return s.input
}

func (s *Store) SetInput(v string) {
	s.input = v
}

// Create appends a task with the trimmed text and clears the pending input.
// Blank text is rejected and leaves the pending input as it was.
func (s *Store) Create(text string) (Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, false
	}
	s.lastID++
	t := Task{ID: s.lastID, Text: text}

	next := make([]Task, len(s.tasks), len(s.tasks)+1)
	copy(next, s.tasks)
	s.replace(append(next, t))
	s.input = ""
	return t, true
}

// Submit creates a task from the pending input.
func (s *Store) Submit() (Task, bool) {
	return s.Create(s.input)
}

func (s *Store) Edit(id ID, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	return s.update(id, func(t *Task) { t.Text = text })
}

func (s *Store) ToggleComplete(id ID) bool {
	return s.update(id, func(t *Task) { t.Completed = !t.Completed })
}

func (s *Store) Delete(id ID) bool {
	i := s.Snapshot().Index(id)
	if i < 0 {
		return false
	}
	s.replace(slices.Delete(slices.Clone(s.tasks), i, i+1))
	return true
}

func (s *Store) update(id ID, fn func(*Task)) bool {
	i := s.Snapshot().Index(id)
	if i < 0 {
		return false
	}
	next := slices.Clone(s.tasks)
	fn(&next[i])
	s.replace(next)
	return true
}

func (s *Store) replace(tasks []Task) {
	s.tasks = tasks
	s.version++
}
