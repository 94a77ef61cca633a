package todo

import "iter"

// Snapshot is a read-only view of the collection at one version.
// The backing slice is never written after the snapshot is taken.
type Snapshot struct {
	tasks   []Task
	version uint64
}

func (s Snapshot) Len() int {
	return len(s.tasks)
}

func (s Snapshot) At(i int) Task {
	return s.tasks[i]
}

// Version changes whenever the store replaces its collection.
func (s Snapshot) Version() uint64 {
	return s.version
}

// All yields tasks in insertion order. It can be ranged over any number of times.
func (s Snapshot) All() iter.Seq[Task] {
	return func(yield func(Task) bool) {
		for _, t := range s.tasks {
			if !yield(t) {
				return
			}
		}
	}
}

// Index returns the position of id, or -1.
func (s Snapshot) Index(id ID) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s Snapshot) Find(id ID) (Task, bool) {
	i := s.Index(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

func (s Snapshot) Stats() Stats {
	st := Stats{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Completed {
			st.Completed++
		}
	}
	return st
}
