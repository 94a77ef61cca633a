// Package todo holds the in-memory task collection for one session.
package todo

// ID identifies a task within a Store. IDs are never reused.
type ID uint64

type Task struct {
	ID        ID
	Text      string
	Completed bool
}

// Stats is derived from a collection on demand and never stored.
type Stats struct {
	Total     int
	Completed int
}
