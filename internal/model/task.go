package model

import "strings"

// DoneMarker is appended to a task's label when it is complete.
// It is display-only and never part of Task.Text.
const DoneMarker = "✔ Done"

// Task is the domain model for a to-do entry.
type Task struct {
	Text string
	Done bool
}

// Label is what a list row shows for the task.
func (t Task) Label() string {
	if t.Done {
		return t.Text + " " + DoneMarker
	}
	return t.Text
}

// StripMarker removes a trailing DoneMarker (if any) and surrounding whitespace.
func StripMarker(s string) string {
	s = strings.TrimSuffix(strings.TrimSpace(s), DoneMarker)
	return strings.TrimSpace(s)
}
