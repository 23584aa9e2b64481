package memstore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Makepad-fr/tada/internal/model"
)

// In-memory task list. Lives for the process lifetime and is never saved.
// Not safe for concurrent use; the TUI owns it on its update goroutine.

var (
	ErrEmptyInput      = errors.New("empty task")
	ErrDuplicateTask   = errors.New("task already exists")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Store is an ordered list of tasks with case-insensitively unique text.
type Store struct {
	tasks []model.Task
}

func New() *Store {
	return &Store{}
}

// Add appends a new pending task and returns its index.
func (s *Store) Add(raw string) (int, error) {
	text := normalize(raw)
	if text == "" {
		return -1, ErrEmptyInput
	}
	if s.indexOf(text, -1) >= 0 {
		return -1, fmt.Errorf("%w: %q", ErrDuplicateTask, text)
	}
	s.tasks = append(s.tasks, model.Task{Text: text})
	return len(s.tasks) - 1, nil
}

// Remove deletes the task at i; later tasks shift back by one.
func (s *Store) Remove(i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}

func (s *Store) ToggleDone(i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.tasks[i].Done = !s.tasks[i].Done
	return nil
}

// Edit replaces the text at i and keeps its completion state.
// Blank input leaves the task untouched and is not an error.
func (s *Store) Edit(i int, raw string) error {
	if err := s.check(i); err != nil {
		return err
	}
	text := normalize(raw)
	if text == "" {
		return nil
	}
	if s.indexOf(text, i) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateTask, text)
	}
	s.tasks[i].Text = text
	return nil
}

func (s *Store) Clear() {
	s.tasks = nil
}

func (s *Store) Count() int { return len(s.tasks) }

func (s *Store) IsEmpty() bool { return len(s.tasks) == 0 }

func (s *Store) Task(i int) (model.Task, error) {
	if err := s.check(i); err != nil {
		return model.Task{}, err
	}
	return s.tasks[i], nil
}

// Tasks returns a copy of the list in order.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) check(i int) error {
	if i < 0 || i >= len(s.tasks) {
		return fmt.Errorf("%w: have %d, got %d", ErrIndexOutOfRange, len(s.tasks), i)
	}
	return nil
}

// indexOf finds a task whose text matches text case-insensitively, skipping index skip.
func (s *Store) indexOf(text string, skip int) int {
	for i, t := range s.tasks {
		if i == skip {
			continue
		}
		if strings.EqualFold(normalize(t.Text), text) {
			return i
		}
	}
	return -1
}

func normalize(s string) string { return model.StripMarker(s) }
