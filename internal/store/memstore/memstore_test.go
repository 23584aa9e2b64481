package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/model"
)

func texts(s *Store) []string {
	var out []string
	for _, t := range s.Tasks() {
		out = append(out, t.Text)
	}
	return out
}

func TestAdd(t *testing.T) {
	s := New()
	i, err := s.Add("  Buy milk  ")
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, 1, s.Count())

	task, err := s.Task(0)
	require.NoError(t, err)
	assert.Equal(t, model.Task{Text: "Buy milk"}, task)

	i, err = s.Add("Walk dog")
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Equal(t, []string{"Buy milk", "Walk dog"}, texts(s))
}

func TestAddEmpty(t *testing.T) {
	s := New()
	for _, in := range []string{"", "   ", "\t\n", "✔ Done", "  ✔ Done "} {
		_, err := s.Add(in)
		assert.ErrorIs(t, err, ErrEmptyInput, "Add(%q)", in)
	}
	assert.Equal(t, 0, s.Count())
}

func TestAddDuplicate(t *testing.T) {
	s := New()
	_, err := s.Add("Buy milk")
	require.NoError(t, err)

	for _, in := range []string{"Buy milk", "buy milk", "BUY MILK", " buy MILK ", "Buy milk ✔ Done"} {
		_, err := s.Add(in)
		assert.ErrorIs(t, err, ErrDuplicateTask, "Add(%q)", in)
	}
	assert.Equal(t, 1, s.Count())
}

func TestAddDuplicateIgnoresDone(t *testing.T) {
	s := New()
	_, err := s.Add("Buy milk")
	require.NoError(t, err)
	require.NoError(t, s.ToggleDone(0))

	_, err = s.Add("buy milk")
	assert.ErrorIs(t, err, ErrDuplicateTask)
}

func TestAddStripsMarker(t *testing.T) {
	s := New()
	_, err := s.Add("Ship it ✔ Done")
	require.NoError(t, err)
	task, _ := s.Task(0)
	assert.Equal(t, "Ship it", task.Text)
	assert.False(t, task.Done)
}

func TestRemove(t *testing.T) {
	s := New()
	for _, in := range []string{"A", "B", "C", "D"} {
		_, err := s.Add(in)
		require.NoError(t, err)
	}
	require.NoError(t, s.ToggleDone(3))

	require.NoError(t, s.Remove(1))
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, []string{"A", "C", "D"}, texts(s))
	d, _ := s.Task(2)
	assert.True(t, d.Done)

	require.NoError(t, s.Remove(2))
	assert.Equal(t, []string{"A", "C"}, texts(s))
}

func TestIndexOutOfRange(t *testing.T) {
	s := New()
	_, err := s.Add("A")
	require.NoError(t, err)

	for _, i := range []int{-1, 1, 5} {
		assert.ErrorIs(t, s.Remove(i), ErrIndexOutOfRange)
		assert.ErrorIs(t, s.ToggleDone(i), ErrIndexOutOfRange)
		assert.ErrorIs(t, s.Edit(i, "B"), ErrIndexOutOfRange)
		_, err := s.Task(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}
	assert.Equal(t, 1, s.Count())
}

func TestToggleDoneIsInvolution(t *testing.T) {
	s := New()
	_, err := s.Add("Write report")
	require.NoError(t, err)
	before, _ := s.Task(0)

	require.NoError(t, s.ToggleDone(0))
	mid, _ := s.Task(0)
	assert.True(t, mid.Done)

	require.NoError(t, s.ToggleDone(0))
	after, _ := s.Task(0)
	assert.Equal(t, before, after)
}

func TestEdit(t *testing.T) {
	s := New()
	_, _ = s.Add("A")
	_, _ = s.Add("B")
	require.NoError(t, s.ToggleDone(0))

	require.NoError(t, s.Edit(0, "  Alpha  "))
	task, _ := s.Task(0)
	assert.Equal(t, model.Task{Text: "Alpha", Done: true}, task)
}

func TestEditBlankIsNoop(t *testing.T) {
	s := New()
	_, _ = s.Add("A")
	require.NoError(t, s.ToggleDone(0))

	for _, in := range []string{"", "   ", "✔ Done"} {
		require.NoError(t, s.Edit(0, in))
		task, _ := s.Task(0)
		assert.Equal(t, model.Task{Text: "A", Done: true}, task)
	}
}

func TestEditDuplicate(t *testing.T) {
	s := New()
	_, _ = s.Add("A")
	_, _ = s.Add("B")

	err := s.Edit(1, "a")
	assert.ErrorIs(t, err, ErrDuplicateTask)
	assert.Equal(t, []string{"A", "B"}, texts(s))
}

func TestEditSameTextDifferentCase(t *testing.T) {
	s := New()
	_, _ = s.Add("write report")
	require.NoError(t, s.Edit(0, "Write Report"))
	assert.Equal(t, []string{"Write Report"}, texts(s))
}

func TestClear(t *testing.T) {
	s := New()
	s.Clear()
	assert.Equal(t, 0, s.Count())
	assert.True(t, s.IsEmpty())

	_, _ = s.Add("A")
	_, _ = s.Add("B")
	s.Clear()
	assert.Equal(t, 0, s.Count())
	s.Clear()
	assert.Equal(t, 0, s.Count())

	_, err := s.Add("A")
	assert.NoError(t, err)
}

func TestTasksReturnsCopy(t *testing.T) {
	s := New()
	_, _ = s.Add("A")
	ts := s.Tasks()
	ts[0].Text = "changed"
	task, _ := s.Task(0)
	assert.Equal(t, "A", task.Text)
}

func TestIndependentStores(t *testing.T) {
	a, b := New(), New()
	_, _ = a.Add("A")
	assert.Equal(t, 1, a.Count())
	assert.Equal(t, 0, b.Count())
}

func TestScenarioWriteReport(t *testing.T) {
	s := New()
	_, err := s.Add("Write report")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count())

	require.NoError(t, s.ToggleDone(0))
	task, _ := s.Task(0)
	assert.Equal(t, "Write report ✔ Done", task.Label())

	require.NoError(t, s.Edit(0, "Write report"))
	task, _ = s.Task(0)
	assert.True(t, task.Done)

	require.NoError(t, s.Remove(0))
	assert.Equal(t, 0, s.Count())
}

func TestScenarioDuplicateThird(t *testing.T) {
	s := New()
	_, err := s.Add("A")
	require.NoError(t, err)
	_, err = s.Add("B")
	require.NoError(t, err)
	_, err = s.Add("A")
	assert.ErrorIs(t, err, ErrDuplicateTask)
	assert.Equal(t, 2, s.Count())
}
