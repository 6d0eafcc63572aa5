package list

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange(t *testing.T) {
	// testRange builds [1 2 3 |0] inside a list with unrelated values around it.
	testRange := func(t *testing.T) (*List[int], Range[int]) {
		t.Helper()
		l := New[int]()
		l.AddLast(100)
		first := l.AddLast(1)
		l.AddLast(2)
		l.AddLast(3)
		terminal := l.AddLast(0)
		l.AddLast(200)

		r, err := NewRange(first, terminal)
		require.NoError(t, err)
		return l, r
	}

	t.Run("New", func(t *testing.T) {
		l := New[int]()
		a := l.AddLast(1)
		b := l.AddLast(0)
		foreign := New[int]().AddLast(0)

		for name, tc := range map[string]struct{ first, terminal *Node[int] }{
			"nil first":     {nil, b},
			"nil terminal":  {a, nil},
			"identical":     {a, a},
			"foreign nodes": {a, foreign},
		} {
			t.Run(name, func(t *testing.T) {
				r, err := NewRange(tc.first, tc.terminal)
				assert.ErrorIs(t, err, ErrInvalidRange)
				assert.False(t, r.IsValid())
			})
		}

		r, err := NewRange(a, b)
		require.NoError(t, err)
		assert.True(t, r.IsValid())
		assert.Same(t, a, r.First())
		assert.Same(t, b, r.Terminal())
	})

	t.Run("Released", func(t *testing.T) {
		l := New[int]()
		a := l.AddLast(1)
		b := l.AddLast(0)
		require.NoError(t, l.RemoveNode(a))

		_, err := NewRange(a, b)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("Len", func(t *testing.T) {
		l, r := testRange(t)
		assert.Equal(t, 3, r.Len())

		// Len is recomputed from the live list.
		_, err := l.AddBefore(r.Terminal(), 4)
		require.NoError(t, err)
		assert.Equal(t, 4, r.Len())
	})

	t.Run("Contains", func(t *testing.T) {
		_, r := testRange(t)
		assert.True(t, r.Contains(1))
		assert.True(t, r.Contains(3))
		// Outside the range, and the terminal's own value.
		assert.False(t, r.Contains(100))
		assert.False(t, r.Contains(200))
		assert.False(t, r.Contains(0))
	})

	t.Run("Values", func(t *testing.T) {
		_, r := testRange(t)
		seq, err := r.Values()
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, slices.Collect(seq))
		// Restartable.
		assert.Equal(t, []int{1, 2, 3}, slices.Collect(seq))
		assert.Equal(t, []int{9, 1, 2, 3}, r.AppendTo([]int{9}))
	})

	t.Run("ZeroValuesInside", func(t *testing.T) {
		// Data nodes may hold the same value as the terminal; only identity
		// ends the walk.
		l := New[int]()
		first := l.AddLast(0)
		l.AddLast(0)
		terminal := l.AddLast(0)
		r, err := NewRange(first, terminal)
		require.NoError(t, err)

		assert.Equal(t, 2, r.Len())
		seq, err := r.Values()
		require.NoError(t, err)
		assert.Equal(t, []int{0, 0}, slices.Collect(seq))
	})

	t.Run("Invalid", func(t *testing.T) {
		var r Range[int]
		assert.False(t, r.IsValid())
		assert.Equal(t, 0, r.Len())
		assert.False(t, r.Contains(0))
		assert.Empty(t, r.AppendTo(nil))

		seq, err := r.Values()
		assert.ErrorIs(t, err, ErrInvalidState)
		assert.Nil(t, seq)
	})

	t.Run("Stale", func(t *testing.T) {
		l, r := testRange(t)
		terminal := r.Terminal()
		require.NoError(t, l.RemoveNode(terminal))
		assert.False(t, r.IsValid())
		assert.Equal(t, 0, r.Len())

		// Recycling the node into the same list does not revive the range.
		require.Same(t, terminal, l.AddLast(0))
		assert.False(t, r.IsValid())
		_, err := r.Values()
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("StopsAtListEnd", func(t *testing.T) {
		// A terminal placed before first never matches while walking forward;
		// the walk must still end at the list tail.
		l := New[int]()
		terminal := l.AddLast(0)
		first := l.AddLast(1)
		l.AddLast(2)

		r, err := NewRange(first, terminal)
		require.NoError(t, err)
		assert.Equal(t, 2, r.Len())
	})
}
