package list

import (
	"fmt"
	"iter"
)

// Range is a view over the half-open node sequence [first, terminal) of one
// List. The terminal node is a real node of the list that marks the end of the
// range; its value is not part of the range.
//
// A Range holds no ownership, only node identities. It is a snapshot of
// identity, not of size: Len and Contains walk the live list on every call.
// Once either boundary node is removed from its list the range reports
// IsValid() == false, even if the node is later recycled.
type Range[T comparable] struct {
	first    *Node[T]
	terminal *Node[T]

	firstGen    uint32
	terminalGen uint32
}

// NewRange returns the range [first, terminal). Both nodes must be distinct,
// active nodes of the same list.
func NewRange[T comparable](first, terminal *Node[T]) (Range[T], error) {
	if first == nil || terminal == nil {
		return Range[T]{}, fmt.Errorf("list: new range: nil boundary: %w", ErrInvalidRange)
	}
	if first == terminal {
		return Range[T]{}, fmt.Errorf("list: new range: first is terminal: %w", ErrInvalidRange)
	}
	if first.list == nil || first.list != terminal.list {
		return Range[T]{}, fmt.Errorf("list: new range: boundaries not in the same list: %w", ErrInvalidRange)
	}
	return Range[T]{
		first:       first,
		terminal:    terminal,
		firstGen:    first.gen,
		terminalGen: terminal.gen,
	}, nil
}

// First returns the first node of the range.
func (r Range[T]) First() *Node[T] { return r.first }

// Terminal returns the exclusive end node of the range.
func (r Range[T]) Terminal() *Node[T] { return r.terminal }

// IsValid reports whether both boundaries are set, distinct, and have not
// been released since the range was created.
func (r Range[T]) IsValid() bool {
	return r.first != nil && r.terminal != nil && r.first != r.terminal &&
		r.first.gen == r.firstGen && r.terminal.gen == r.terminalGen
}

// Len returns the number of nodes strictly before the terminal, or 0 if the
// range is not valid.
func (r Range[T]) Len() int {
	if !r.IsValid() {
		return 0
	}
	count := 0
	for n := r.first; n != nil && n != r.terminal; n = n.Next() {
		count++
	}
	return count
}

// Contains reports whether v is held by a node of the range.
func (r Range[T]) Contains(v T) bool {
	if !r.IsValid() {
		return false
	}
	for n := r.first; n != nil && n != r.terminal; n = n.Next() {
		if n.val == v {
			return true
		}
	}
	return false
}

// Values returns an iterator over the range's values, stopping before the
// terminal node. It fails with ErrInvalidState if the range is not valid.
func (r Range[T]) Values() (iter.Seq[T], error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("list: range values: %w", ErrInvalidState)
	}
	return func(yield func(T) bool) {
		for n := r.first; n != nil && n != r.terminal; n = n.Next() {
			if !yield(n.val) {
				return
			}
		}
	}, nil
}

// AppendTo appends the range's values to dst and returns the extended slice.
// An invalid range appends nothing.
func (r Range[T]) AppendTo(dst []T) []T {
	if !r.IsValid() {
		return dst
	}
	for n := r.first; n != nil && n != r.terminal; n = n.Next() {
		dst = append(dst, n.val)
	}
	return dst
}
