package list

import "errors"

var (
	// ErrEmpty is returned when removing a boundary node from an empty list.
	ErrEmpty = errors.New("list is empty")
	// ErrForeignNode is returned when a node or anchor does not belong to the
	// list being mutated (including nodes that were already removed).
	ErrForeignNode = errors.New("node does not belong to this list")
	// ErrInvalidRange is returned by NewRange for nil, identical or unrelated
	// boundary nodes.
	ErrInvalidRange = errors.New("invalid range boundaries")
	// ErrInvalidState is returned when iterating a range that is not valid.
	ErrInvalidState = errors.New("range is not valid")
)
