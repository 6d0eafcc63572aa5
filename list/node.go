package list

// Node is an element of a List. A node is owned either by a list's active
// sequence or by that list's pool; callers only ever hold active nodes, or
// stale pointers to nodes that have since been released.
type Node[T comparable] struct {
	val T

	// Links within the active sequence. While the node is pooled they are
	// reused as free-list links and are not visible through Next/Prev.
	prev *Node[T]
	next *Node[T]

	// Owning list while active; nil while pooled.
	list *List[T]

	// Incremented on every release so that ranges can tell a live boundary
	// from a recycled one.
	gen uint32
}

// Value returns the value held by the node.
func (n *Node[T]) Value() T { return n.val }

// Next returns the following node in the list, or nil at the end of the list
// or if n is no longer active.
func (n *Node[T]) Next() *Node[T] {
	if n.list == nil {
		return nil
	}
	return n.next
}

// Prev returns the preceding node in the list, or nil at the start of the
// list or if n is no longer active.
func (n *Node[T]) Prev() *Node[T] {
	if n.list == nil {
		return nil
	}
	return n.prev
}
