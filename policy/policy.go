// Package policy defines how a list's node pool hands out and retains retired
// nodes. The pool owns the free list; a policy only answers two questions.
package policy

// End names one end of the pool's free list. Released nodes are always pushed
// at the Newest end.
type End uint8

const (
	// Oldest is the end holding the node released longest ago.
	Oldest End = iota
	// Newest is the end holding the most recently released node.
	Newest
)

// Reuse is a node-reuse policy bound to a single pool.
//
// Concurrency: a pool calls its policy from the goroutine that owns the list,
// so implementations need no locking unless shared across lists.
type Reuse interface {
	// Take reports which end of the free list an acquisition pops from.
	Take() End
	// Retain reports whether a released node may join a pool that currently
	// holds cached nodes. Returning false drops the node for the GC.
	Retain(cached int) bool
}
