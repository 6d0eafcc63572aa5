// Package fifo implements the default reuse policy: the node released longest
// ago is handed out first, and the pool grows without bound.
package fifo

import "github.com/IvanBrykalov/pooledlist/policy"

type fifo struct{}

// New returns the FIFO reuse policy. It is stateless and may be shared.
func New() policy.Reuse { return fifo{} }

// Take always pops the oldest retired node.
func (fifo) Take() policy.End { return policy.Oldest }

// Retain keeps every released node.
func (fifo) Retain(int) bool { return true }
