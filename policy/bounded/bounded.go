// Package bounded caps the number of retired nodes a pool may hold. Nodes
// released beyond the cap are dropped for the GC, which trades a little
// allocation churn after bursts for a bounded idle footprint.
package bounded

import (
	"github.com/IvanBrykalov/pooledlist/policy"
	"github.com/IvanBrykalov/pooledlist/policy/fifo"
)

// bounded wraps another policy and enforces a hard pool size limit.
type bounded struct {
	inner policy.Reuse
	max   int
}

// New wraps inner with a pool size limit of max nodes.
// A nil inner defaults to FIFO; max < 0 is treated as 0 (no pooling at all).
func New(inner policy.Reuse, max int) policy.Reuse {
	if inner == nil {
		inner = fifo.New()
	}
	if max < 0 {
		max = 0
	}
	return bounded{inner: inner, max: max}
}

// Take defers to the wrapped policy.
func (b bounded) Take() policy.End { return b.inner.Take() }

// Retain refuses nodes once the pool is full, then defers to the wrapped policy.
func (b bounded) Retain(cached int) bool {
	if cached >= b.max {
		return false
	}
	return b.inner.Retain(cached)
}
