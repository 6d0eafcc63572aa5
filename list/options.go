package list

import "github.com/IvanBrykalov/pooledlist/policy"

// Options configures a List. Zero values are safe; defaults are applied in
// NewWithOptions:
//   - nil Metrics  => NoopMetrics
//   - nil Policy   => FIFO, unbounded
//   - Prealloc <= 0 => no warm-up, nodes are allocated on first use
type Options struct {
	// Metrics receives Acquire/Release/Drop/Size signals.
	Metrics Metrics

	// Policy decides which retired node is reused next and whether released
	// nodes are kept at all (see policy/fifo, policy/lifo, policy/bounded).
	Policy policy.Reuse

	// Prealloc warms the pool with this many nodes in a single allocation,
	// so the first Prealloc adds never touch the allocator.
	Prealloc int
}
