package list

// Metrics exposes pool-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
//
// Hooks run synchronously on the goroutine owning the list, on every add and
// remove; keep implementations cheap.
type Metrics interface {
	// Acquire is called when a node is handed to the active sequence.
	// reused is false when the node had to be allocated.
	Acquire(reused bool)
	// Release is called when a node is retired into the pool.
	Release()
	// Drop is called when n nodes are discarded instead of pooled.
	Drop(n int)
	// Size reports the active and cached node counts after a mutation.
	Size(active, cached int)
}

// NoopMetrics is a drop-in Metrics implementation that does nothing.
type NoopMetrics struct{}

func (NoopMetrics) Acquire(bool)  {}
func (NoopMetrics) Release()      {}
func (NoopMetrics) Drop(int)      {}
func (NoopMetrics) Size(int, int) {}

// Ensure NoopMetrics implements the Metrics interface at compile time.
var _ Metrics = NoopMetrics{}
