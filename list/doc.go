// Package list provides a generic doubly linked list that recycles its link
// nodes through a per-list pool, and ranges over it.
//
// Design
//
//   - Storage: a List keeps an intrusive head/tail node chain for its values
//     and a second intrusive chain of retired nodes (the pool). Removing a
//     value clears the node and retires it; adding a value reuses a retired
//     node before allocating. After warm-up (Options.Prealloc or Grow) a
//     steady add/remove workload performs no heap allocation.
//
//   - Reuse policy: which retired node is reused next, and whether a released
//     node is kept at all, is pluggable via the policy package. FIFO, unbounded
//     is the default; policy/lifo and policy/bounded are provided.
//
//   - Ranges: Range[T] is a half-open [first, terminal) view over one list,
//     used by the multimap package to delimit value groups inside a single
//     shared list. Ranges snapshot node identity (and a per-node generation),
//     never size.
//
//   - Errors: misuse is reported through explicit errors (ErrEmpty,
//     ErrForeignNode, ErrInvalidRange, ErrInvalidState) wrapped with the
//     operation name; match them with errors.Is.
//
//   - Metrics: Options.Metrics receives Acquire/Release/Drop/Size signals.
//     NoopMetrics is used by default; metrics/prom exports them to Prometheus.
//
// Basic usage
//
//	l := list.New[int]()
//	l.AddLast(10)
//	l.AddLast(99)
//	if _, err := l.AddBefore(l.Find(99), 0); err != nil {
//	    // anchor did not belong to l
//	}
//	for v := range l.All() {
//	    fmt.Println(v) // 10, 0, 99
//	}
//
// Thread-safety & complexity
//
// A List has a single owner and performs no locking. Adds, removals of a
// known node and pool operations are O(1); Find, FindLast, Remove(value) and
// Range.Len/Contains are linear scans.
package list
