package list

import (
	"github.com/IvanBrykalov/pooledlist/log"
	"github.com/IvanBrykalov/pooledlist/policy"
)

// pool is the free list of retired nodes embedded in every List. It is an
// intrusive doubly linked queue threaded through the nodes' own prev/next
// fields, so retiring and reusing a node never allocates.
type pool[T comparable] struct {
	head *Node[T] // oldest retired
	tail *Node[T] // newest retired
	len  int

	policy  policy.Reuse
	metrics Metrics
	capped  bool // policy has refused a node at least once

	// Lifetime counters, reported by List.Stats.
	allocated uint64
	reused    uint64
	dropped   uint64
}

// acquire returns a node holding v, popping a retired node when one is
// available and allocating otherwise. The caller links the node.
func (p *pool[T]) acquire(v T) *Node[T] {
	var n *Node[T]
	if p.policy.Take() == policy.Newest {
		n = p.popBack()
	} else {
		n = p.popFront()
	}

	if n == nil {
		n = &Node[T]{}
		p.allocated++
		p.metrics.Acquire(false)
	} else {
		p.reused++
		p.metrics.Acquire(true)
	}
	n.val = v
	return n
}

// release clears n and retires it. n must already be unlinked from the
// active sequence.
func (p *pool[T]) release(n *Node[T]) {
	var zero T
	n.val = zero
	n.list = nil
	n.prev, n.next = nil, nil
	n.gen++

	if !p.policy.Retain(p.len) {
		if !p.capped {
			p.capped = true
			log.Warn("list: reuse policy refused a node with %d cached; further releases may be dropped", p.len)
		}
		p.dropped++
		p.metrics.Drop(1)
		return
	}
	p.pushBack(n)
	p.metrics.Release()
}

// grow makes sure at least n nodes are pooled, allocating the missing ones as
// a single slab. The policy may cap how many are kept. Returns the number of
// nodes added.
func (p *pool[T]) grow(n int) int {
	need := n - p.len
	if need <= 0 {
		return 0
	}
	k := 0
	for k < need && p.policy.Retain(p.len+k) {
		k++
	}
	if k == 0 {
		return 0
	}

	slab := make([]Node[T], k)
	for i := range slab {
		p.pushBack(&slab[i])
	}
	p.allocated += uint64(k)
	return k
}

// clear drops every pooled node. Returns the number of nodes dropped.
func (p *pool[T]) clear() int {
	n := p.len
	// A stale caller pointer into the pool must not keep the rest of it reachable.
	for cur := p.head; cur != nil; {
		next := cur.next
		cur.prev, cur.next = nil, nil
		cur = next
	}
	p.head, p.tail, p.len = nil, nil, 0
	if n > 0 {
		p.dropped += uint64(n)
		p.metrics.Drop(n)
	}
	return n
}

// pushBack appends n at the Newest end.
func (p *pool[T]) pushBack(n *Node[T]) {
	n.prev = p.tail
	n.next = nil
	if p.tail == nil {
		p.head = n
	} else {
		p.tail.next = n
	}
	p.tail = n
	p.len++
}

// popFront removes and returns the Oldest node, or nil if the pool is empty.
func (p *pool[T]) popFront() *Node[T] {
	n := p.head
	if n == nil {
		return nil
	}
	p.head = n.next
	if p.head == nil {
		p.tail = nil
	} else {
		p.head.prev = nil
	}
	n.next = nil
	p.len--
	return n
}

// popBack removes and returns the Newest node, or nil if the pool is empty.
func (p *pool[T]) popBack() *Node[T] {
	n := p.tail
	if n == nil {
		return nil
	}
	p.tail = n.prev
	if p.tail == nil {
		p.head = nil
	} else {
		p.tail.next = nil
	}
	n.prev = nil
	p.len--
	return n
}
