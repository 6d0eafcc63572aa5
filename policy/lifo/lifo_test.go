package lifo

import (
	"testing"

	"github.com/IvanBrykalov/pooledlist/policy"
)

// LIFO takes the most recently released node.
func TestLIFO_TakeNewest(t *testing.T) {
	t.Parallel()

	p := New()
	if got := p.Take(); got != policy.Newest {
		t.Fatalf("Take: want Newest, got %v", got)
	}
	if !p.Retain(1 << 20) {
		t.Fatalf("Retain: want true")
	}
}
