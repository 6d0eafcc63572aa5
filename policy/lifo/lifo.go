// Package lifo implements a most-recently-released-first reuse policy. The
// node handed out is the one most likely to still sit in CPU cache.
package lifo

import "github.com/IvanBrykalov/pooledlist/policy"

type lifo struct{}

// New returns the LIFO reuse policy. It is stateless and may be shared.
func New() policy.Reuse { return lifo{} }

// Take always pops the newest retired node.
func (lifo) Take() policy.End { return policy.Newest }

// Retain keeps every released node.
func (lifo) Retain(int) bool { return true }
