// Package arena implements the process-wide value store the interpreter
// addresses variables through, mirroring original_source's use of
// `generational_arena::Arena<RuntimeValue>` (see src/interpreter.rs) without
// pulling in a Rust-specific dependency: Go's slice-backed arena is the
// idiomatic analogue here, since glox never frees a slot mid-run (see
// DESIGN.md for why no third-party arena/object-pool library fits).
package arena

import "fmt"

// Index is a stable handle into an Arena. Multiple Environments may hold
// the same Index, which is exactly how assignment to a closed-over
// variable becomes visible to every closure that captured it.
type Index int

// Arena is an append-only store of T, addressed by Index. Slots are never
// reclaimed within a single interpretation, matching the spec's bounded-
// lifetime, no-GC-required invariant.
type Arena[T any] struct {
	slots []T
}

// New returns an empty Arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert appends value and returns the Index addressing it.
func (a *Arena[T]) Insert(value T) Index {
	a.slots = append(a.slots, value)
	return Index(len(a.slots) - 1)
}

// Get fetches the value at idx. A false second return means idx was never
// allocated by this Arena -- in a correctly functioning interpreter this
// should never happen, and callers treat it as an internal error.
func (a *Arena[T]) Get(idx Index) (T, bool) {
	if int(idx) < 0 || int(idx) >= len(a.slots) {
		var zero T
		return zero, false
	}
	return a.slots[idx], true
}

// Set overwrites the slot at idx, the mechanism by which an assignment to
// one environment's binding becomes visible through every environment
// sharing that Index.
func (a *Arena[T]) Set(idx Index, value T) error {
	if int(idx) < 0 || int(idx) >= len(a.slots) {
		return fmt.Errorf("arena: index %d out of range (len=%d)", idx, len(a.slots))
	}
	a.slots[idx] = value
	return nil
}
