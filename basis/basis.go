// Package basis implements the ordered list of bounded scalar parameters a
// search optimizer may vary. Each Handle aliases exactly one float64 field
// owned by a Cell or an OccupiedSite; mutating a Handle mutates that field
// in place.
package basis

import "golang.org/x/exp/rand"

// Handle is a bounded, checkpointable reference to a single float64 field.
//
// A Handle holds a raw pointer into the struct that owns the underlying
// field (a *cell.Cell or a *site.OccupiedSite). The owning struct must
// remain alive and must not be copied by value for as long as any Handle
// derived from it is in use — copying the owner invalidates every Handle
// taken from the old copy, since they keep pointing at the old memory.
// This is the same lifetime discipline the original implementation
// expresses with reference-counted shared cells; Go expresses it with a
// plain pointer and a documented contract instead of a compile-time check.
type Handle struct {
	value    *float64
	min, max float64
	saved    float64
}

// NewHandle returns a Handle bounded to [min, max] that reads and writes
// through value.
func NewHandle(value *float64, min, max float64) Handle {
	return Handle{value: value, min: min, max: max, saved: *value}
}

// Value returns the handle's current value.
func (h Handle) Value() float64 { return *h.value }

// Bounds returns the handle's [min, max] range.
func (h Handle) Bounds() (min, max float64) { return h.min, h.max }

// Save records the handle's current value as the checkpoint Restore will
// return to.
func (h *Handle) Save() { h.saved = *h.value }

// Restore writes the last saved checkpoint back into the underlying field.
func (h *Handle) Restore() { *h.value = h.saved }

// Set clamps v to [min, max], records the prior value as the checkpoint,
// and writes the clamped value through to the underlying field.
func (h *Handle) Set(v float64) {
	h.Save()
	if v < h.min {
		v = h.min
	} else if v > h.max {
		v = h.max
	}
	*h.value = v
}

// Sample draws a value uniformly from [min, max] using rnd.
func (h Handle) Sample(rnd *rand.Rand) float64 {
	return h.min + rnd.Float64()*(h.max-h.min)
}

// Basis is an ordered, fixed-layout list of parameter Handles.
type Basis struct {
	handles []Handle
}

// New returns a Basis over the given handles, in the order given.
func New(handles ...Handle) Basis {
	return Basis{handles: handles}
}

// Len returns the number of handles in the basis.
func (b *Basis) Len() int { return len(b.handles) }

// Sample draws a candidate value for handle i uniformly over its bounds.
func (b *Basis) Sample(i int, rnd *rand.Rand) float64 {
	return b.handles[i].Sample(rnd)
}

// Value returns handle i's current value.
func (b *Basis) Value(i int) float64 {
	return b.handles[i].Value()
}

// Set writes v (clamped) into handle i, checkpointing its prior value.
func (b *Basis) Set(i int, v float64) {
	b.handles[i].Set(v)
}

// Restore writes handle i's last checkpoint back into its field.
func (b *Basis) Restore(i int) {
	b.handles[i].Restore()
}

// Bounds returns handle i's [min, max] range.
func (b *Basis) Bounds(i int) (min, max float64) {
	return b.handles[i].Bounds()
}

// Append adds more handles to the end of the basis, preserving the stable
// layout callers build up (cell degrees of freedom first, then each
// occupied site's in iteration order).
func (b *Basis) Append(handles ...Handle) {
	b.handles = append(b.handles, handles...)
}
