// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package fix implements the propagation-to-fixpoint and backtracking
// search machinery shared by the kleene solvers.
//
// Every variable carries a PSet, the bitset of candidate values still
// admissible for it.  Propagation only ever shrinks PSets; the search
// engine widens them exclusively by restoring a snapshot taken before a
// failed trial.  A PSet with a single bit is a solved variable, one with
// no bits is a contradiction.
package fix

import (
	"math/bits"

	"github.com/pkg/errors"
)

// Type PSet is the possibility set of one variable: a fixed-width bitset
// indexed by candidate value.  The width is set at construction and
// bounds-checked thereafter.
type PSet struct {
	w     uint64
	width int
}

// FullPSet returns a PSet of the given width with every candidate
// admissible.  Widths above 64 candidates per variable are not
// supported by this engine.
func FullPSet(width int) (PSet, error) {
	if width < 1 || width > 64 {
		return PSet{}, errors.Wrapf(ErrCapacity, "domain width %d", width)
	}
	if width == 64 {
		return PSet{w: ^uint64(0), width: width}, nil
	}
	return PSet{w: 1<<uint(width) - 1, width: width}, nil
}

// Has reports whether candidate v is still admissible.
func (p PSet) Has(v int) bool {
	return v >= 0 && v < p.width && p.w&(1<<uint(v)) != 0
}

// Clear removes candidate v.
func (p *PSet) Clear(v int) {
	if v >= 0 && v < p.width {
		p.w &^= 1 << uint(v)
	}
}

// Narrow restricts p to the single candidate v.
func (p *PSet) Narrow(v int) {
	p.w = 1 << uint(v)
}

// Count returns the number of admissible candidates.
func (p PSet) Count() int {
	return bits.OnesCount64(p.w)
}

// Empty reports a contradiction: no candidate is admissible.
func (p PSet) Empty() bool {
	return p.w == 0
}

// Single returns the sole admissible candidate, or -1 if the set does
// not have exactly one bit.
func (p PSet) Single() int {
	if bits.OnesCount64(p.w) != 1 {
		return -1
	}
	return bits.TrailingZeros64(p.w)
}

// Iterate calls f for each admissible candidate in ascending order.
func (p PSet) Iterate(f func(v int)) {
	w := p.w
	for w != 0 {
		f(bits.TrailingZeros64(w))
		w &= w - 1
	}
}

// Type Mask records which candidate values are already committed within
// one constraint group.
type Mask uint64

// Has reports whether value v is committed in the group.
func (m Mask) Has(v int) bool {
	return m&(1<<uint(v)) != 0
}

// Set marks value v committed in the group.
func (m *Mask) Set(v int) {
	*m |= 1 << uint(v)
}

// Count returns the number of committed values.
func (m Mask) Count() int {
	return bits.OnesCount64(uint64(m))
}
