// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package fix

import (
	"github.com/pkg/errors"

	"github.com/go-kleene/kleene/trit"
)

// Type Net is a network of variables tied together by constraint
// groups.  Within a group no two variables may commit to the same
// candidate value.  A group whose scope covers the whole domain (9 cells
// for 9 digits) is exact: every value must appear exactly once in it,
// which is what licenses the hidden-single rule.
//
// Each variable keeps a PSet of admissible candidates and one ternary
// state per candidate.  A committed variable has its chosen candidate at
// (True, 1) and all others at (False, 1); an open variable with k
// candidates left keeps each open candidate at (Unknown, 1/k) and has
// aggregate confidence 1 - 1/k.
type Net struct {
	dom    int
	ps     []PSet
	sol    []int // committed candidate per variable, -1 if open
	conf   []trit.Conf
	cand   [][]trit.State
	groups [][]int
	exact  []bool
	used   []Mask
	byVar  [][]int // group ids per variable
	filled int
}

// NewNet creates a network of n variables over a domain of dom
// candidate values each.
func NewNet(n, dom int) (*Net, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInvalidInput, "variable count %d", n)
	}
	full, err := FullPSet(dom)
	if err != nil {
		return nil, err
	}
	w := &Net{
		dom:   dom,
		ps:    make([]PSet, n),
		sol:   make([]int, n),
		conf:  make([]trit.Conf, n),
		cand:  make([][]trit.State, n),
		byVar: make([][]int, n),
	}
	c0 := trit.Conf(1) / trit.Conf(dom)
	for i := range w.ps {
		w.ps[i] = full
		w.sol[i] = -1
		w.conf[i] = 1 - 1/trit.Conf(dom)
		w.cand[i] = make([]trit.State, dom)
		for d := range w.cand[i] {
			w.cand[i][d] = trit.Mk(trit.Unknown, c0)
		}
	}
	return w, nil
}

// AddGroup wires the variables of scope into a mutual-exclusion group.
func (w *Net) AddGroup(scope []int) error {
	if len(scope) > w.dom {
		return errors.Wrapf(ErrCapacity, "group of %d over domain %d", len(scope), w.dom)
	}
	for _, v := range scope {
		if v < 0 || v >= len(w.ps) {
			return errors.Wrapf(ErrInvalidInput, "group member %d", v)
		}
	}
	g := len(w.groups)
	w.groups = append(w.groups, append([]int(nil), scope...))
	w.exact = append(w.exact, len(scope) == w.dom)
	w.used = append(w.used, 0)
	for _, v := range scope {
		w.byVar[v] = append(w.byVar[v], g)
	}
	return nil
}

// NVars returns the variable count.
func (w *Net) NVars() int { return len(w.ps) }

// Dom returns the domain width.
func (w *Net) Dom() int { return w.dom }

// Filled returns the number of committed variables.
func (w *Net) Filled() int { return w.filled }

// Value returns the committed candidate of v, or -1 if v is open.
func (w *Net) Value(v int) int { return w.sol[v] }

// Conf returns the aggregate confidence of v.
func (w *Net) Conf(v int) trit.Conf { return w.conf[v] }

// State returns the ternary state of candidate c at variable v.
func (w *Net) State(v, c int) trit.State { return w.cand[v][c] }

// PSetOf returns a copy of v's possibility set.
func (w *Net) PSetOf(v int) PSet { return w.ps[v] }

// Commit assigns candidate c to variable v and eliminates c from every
// peer sharing a group with v, cascading naked singles.  It reports
// false on contradiction, leaving the net in a state only a snapshot
// restore should rescue.
func (w *Net) Commit(v, c int, st *Stats) bool {
	if w.sol[v] >= 0 {
		return w.sol[v] == c
	}
	if !w.ps[v].Has(c) {
		return false
	}
	for _, g := range w.byVar[v] {
		if w.used[g].Has(c) {
			return false
		}
	}
	w.sol[v] = c
	w.ps[v].Narrow(c)
	w.conf[v] = 1
	for d := range w.cand[v] {
		if d == c {
			w.cand[v][d] = trit.Mk(trit.True, 1)
		} else {
			w.cand[v][d] = trit.Mk(trit.False, 1)
		}
	}
	w.filled++
	st.Transitions++
	for _, g := range w.byVar[v] {
		w.used[g].Set(c)
	}
	for _, g := range w.byVar[v] {
		for _, p := range w.groups[g] {
			if p == v {
				continue
			}
			if !w.Eliminate(p, c, st) {
				return false
			}
		}
	}
	return true
}

// Eliminate removes candidate c from variable v.  A variable narrowed to
// one candidate is committed on the spot (the naked-single cascade).  It
// reports false on contradiction.
func (w *Net) Eliminate(v, c int, st *Stats) bool {
	if w.sol[v] >= 0 {
		return w.sol[v] != c
	}
	if !w.ps[v].Has(c) {
		return true
	}
	w.ps[v].Clear(c)
	w.cand[v][c] = trit.Mk(trit.False, 1)
	st.Props++
	if w.ps[v].Empty() {
		return false
	}
	if s := w.ps[v].Single(); s >= 0 {
		return w.Commit(v, s, st)
	}
	k := trit.Conf(w.ps[v].Count())
	w.conf[v] = 1 - 1/k
	w.ps[v].Iterate(func(d int) {
		w.cand[v][d] = trit.Mk(trit.Unknown, 1/k)
	})
	return true
}

// Propagate runs the naked-single and hidden-single rules to a shared
// fixpoint.  Each rule may enable the other, so both repeat until a full
// quiet pass.  The fixpoint does not depend on the order the rules run
// in; only the firing counts do.
func (w *Net) Propagate(st *Stats) Result {
	for {
		progress := false
		for v := range w.ps {
			if w.sol[v] >= 0 {
				continue
			}
			if w.ps[v].Empty() {
				return Unsat
			}
			if s := w.ps[v].Single(); s >= 0 {
				st.Props++
				if !w.Commit(v, s, st) {
					return Unsat
				}
				progress = true
			}
		}
		for g := range w.groups {
			if !w.exact[g] {
				continue
			}
			for c := 0; c < w.dom; c++ {
				if w.used[g].Has(c) {
					continue
				}
				spot, n := -1, 0
				for _, v := range w.groups[g] {
					if w.sol[v] < 0 && w.ps[v].Has(c) {
						spot = v
						n++
					}
				}
				if n == 0 {
					// the value has nowhere left to go in an
					// exact group
					return Unsat
				}
				if n == 1 {
					st.Props++
					if !w.Commit(spot, c, st) {
						return Unsat
					}
					progress = true
				}
			}
		}
		if w.filled == len(w.ps) {
			return Sat
		}
		if !progress {
			return Inconclusive
		}
	}
}

// Choose selects the branching variable by minimum remaining values,
// breaking popcount ties toward the variable whose remaining candidate
// states carry the highest disjunctive confidence.  Candidates are
// returned in ascending value order.
func (w *Net) Choose() (int, []int) {
	best, bestN := -1, w.dom+1
	var bestConf trit.Conf
	for v := range w.ps {
		if w.sol[v] >= 0 {
			continue
		}
		n := w.ps[v].Count()
		if n > bestN {
			continue
		}
		ac := w.aggregate(v)
		if n < bestN || ac > bestConf {
			best, bestN, bestConf = v, n, ac
		}
	}
	if best < 0 {
		return -1, nil
	}
	cands := make([]int, 0, bestN)
	w.ps[best].Iterate(func(c int) {
		cands = append(cands, c)
	})
	return best, cands
}

// aggregate folds the open candidate states of v under OR, giving the
// inclusion-exclusion confidence that one of them holds.
func (w *Net) aggregate(v int) trit.Conf {
	ss := make([]trit.State, 0, w.dom)
	w.ps[v].Iterate(func(c int) {
		ss = append(ss, w.cand[v][c])
	})
	return trit.OrSeq(ss).Conf
}

type netSnap struct {
	ps     []PSet
	sol    []int
	conf   []trit.Conf
	cand   [][]trit.State
	used   []Mask
	filled int
}

// Snapshot deep-copies the mutable bitsets, masks, states and counters.
// Group wiring is immutable and shared.
func (w *Net) Snapshot() Snapshot {
	s := &netSnap{
		ps:     append([]PSet(nil), w.ps...),
		sol:    append([]int(nil), w.sol...),
		conf:   append([]trit.Conf(nil), w.conf...),
		cand:   make([][]trit.State, len(w.cand)),
		used:   append([]Mask(nil), w.used...),
		filled: w.filled,
	}
	for i, cs := range w.cand {
		s.cand[i] = append([]trit.State(nil), cs...)
	}
	return s
}

// Restore rewinds the net to a snapshot taken earlier on this search
// path.
func (w *Net) Restore(snap Snapshot) {
	s := snap.(*netSnap)
	copy(w.ps, s.ps)
	copy(w.sol, s.sol)
	copy(w.conf, s.conf)
	for i, cs := range s.cand {
		copy(w.cand[i], cs)
	}
	copy(w.used, s.used)
	w.filled = s.filled
}
