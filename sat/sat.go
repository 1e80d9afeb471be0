// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package sat is the clause-based specialization of the shared engine:
// groups are disjunctive clauses, propagation is literal unit
// propagation, and branching prefers the variable whose polarity the
// formula is most certain about.  It follows the DPLL scheme; there is
// no clause learning.
package sat

import (
	"github.com/pkg/errors"

	"github.com/go-kleene/kleene/inter"
	"github.com/go-kleene/kleene/internal/fix"
	"github.com/go-kleene/kleene/trit"
)

// Default capacity limits.  These bound problem loading, not search.
const (
	DefVarCap    = 1 << 20
	DefClauseCap = 1 << 22
)

type clause struct {
	ms  []trit.Lit
	sat bool
}

// Type S is a DPLL solver over ternary variable states.  It implements
// inter.S.
type S struct {
	vars    []trit.State // indexed by variable, slot 0 unused
	phase   []bool       // preferred polarity per variable
	clauses []clause
	cur     []trit.Lit
	max     trit.Var
	free    int // open variable count
	st      inter.Stats
	lim     inter.Limits
	varCap  int
	clsCap  int
	err     error
}

// New creates a solver with default capacity limits.
func New() *S {
	return NewCap(DefVarCap, DefClauseCap)
}

// NewCap creates a solver rejecting problems with more than varCap
// variables or clsCap clauses.  Exceeding a cap is a CapacityExceeded
// load error, never a silent truncation.
func NewCap(varCap, clsCap int) *S {
	return &S{
		vars:   make([]trit.State, 1, 128),
		phase:  make([]bool, 1, 128),
		varCap: varCap,
		clsCap: clsCap,
	}
}

// Add implements inter.Adder: literals accumulate into the current
// clause and trit.LitNull terminates it.  Loading problems after a
// failed Add is a no-op; check Err before solving.
func (s *S) Add(m trit.Lit) {
	if s.err != nil {
		return
	}
	if m == trit.LitNull {
		s.err = s.addClause(s.cur)
		s.cur = s.cur[:0]
		return
	}
	s.cur = append(s.cur, m)
}

// AddClause adds one clause.  A trit.LitNull among ms is an
// InvalidInput error; callers using the signed-integer convention
// should build literals with trit.Dimacs2Lit.
func (s *S) AddClause(ms ...trit.Lit) error {
	for _, m := range ms {
		if m == trit.LitNull {
			return errors.Wrap(inter.ErrInvalidInput, "zero literal in clause")
		}
	}
	if err := s.addClause(ms); err != nil {
		s.err = err
		return err
	}
	return nil
}

func (s *S) addClause(ms []trit.Lit) error {
	if len(s.clauses) >= s.clsCap {
		return errors.Wrapf(inter.ErrCapacity, "%d clauses", s.clsCap)
	}
	for _, m := range ms {
		if err := s.ensure(m.Var()); err != nil {
			return err
		}
	}
	s.clauses = append(s.clauses, clause{ms: append([]trit.Lit(nil), ms...)})
	return nil
}

func (s *S) ensure(v trit.Var) error {
	if int(v) > s.varCap {
		return errors.Wrapf(inter.ErrCapacity, "variable %d over cap %d", v, s.varCap)
	}
	for trit.Var(len(s.vars)) <= v {
		s.vars = append(s.vars, trit.Mk(trit.Unknown, 0.5))
		s.phase = append(s.phase, true)
	}
	if v > s.max {
		s.max = v
	}
	return nil
}

// Lit returns the positive literal of a fresh variable.
func (s *S) Lit() trit.Lit {
	m := (s.max + 1).Pos()
	if err := s.ensure(m.Var()); err != nil {
		s.err = err
	}
	return m
}

// MaxVar returns the maximum variable added.
func (s *S) MaxVar() trit.Var {
	return s.max
}

// Err returns the sticky load error, if any: InvalidInput or
// CapacityExceeded.
func (s *S) Err() error {
	return s.err
}

// SetLimits bounds the next Solve.  Hitting a limit makes Solve return
// 0, never -1.
func (s *S) SetLimits(lim inter.Limits) {
	s.lim = lim
}

// Solve runs unit propagation plus backtracking search.
//
// Solve returns 1 if the formula is satisfiable, -1 if it is proven
// unsatisfiable, and 0 if a load error is pending or a caller-imposed
// limit stopped the search.
func (s *S) Solve() int {
	if s.err != nil {
		return 0
	}
	s.init()
	r := fix.Search(s, s.lim, &s.st)
	if r == fix.Sat {
		s.finalize()
	}
	return int(r)
}

// init estimates per-variable polarity confidence from occurrence
// counts: a variable appearing mostly positively is probably true, and
// the skew is how certain the formula is about it.
func (s *S) init() {
	n := int(s.max)
	pos := make([]int, n+1)
	neg := make([]int, n+1)
	for i := range s.clauses {
		for _, m := range s.clauses[i].ms {
			if m.IsPos() {
				pos[m.Var()]++
			} else {
				neg[m.Var()]++
			}
		}
	}
	s.free = 0
	for v := 1; v <= n; v++ {
		if s.vars[v].Val.Known() {
			continue
		}
		s.free++
		p, q := pos[v], neg[v]
		s.phase[v] = p >= q
		if p+q > 0 {
			hi := p
			if q > hi {
				hi = q
			}
			s.vars[v] = trit.Mk(trit.Unknown, trit.Conf(hi)/trit.Conf(p+q))
		}
	}
}

// finalize extends a model in which some variables stayed open (every
// clause already satisfied) to a total assignment.
func (s *S) finalize() {
	for v := 1; v <= int(s.max); v++ {
		if !s.vars[v].Val.Known() {
			s.assign(trit.Var(v), s.phase[v])
		}
	}
}

func (s *S) assign(v trit.Var, val bool) {
	t := trit.False
	if val {
		t = trit.True
	}
	s.vars[v] = trit.Mk(t, 1)
	s.free--
}

// Value reports the polarity of m in the model found by the last
// successful Solve.
func (s *S) Value(m trit.Lit) bool {
	v := s.vars[m.Var()].Val
	if m.IsPos() {
		return v == trit.True
	}
	return v == trit.False
}

// Stats returns the work counters accumulated by Solve.
func (s *S) Stats() inter.Stats {
	return s.st
}

// litVal is the ternary value of literal m under the current
// assignment.
func (s *S) litVal(m trit.Lit) trit.Val {
	v := s.vars[m.Var()].Val
	if m.IsPos() {
		return v
	}
	return v.Not()
}

// Propagate implements fix.Space with literal unit propagation: a
// clause whose literals are all false but one unknown forces that
// literal true.
func (s *S) Propagate(st *inter.Stats) inter.Result {
	for {
		progress := false
		for i := range s.clauses {
			c := &s.clauses[i]
			if c.sat {
				continue
			}
			var unit trit.Lit
			unknowns := 0
			for _, m := range c.ms {
				switch s.litVal(m) {
				case trit.True:
					c.sat = true
				case trit.Unknown:
					unit = m
					unknowns++
				}
				if c.sat {
					break
				}
			}
			if c.sat {
				continue
			}
			if unknowns == 0 {
				return fix.Unsat
			}
			if unknowns == 1 {
				s.assign(unit.Var(), unit.IsPos())
				c.sat = true
				st.Props++
				st.Transitions++
				progress = true
			}
		}
		if !progress {
			break
		}
	}
	for i := range s.clauses {
		if !s.clauses[i].sat {
			return fix.Inconclusive
		}
	}
	return fix.Sat
}

// Choose implements fix.Space by branching on the open variable whose
// polarity confidence is highest (lowest uncertainty), trying the
// preferred polarity first.  This is a different heuristic than the
// minimum-remaining-values rule the puzzle net uses; the search
// skeleton does not care.
func (s *S) Choose() (int, []int) {
	best := -1
	var bestConf trit.Conf = -1
	for v := 1; v <= int(s.max); v++ {
		if s.vars[v].Val.Known() {
			continue
		}
		if c := s.vars[v].Conf; c > bestConf {
			best, bestConf = v, c
		}
	}
	if best < 0 {
		return -1, nil
	}
	return best, []int{0, 1}
}

// Commit implements fix.Space: candidate 0 is the preferred polarity of
// v, candidate 1 the opposite.
func (s *S) Commit(v, c int, st *inter.Stats) bool {
	val := s.phase[v]
	if c == 1 {
		val = !val
	}
	s.assign(trit.Var(v), val)
	st.Transitions++
	return true
}

type satSnap struct {
	vars []trit.State
	sat  []bool
	free int
}

// Snapshot implements fix.Space by deep-copying the assignment and the
// clause-satisfied flags.
func (s *S) Snapshot() fix.Snapshot {
	sn := &satSnap{
		vars: append([]trit.State(nil), s.vars...),
		sat:  make([]bool, len(s.clauses)),
		free: s.free,
	}
	for i := range s.clauses {
		sn.sat[i] = s.clauses[i].sat
	}
	return sn
}

// Restore implements fix.Space.
func (s *S) Restore(snap fix.Snapshot) {
	sn := snap.(*satSnap)
	copy(s.vars, sn.vars)
	for i := range s.clauses {
		s.clauses[i].sat = sn.sat[i]
	}
	s.free = sn.free
}
