// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package csp solves finite-domain constraint problems over a uniform
// domain {0..dom-1}.  Constraints are tagged values: AllDifferent
// constraints feed the propagation net directly, while Sum and
// Predicate constraints contribute unit inference, narrowing the last
// open variable of a scope by trial evaluation.
package csp

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-kleene/kleene/inter"
	"github.com/go-kleene/kleene/internal/fix"
)

// Kind tags a constraint.
type Kind int

const (
	AllDifferentKind Kind = iota
	SumKind
	PredicateKind
)

func (k Kind) String() string {
	switch k {
	case AllDifferentKind:
		return "all-different"
	case SumKind:
		return "sum"
	case PredicateKind:
		return "predicate"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// A Constraint couples a tag with the variables it ranges over.  Sum
// carries a target; Predicate carries a test over a full assignment of
// its scope plus a name used in messages.
type Constraint struct {
	Kind   Kind
	Scope  []int
	Target int
	Test   func(vals []int) bool
	Name   string
}

func (c Constraint) String() string {
	var b strings.Builder
	switch c.Kind {
	case AllDifferentKind:
		fmt.Fprintf(&b, "AllDifferent%v", c.Scope)
	case SumKind:
		fmt.Fprintf(&b, "Sum%v = %d", c.Scope, c.Target)
	case PredicateKind:
		name := c.Name
		if name == "" {
			name = "Predicate"
		}
		fmt.Fprintf(&b, "%s%v", name, c.Scope)
	default:
		fmt.Fprintf(&b, "%v%v", c.Kind, c.Scope)
	}
	return b.String()
}

// AllDifferent constrains every pair in scope to distinct values.
func AllDifferent(scope ...int) Constraint {
	return Constraint{Kind: AllDifferentKind, Scope: scope}
}

// Sum constrains the values in scope to add up to target.
func Sum(target int, scope ...int) Constraint {
	return Constraint{Kind: SumKind, Scope: scope, Target: target}
}

// Predicate constrains a scope with an arbitrary test, evaluated on a
// complete assignment of the scope in scope order.  Tests must be pure.
func Predicate(name string, test func(vals []int) bool, scope ...int) Constraint {
	return Constraint{Kind: PredicateKind, Scope: scope, Test: test, Name: name}
}

// NotSatisfiable reports a proven-unsatisfiable problem together with
// the constraints observed in conflict on the last failed search path.
type NotSatisfiable []Constraint

func (e NotSatisfiable) Error() string {
	if len(e) == 0 {
		return "constraints not satisfiable"
	}
	parts := make([]string, len(e))
	for i, c := range e {
		parts[i] = c.String()
	}
	return fmt.Sprintf("constraints not satisfiable: %s", strings.Join(parts, ", "))
}

// Type Problem is a constraint problem implementing the shared search
// Space.  The zero value is not usable; create Problems with New.
type Problem struct {
	net      *fix.Net
	cons     []Constraint // Sum and Predicate only
	st       inter.Stats
	lim      inter.Limits
	bad      bool
	conflict []Constraint
}

// New creates a problem with n variables ranging over {0..dom-1}.
func New(n, dom int) (*Problem, error) {
	net, err := fix.NewNet(n, dom)
	if err != nil {
		return nil, err
	}
	return &Problem{net: net}, nil
}

// Add installs a constraint.  AllDifferent scopes must fit the domain;
// Sum and Predicate must name at least one variable, and Predicate must
// carry a test.
func (p *Problem) Add(c Constraint) error {
	switch c.Kind {
	case AllDifferentKind:
		return p.net.AddGroup(c.Scope)
	case SumKind, PredicateKind:
		if len(c.Scope) == 0 {
			return errors.Wrapf(inter.ErrInvalidInput, "%v: empty scope", c)
		}
		for _, v := range c.Scope {
			if v < 0 || v >= p.net.NVars() {
				return errors.Wrapf(inter.ErrInvalidInput, "%v: variable %d out of range", c, v)
			}
		}
		if c.Kind == PredicateKind && c.Test == nil {
			return errors.Wrapf(inter.ErrInvalidInput, "%v: nil test", c)
		}
		p.cons = append(p.cons, c)
		return nil
	}
	return errors.Wrapf(inter.ErrInvalidInput, "unknown constraint kind %d", int(c.Kind))
}

// Assign fixes variable v to value c before solving, running the
// immediate all-different consequences.
func (p *Problem) Assign(v, c int) error {
	if v < 0 || v >= p.net.NVars() || c < 0 || c >= p.net.Dom() {
		return errors.Wrapf(inter.ErrInvalidInput, "assign %d=%d", v, c)
	}
	if !p.net.Commit(v, c, &p.st) {
		p.bad = true
	}
	return nil
}

// SetLimits bounds the next Solve.
func (p *Problem) SetLimits(lim inter.Limits) {
	p.lim = lim
}

// Value returns the value of v after a successful Solve, or -1.
func (p *Problem) Value(v int) int {
	return p.net.Value(v)
}

// Values returns the full assignment after a successful Solve.
func (p *Problem) Values() []int {
	out := make([]int, p.net.NVars())
	for v := range out {
		out[v] = p.net.Value(v)
	}
	return out
}

// Stats returns the work counters accumulated so far.
func (p *Problem) Stats() inter.Stats {
	return p.st
}

// Solve searches for a satisfying assignment.  It returns 1 on success,
// -1 when the problem is proven unsatisfiable and 0 when a limit
// stopped the search first.
func (p *Problem) Solve() int {
	p.conflict = p.conflict[:0]
	if p.bad {
		return -1
	}
	return int(fix.Search(p, p.lim, &p.st))
}

// Conflict returns a NotSatisfiable error naming the constraints seen in
// conflict during the last Solve, or nil if none were recorded.  It is
// only meaningful after Solve returned -1.
func (p *Problem) Conflict() error {
	if len(p.conflict) == 0 {
		return nil
	}
	return NotSatisfiable(append([]Constraint(nil), p.conflict...))
}

func (p *Problem) noteConflict(c *Constraint) {
	s := c.String()
	for _, seen := range p.conflict {
		if seen.String() == s {
			return
		}
	}
	p.conflict = append(p.conflict, *c)
}

// Propagate implements fix.Space: the all-different net runs to its own
// fixpoint, then Sum and Predicate unit inference narrows domains, and
// the two alternate until neither moves.
func (p *Problem) Propagate(st *inter.Stats) inter.Result {
	for {
		switch p.net.Propagate(st) {
		case fix.Unsat:
			return fix.Unsat
		case fix.Sat:
			if p.check() {
				return fix.Sat
			}
			return fix.Unsat
		}
		progress, ok := p.infer(st)
		if !ok {
			return fix.Unsat
		}
		if !progress {
			return fix.Inconclusive
		}
	}
}

// infer runs unit inference over the non-structural constraints: when a
// scope has exactly one open variable, each of its candidates is tested
// against the constraint and the failures are eliminated.
func (p *Problem) infer(st *inter.Stats) (progress, ok bool) {
	vals := make([]int, 0, 8)
	for i := range p.cons {
		c := &p.cons[i]
		open := -1
		vals = vals[:0]
		for _, v := range c.Scope {
			vals = append(vals, p.net.Value(v))
			if p.net.Value(v) < 0 {
				if open >= 0 {
					open = -2
					break
				}
				open = v
			}
		}
		if open == -2 {
			continue
		}
		if open == -1 {
			if !p.holds(c, vals) {
				p.noteConflict(c)
				return false, false
			}
			continue
		}
		slot := 0
		for j, v := range c.Scope {
			if v == open {
				slot = j
				break
			}
		}
		cands := make([]int, 0, p.net.Dom())
		p.net.PSetOf(open).Iterate(func(c int) { cands = append(cands, c) })
		for _, cand := range cands {
			vals[slot] = cand
			if p.holds(c, vals) {
				continue
			}
			progress = true
			if !p.net.Eliminate(open, cand, st) {
				p.noteConflict(c)
				return false, false
			}
			if p.net.Value(open) >= 0 {
				// eliminate cascaded into a commit
				break
			}
		}
	}
	return progress, true
}

// holds evaluates c on a complete assignment of its scope.
func (p *Problem) holds(c *Constraint, vals []int) bool {
	switch c.Kind {
	case SumKind:
		sum := 0
		for _, v := range vals {
			sum += v
		}
		return sum == c.Target
	case PredicateKind:
		return c.Test(vals)
	}
	return true
}

// check verifies every non-structural constraint on a complete
// assignment.  The all-different groups are consistent by construction
// of the net.
func (p *Problem) check() bool {
	vals := make([]int, 0, 8)
	for i := range p.cons {
		c := &p.cons[i]
		vals = vals[:0]
		for _, v := range c.Scope {
			vals = append(vals, p.net.Value(v))
		}
		if !p.holds(c, vals) {
			p.noteConflict(c)
			return false
		}
	}
	return true
}

// Choose implements fix.Space, delegating to the net's
// minimum-remaining-values rule.
func (p *Problem) Choose() (int, []int) {
	return p.net.Choose()
}

// Commit implements fix.Space.
func (p *Problem) Commit(v, c int, st *inter.Stats) bool {
	return p.net.Commit(v, c, st)
}

// Snapshot implements fix.Space.  The constraint list is immutable
// during search, so only the net state is copied.
func (p *Problem) Snapshot() fix.Snapshot {
	return p.net.Snapshot()
}

// Restore implements fix.Space.
func (p *Problem) Restore(snap fix.Snapshot) {
	p.net.Restore(snap)
}
