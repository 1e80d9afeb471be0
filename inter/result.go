// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package inter

import "github.com/pkg/errors"

// Type Result is the outcome of a solve or of one propagation pass.
// The numeric values follow the Solvable convention.
type Result int8

const (
	// Unsat is a proof that no assignment satisfies the problem.
	Unsat Result = -1
	// Inconclusive means a caller-imposed bound stopped the search
	// before a proof either way.  It must never be conflated with
	// Unsat.
	Inconclusive Result = 0
	// Sat means a full, constraint-satisfying assignment was found.
	Sat Result = 1
)

func (r Result) String() string {
	switch r {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	default:
		return "inconclusive"
	}
}

// Sentinel errors reported by loaders and constructors.  Contradictions
// found during propagation are not errors; they surface as an Unsat
// Result.
var (
	// ErrInvalidInput flags a clue, literal or domain value outside
	// the valid range, detected at load time before any propagation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrCapacity flags a problem exceeding a configured size limit;
	// a configuration problem, distinct from unsatisfiability.
	ErrCapacity = errors.New("capacity exceeded")
)

// Type Stats counts the work done by one solve invocation.  A Stats
// value is owned by the solver instance that produced it and returned
// to the caller; nothing about it is process-global.
type Stats struct {
	// Nodes is the number of search nodes entered.
	Nodes int64
	// Backtracks counts failed trials whose snapshot was restored.
	Backtracks int64
	// Props counts propagation rule firings (naked singles, hidden
	// singles, unit clauses, constraint inferences).
	Props int64
	// Transitions counts Unknown -> True/False state transitions.
	Transitions int64
}

// Accum adds o into st.
func (st *Stats) Accum(o Stats) {
	st.Nodes += o.Nodes
	st.Backtracks += o.Backtracks
	st.Props += o.Props
	st.Transitions += o.Transitions
}

// Type Limits bounds a search.  Zero fields mean unbounded.  Exceeding
// a limit makes the search return Inconclusive, never Unsat.
type Limits struct {
	MaxNodes int64
	MaxDepth int64
}
