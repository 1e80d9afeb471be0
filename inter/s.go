// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package inter holds the small interfaces shared by the kleene solvers
// and their loaders.
package inter

import "github.com/go-kleene/kleene/trit"

// Interface Solvable encapsulates a decision procedure which may run for
// a long time.
//
// Solve returns
//
//	1  if the problem is SAT (or the puzzle is solved)
//	0  if the search was abandoned before a proof either way
//	-1 if the problem is UNSAT
//
// These result codes are used throughout kleene.  0 is only returned
// when a caller-imposed node or depth bound was hit; it must never be
// conflated with -1, which is a proof of unsatisfiability.
type Solvable interface {
	Solve() int
}

// Adder encapsulates something to which clauses can be added by
// sequences of trit.LitNull-terminated literals.
type Adder interface {
	// Add adds a literal to the current clause.  If m is
	// trit.LitNull, it signals end of clause.
	Add(m trit.Lit)
}

// Interface MaxVar is something which records the maximum variable from
// a stream of inputs and can return the maximum of all such variables.
type MaxVar interface {
	MaxVar() trit.Var
}

// Liter produces fresh variables and returns the corresponding positive
// literal.
type Liter interface {
	Lit() trit.Lit
}

// Model encapsulates something from which a model can be extracted.
type Model interface {
	Value(m trit.Lit) bool
}

// Interface S encapsulates a complete clause-based solver: problem
// construction plus solving plus model extraction.  Unlike richer
// incremental interfaces, S is synchronous and single-threaded; Solve
// runs to completion on the calling goroutine.
type S interface {
	MaxVar
	Liter
	Adder
	Solvable
	Model
}
