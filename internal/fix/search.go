// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package fix

// Interface Space is the mutable state a search drives.  The engine
// itself is domain-agnostic: the 81-cell puzzle net, the clause solver
// and the generic CSP each implement Space with their own propagation
// rules and branching heuristic, while the search skeleton below stays
// shared.
type Space interface {
	// Propagate runs the space's deduction rules to fixpoint.  It
	// returns Sat when every variable is committed and consistent,
	// Unsat on a contradiction, and Inconclusive when the space is
	// still undecided and the search must branch.
	Propagate(st *Stats) Result

	// Choose selects the branching variable and its candidate values
	// in trial order.  It is only called on an undecided space and
	// returns v < 0 if no open variable exists.
	Choose() (v int, cands []int)

	// Commit assigns candidate c to variable v, running any immediate
	// consequences.  It reports false on contradiction.
	Commit(v, c int, st *Stats) bool

	// Snapshot deep-copies the space's mutable state.  Snapshots are
	// owned by the search frame that takes them and never aliased.
	Snapshot() Snapshot

	// Restore rewinds the space to a snapshot.
	Restore(Snapshot)
}

// Search runs propagation-plus-backtracking on sp until it is solved or
// proven unsatisfiable, or until lim stops it.  The search is strictly
// depth-first and sequential: one snapshot per recursion level, created
// before a trial and consumed either by a successful return (forward
// state kept) or a failed one (state restored).
func Search(sp Space, lim Limits, st *Stats) Result {
	return search(sp, lim, st, 0)
}

func search(sp Space, lim Limits, st *Stats, depth int64) Result {
	st.Nodes++
	if lim.MaxNodes > 0 && st.Nodes > lim.MaxNodes {
		return Inconclusive
	}
	if lim.MaxDepth > 0 && depth > lim.MaxDepth {
		return Inconclusive
	}
	switch sp.Propagate(st) {
	case Sat:
		return Sat
	case Unsat:
		return Unsat
	}
	v, cands := sp.Choose()
	if v < 0 {
		return Unsat
	}
	stopped := false
	for _, c := range cands {
		snap := sp.Snapshot()
		if sp.Commit(v, c, st) {
			switch search(sp, lim, st, depth+1) {
			case Sat:
				return Sat
			case Inconclusive:
				stopped = true
			}
		}
		sp.Restore(snap)
		st.Backtracks++
	}
	if stopped {
		// a pruned subtree might have held a model; this is not a
		// proof of unsatisfiability
		return Inconclusive
	}
	return Unsat
}
