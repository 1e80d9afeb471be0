// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package fix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-kleene/kleene/trit"
)

// latin4 builds a 4x4 latin-square net: 16 variables, domain 4, rows
// and columns as exact groups.
func latin4(t *testing.T) *Net {
	t.Helper()
	w, err := NewNet(16, 4)
	require.NoError(t, err)
	for r := 0; r < 4; r++ {
		row := make([]int, 4)
		col := make([]int, 4)
		for i := 0; i < 4; i++ {
			row[i] = r*4 + i
			col[i] = i*4 + r
		}
		require.NoError(t, w.AddGroup(row))
		require.NoError(t, w.AddGroup(col))
	}
	return w
}

func TestCommitEliminatesPeers(t *testing.T) {
	w := latin4(t)
	var st Stats
	require.True(t, w.Commit(0, 2, &st))
	assert.Equal(t, 2, w.Value(0))
	assert.Equal(t, trit.Conf(1), w.Conf(0))
	assert.Equal(t, trit.Mk(trit.True, 1), w.State(0, 2))
	assert.Equal(t, trit.Mk(trit.False, 1), w.State(0, 0))
	// row and column peers lost candidate 2
	for _, p := range []int{1, 2, 3, 4, 8, 12} {
		assert.False(t, w.PSetOf(p).Has(2), "peer %d", p)
		assert.Equal(t, 3, w.PSetOf(p).Count())
		assert.Equal(t, 1-trit.Conf(1)/3, w.Conf(p))
	}
	assert.True(t, st.Transitions >= 1)
	assert.True(t, st.Props >= 6)
}

func TestCommitRejectsUsedValue(t *testing.T) {
	w := latin4(t)
	var st Stats
	require.True(t, w.Commit(0, 2, &st))
	assert.False(t, w.Commit(1, 2, &st))
	// recommitting the same value is a no-op, not a contradiction
	assert.True(t, w.Commit(0, 2, &st))
	assert.False(t, w.Commit(0, 3, &st))
}

func TestMonotonicShrink(t *testing.T) {
	w := latin4(t)
	var st Stats
	before := make([]int, 16)
	for v := range before {
		before[v] = w.PSetOf(v).Count()
	}
	require.True(t, w.Commit(5, 1, &st))
	require.NotEqual(t, Unsat, w.Propagate(&st))
	for v := range before {
		assert.LessOrEqual(t, w.PSetOf(v).Count(), before[v], "var %d widened", v)
	}
}

func TestPropagateIdempotent(t *testing.T) {
	w := latin4(t)
	var st Stats
	require.True(t, w.Commit(0, 0, &st))
	require.True(t, w.Commit(5, 1, &st))
	r := w.Propagate(&st)
	require.NotEqual(t, Unsat, r)
	var again Stats
	assert.Equal(t, r, w.Propagate(&again))
	assert.Equal(t, Stats{}, again, "second fixpoint pass did work")
}

// hiddenFirst replays the hidden-single rule through the public surface
// before handing over to Propagate, to pin down that rule order does not
// change the fixpoint.
func hiddenFirst(t *testing.T, w *Net, groups [][]int, st *Stats) {
	t.Helper()
	for _, g := range groups {
		for c := 0; c < w.Dom(); c++ {
			spot, n := -1, 0
			for _, v := range g {
				if w.Value(v) < 0 && w.PSetOf(v).Has(c) {
					spot = v
					n++
				}
			}
			if n == 1 {
				require.True(t, w.Commit(spot, c, st))
			}
		}
	}
}

func TestFixpointOrderIndependence(t *testing.T) {
	groups := make([][]int, 0, 8)
	for r := 0; r < 4; r++ {
		row := make([]int, 4)
		col := make([]int, 4)
		for i := 0; i < 4; i++ {
			row[i] = r*4 + i
			col[i] = i*4 + r
		}
		groups = append(groups, row, col)
	}
	clues := [][2]int{{0, 0}, {1, 1}, {4, 1}, {6, 3}, {11, 1}}

	a := latin4(t)
	b := latin4(t)
	var sa, sb Stats
	for _, cl := range clues {
		require.True(t, a.Commit(cl[0], cl[1], &sa))
		require.True(t, b.Commit(cl[0], cl[1], &sb))
	}
	hiddenFirst(t, b, groups, &sb)
	ra := a.Propagate(&sa)
	rb := b.Propagate(&sb)
	assert.Equal(t, ra, rb)
	for v := 0; v < 16; v++ {
		assert.Equal(t, a.Value(v), b.Value(v), "var %d", v)
		assert.Equal(t, a.PSetOf(v), b.PSetOf(v), "var %d", v)
	}
}

func TestContradictionDetected(t *testing.T) {
	w, err := NewNet(4, 4)
	require.NoError(t, err)
	require.NoError(t, w.AddGroup([]int{0, 1, 2, 3}))
	var st Stats
	require.True(t, w.Commit(0, 0, &st))
	require.True(t, w.Commit(1, 1, &st))
	require.True(t, w.Commit(2, 2, &st))
	// var 3 is naked-single forced to 3; eliminate it first
	require.False(t, w.Eliminate(3, 3, &st))
}

func TestSnapshotRestore(t *testing.T) {
	w := latin4(t)
	var st Stats
	require.True(t, w.Commit(0, 0, &st))
	snap := w.Snapshot()
	require.True(t, w.Commit(5, 2, &st))
	require.NotEqual(t, Unsat, w.Propagate(&st))
	w.Restore(snap)
	assert.Equal(t, -1, w.Value(5))
	assert.Equal(t, 3, w.PSetOf(5).Count())
	assert.Equal(t, 1, w.Filled())
	// restoring widened sets back to the snapshot is the only allowed
	// widening; a fresh propagate finds nothing new to do
	var again Stats
	assert.Equal(t, Inconclusive, w.Propagate(&again))
}

func TestChooseMRV(t *testing.T) {
	w := latin4(t)
	var st Stats
	require.True(t, w.Commit(0, 0, &st))
	require.True(t, w.Commit(1, 1, &st))
	v, cands := w.Choose()
	require.GreaterOrEqual(t, v, 0)
	assert.Equal(t, w.PSetOf(v).Count(), len(cands))
	n := w.PSetOf(v).Count()
	for u := 0; u < w.NVars(); u++ {
		if w.Value(u) < 0 {
			assert.GreaterOrEqual(t, w.PSetOf(u).Count(), n)
		}
	}
	// ascending candidate order
	for i := 1; i < len(cands); i++ {
		assert.Less(t, cands[i-1], cands[i])
	}
}

func TestSearchSolvesLatinSquare(t *testing.T) {
	w := latin4(t)
	var st Stats
	require.True(t, w.Commit(0, 0, &st))
	r := Search(w, Limits{}, &st)
	require.Equal(t, Sat, r)
	// every row and column is a permutation
	for r0 := 0; r0 < 4; r0++ {
		var row, col Mask
		for i := 0; i < 4; i++ {
			row.Set(w.Value(r0*4 + i))
			col.Set(w.Value(i*4 + r0))
		}
		assert.Equal(t, 4, row.Count())
		assert.Equal(t, 4, col.Count())
	}
}

func TestSearchLimitsInconclusive(t *testing.T) {
	w := latin4(t)
	var st Stats
	r := Search(w, Limits{MaxNodes: 1}, &st)
	assert.Equal(t, Inconclusive, r)
	w2 := latin4(t)
	var st2 Stats
	r = Search(w2, Limits{MaxDepth: 1}, &st2)
	assert.Equal(t, Inconclusive, r)
}
