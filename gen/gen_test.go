// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-kleene/kleene/inter"
	"github.com/go-kleene/kleene/sat"
	"github.com/go-kleene/kleene/sudoku"
	"github.com/go-kleene/kleene/trit"
)

func TestBinCycle(t *testing.T) {
	s := sat.New()
	BinCycle(s, 8)
	require.NoError(t, s.Err())
	require.Equal(t, 1, s.Solve())
	// every model of a binary implication cycle assigns all variables
	// the same value
	ref := s.Value(trit.Var(1).Pos())
	for i := 2; i <= 8; i++ {
		assert.Equal(t, ref, s.Value(trit.Var(i).Pos()))
	}
}

func TestRand3Cnf(t *testing.T) {
	Seed(44)
	s := sat.New()
	Rand3Cnf(s, 20, 30)
	require.NoError(t, s.Err())
	assert.Equal(t, trit.Var(20), s.MaxVar())
	// at this density the instance should be decided, not abandoned
	assert.NotEqual(t, 0, s.Solve())
}

func TestPhp(t *testing.T) {
	s := sat.New()
	Php(s, 3, 3)
	require.Equal(t, 1, s.Solve())

	s = sat.New()
	Php(s, 4, 3)
	require.Equal(t, -1, s.Solve())
}

func TestQueens(t *testing.T) {
	p, err := Queens(6)
	require.NoError(t, err)
	require.Equal(t, 1, p.Solve())
}

func TestSudokuBoards(t *testing.T) {
	for _, board := range []string{EasySudoku(), HardSudoku(), SolvedSudoku()} {
		sv, err := sudoku.Parse(board)
		require.NoError(t, err)
		require.Equal(t, inter.Sat, sv.Solve())
		assert.True(t, sv.Valid())
	}
}
