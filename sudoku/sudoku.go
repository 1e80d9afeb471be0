// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package sudoku solves 81-cell, 9-digit puzzles with the shared
// propagation and backtracking engine.  Each cell holds a possibility
// set over the nine digits; rows, columns and boxes are exact
// constraint groups.  Well-constrained puzzles solve by propagation
// alone; the rest fall back to minimum-remaining-values search.
package sudoku

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/go-kleene/kleene/inter"
	"github.com/go-kleene/kleene/internal/fix"
)

// Type Solver holds one puzzle instance.  A Solver is single use: Solve
// mutates it toward a solution.
type Solver struct {
	net *fix.Net
	st  inter.Stats
	lim inter.Limits
	bad bool // contradiction while loading givens
}

// New returns a solver with an empty grid.
func New() *Solver {
	net, err := fix.NewNet(81, 9)
	if err != nil {
		panic(err) // fixed geometry, cannot fail
	}
	for i := 0; i < 9; i++ {
		row := make([]int, 9)
		col := make([]int, 9)
		box := make([]int, 9)
		for j := 0; j < 9; j++ {
			row[j] = i*9 + j
			col[j] = j*9 + i
			br, bc := (i/3)*3+j/3, (i%3)*3+j%3
			box[j] = br*9 + bc
		}
		for _, g := range [][]int{row, col, box} {
			if err := net.AddGroup(g); err != nil {
				panic(err)
			}
		}
	}
	return &Solver{net: net}
}

// Parse reads a puzzle from text.  The digits 1-9 are givens; '0', '.'
// and '_' are blanks; whitespace is ignored.  Any other rune, or a rune
// count other than 81, is an InvalidInput error.  Givens load through
// the same commit-and-propagate path the search uses, so a puzzle whose
// givens already contradict each other parses fine and reports Unsat
// from Solve.
func Parse(text string) (*Solver, error) {
	s := New()
	cell := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		if cell >= 81 {
			return nil, errors.Wrap(inter.ErrInvalidInput, "more than 81 cells")
		}
		switch {
		case r >= '1' && r <= '9':
			s.set(cell, int(r-'1'))
		case r == '0' || r == '.' || r == '_':
		default:
			return nil, errors.Wrapf(inter.ErrInvalidInput, "cell rune %q", r)
		}
		cell++
	}
	if cell != 81 {
		return nil, errors.Wrapf(inter.ErrInvalidInput, "%d cells", cell)
	}
	return s, nil
}

// Set places the given digit (1-9) at row, col (0-8 each), propagating
// its consequences.  Out-of-range arguments are InvalidInput errors.  A
// digit conflicting with earlier givens is not an error: the conflict is
// remembered and Solve reports Unsat.
func (s *Solver) Set(row, col, digit int) error {
	if row < 0 || row > 8 || col < 0 || col > 8 {
		return errors.Wrapf(inter.ErrInvalidInput, "cell %d,%d", row, col)
	}
	if digit < 1 || digit > 9 {
		return errors.Wrapf(inter.ErrInvalidInput, "digit %d", digit)
	}
	s.set(row*9+col, digit-1)
	return nil
}

func (s *Solver) set(cell, d int) {
	if s.bad {
		return
	}
	if !s.net.Commit(cell, d, &s.st) {
		s.bad = true
	}
}

// SetLimits bounds the search.  Hitting a limit yields Inconclusive.
func (s *Solver) SetLimits(lim inter.Limits) {
	s.lim = lim
}

// Solve runs propagation to fixpoint and, if the puzzle is still
// undecided, backtracking search.
func (s *Solver) Solve() inter.Result {
	if s.bad {
		return inter.Unsat
	}
	return fix.Search(s.net, s.lim, &s.st)
}

// Stats returns the work counters accumulated so far, including the
// propagation done while loading givens.
func (s *Solver) Stats() inter.Stats {
	return s.st
}

// At returns the digit (1-9) committed at row, col, or 0 if the cell is
// open.
func (s *Solver) At(row, col int) int {
	d := s.net.Value(row*9 + col)
	if d < 0 {
		return 0
	}
	return d + 1
}

// Valid reports whether the grid is completely filled with no digit
// repeated in any row, column or box.
func (s *Solver) Valid() bool {
	for i := 0; i < 9; i++ {
		var row, col, box fix.Mask
		for j := 0; j < 9; j++ {
			r := s.net.Value(i*9 + j)
			c := s.net.Value(j*9 + i)
			br, bc := (i/3)*3+j/3, (i%3)*3+j%3
			b := s.net.Value(br*9 + bc)
			if r < 0 || c < 0 || b < 0 {
				return false
			}
			row.Set(r)
			col.Set(c)
			box.Set(b)
		}
		if row.Count() != 9 || col.Count() != 9 || box.Count() != 9 {
			return false
		}
	}
	return true
}

// String renders the grid in a boxed ASCII frame, open cells as dots.
func (s *Solver) String() string {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		if r%3 == 0 {
			b.WriteString("+-------+-------+-------+\n")
		}
		for c := 0; c < 9; c++ {
			if c%3 == 0 {
				b.WriteString("| ")
			}
			if d := s.At(r, c); d == 0 {
				b.WriteString(". ")
			} else {
				b.WriteByte(byte('0' + d))
				b.WriteByte(' ')
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString("+-------+-------+-------+\n")
	return b.String()
}
