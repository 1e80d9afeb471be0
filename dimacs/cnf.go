// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package dimacs reads CNF formulas in DIMACS format, feeding clauses to
// a visitor so any solver implementing the Adder contract can consume
// them without an intermediate representation.
package dimacs

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/go-kleene/kleene/inter"
	"github.com/go-kleene/kleene/trit"
)

// Interface CnfVis visits a CNF as it is read.  Init is called once if
// a problem header is present, before any Add.  Add receives clause
// literals terminated by trit.LitNull.  Eof is called at end of input.
type CnfVis interface {
	Init(nVars, nClauses int)
	Add(m trit.Lit)
	Eof()
}

// ReadCnf reads DIMACS CNF from r into vis, tolerating input without a
// problem header, undeclared variables and a missing final terminator.
func ReadCnf(r io.Reader, vis CnfVis) error {
	return readCnf(r, vis, false)
}

// ReadCnfStrict is ReadCnf but, when strict is true, requires a
// well-formed "p cnf <vars> <clauses>" header and rejects variables or
// clause counts that disagree with it.
func ReadCnfStrict(r io.Reader, vis CnfVis, strict bool) error {
	return readCnf(r, vis, strict)
}

func readCnf(r io.Reader, vis CnfVis, strict bool) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<16), 1<<24)

	hdr := false
	nVars, nClauses := 0, 0
	clauses := 0
	open := false // inside an unterminated clause
	for sc.Scan() {
		line := sc.Text()
		fields := fieldsOf(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "c":
			continue
		case "p":
			if hdr {
				return errors.Wrap(inter.ErrInvalidInput, "duplicate problem header")
			}
			if len(fields) != 4 || fields[1] != "cnf" {
				return errors.Wrapf(inter.ErrInvalidInput, "problem header %q", line)
			}
			var err error
			if nVars, err = strconv.Atoi(fields[2]); err != nil || nVars < 0 {
				return errors.Wrapf(inter.ErrInvalidInput, "header vars %q", fields[2])
			}
			if nClauses, err = strconv.Atoi(fields[3]); err != nil || nClauses < 0 {
				return errors.Wrapf(inter.ErrInvalidInput, "header clauses %q", fields[3])
			}
			hdr = true
			vis.Init(nVars, nClauses)
			continue
		}
		if len(fields[0]) > 1 && (fields[0][0] == 'c' || fields[0][0] == 'p') {
			// "c..."/"p..." without separating space: comment junk
			if strict {
				return errors.Wrapf(inter.ErrInvalidInput, "token %q", fields[0])
			}
			continue
		}
		for _, f := range fields {
			i, err := strconv.Atoi(f)
			if err != nil {
				return errors.Wrapf(inter.ErrInvalidInput, "literal %q", f)
			}
			if i == 0 {
				vis.Add(trit.LitNull)
				open = false
				clauses++
				continue
			}
			v := i
			if v < 0 {
				v = -v
			}
			if strict && hdr && v > nVars {
				return errors.Wrapf(inter.ErrInvalidInput, "variable %d beyond declared %d", v, nVars)
			}
			vis.Add(trit.Dimacs2Lit(i))
			open = true
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if open {
		if strict {
			return errors.Wrap(inter.ErrInvalidInput, "unterminated clause")
		}
		vis.Add(trit.LitNull)
		clauses++
	}
	if strict {
		if !hdr {
			return errors.Wrap(inter.ErrInvalidInput, "missing problem header")
		}
		if clauses != nClauses {
			return errors.Wrapf(inter.ErrInvalidInput, "%d clauses, header declares %d", clauses, nClauses)
		}
	}
	vis.Eof()
	return nil
}

func fieldsOf(line string) []string {
	var out []string
	start := -1
	for i := 0; i < len(line); i++ {
		b := line[i]
		if b == ' ' || b == '\t' || b == '\r' {
			if start >= 0 {
				out = append(out, line[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, line[start:])
	}
	return out
}
