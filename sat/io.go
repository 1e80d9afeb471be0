// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sat

import (
	"io"

	"github.com/go-kleene/kleene/dimacs"
	"github.com/go-kleene/kleene/trit"
)

type cnfVis struct {
	s *S
}

func (c *cnfVis) Init(v, cls int) {}

func (c *cnfVis) Add(m trit.Lit) {
	c.s.Add(m)
}

func (c *cnfVis) Eof() {}

// Load reads a DIMACS CNF problem from r into s.  Parse errors and
// capacity overflows are returned; s should be discarded on error.
func Load(r io.Reader, s *S) error {
	if err := dimacs.ReadCnf(r, &cnfVis{s: s}); err != nil {
		return err
	}
	return s.Err()
}
