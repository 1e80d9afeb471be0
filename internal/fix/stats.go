// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package fix

import "github.com/go-kleene/kleene/inter"

// The caller-facing result, statistics and limit types live in package
// inter so adapters can expose them; the engine works with them under
// local names.
type (
	Result   = inter.Result
	Stats    = inter.Stats
	Limits   = inter.Limits
	Snapshot = interface{}
)

const (
	Unsat        = inter.Unsat
	Inconclusive = inter.Inconclusive
	Sat          = inter.Sat
)

var (
	ErrInvalidInput = inter.ErrInvalidInput
	ErrCapacity     = inter.ErrCapacity
)
