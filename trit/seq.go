// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package trit

import "math"

// AndSeq folds the sequence left-to-right under And.  The fold stops the
// moment the running value hits False, the absorbing element of
// conjunction; the confidences of the remaining states cannot change the
// result.  The empty sequence is the AND identity (True, 1).
func AndSeq(states []State) State {
	if len(states) == 0 {
		return State{Val: True, Conf: 1}
	}
	r := states[0]
	for _, s := range states[1:] {
		if r.Val == False {
			break
		}
		r = r.And(s)
	}
	return r
}

// OrSeq folds the sequence left-to-right under Or, stopping once the
// running value hits True.  The empty sequence is the OR identity
// (False, 1).
func OrSeq(states []State) State {
	if len(states) == 0 {
		return State{Val: False, Conf: 1}
	}
	r := states[0]
	for _, s := range states[1:] {
		if r.Val == True {
			break
		}
		r = r.Or(s)
	}
	return r
}

// Reduce folds states under an arbitrary pairwise value operation and
// confidence rule, stopping early when the running value reaches the
// absorbing element.  An empty sequence reduces to (Unknown, 0).
func Reduce(states []State, op func(Val, Val) Val, conf func(Conf, Conf) Conf, absorbing Val) State {
	if len(states) == 0 {
		return State{Val: Unknown, Conf: 0}
	}
	r := states[0]
	for _, s := range states[1:] {
		if r.Val == absorbing {
			break
		}
		r = State{Val: op(r.Val, s.Val), Conf: conf(r.Conf, s.Conf)}
	}
	return r
}

// PersistsUnknown reports whether an Unknown result is explained by the
// preservation property.  The check is operation-agnostic: it holds when
// no input is decided, so neither And's absorbing False nor Or's
// absorbing True is present.
func PersistsUnknown(result Val, inputs []Val) bool {
	if result != Unknown {
		return false
	}
	for _, v := range inputs {
		if v != Unknown {
			return false
		}
	}
	return true
}

// UnknownPersistenceProb is the probability (2/3)^(n-1) that Unknown
// survives a fold of n uniformly random ternary inputs.
func UnknownPersistenceProb(n int) float64 {
	if n <= 1 {
		return 1
	}
	return math.Pow(2.0/3.0, float64(n-1))
}
