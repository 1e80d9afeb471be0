// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package trit

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeqIdentities(t *testing.T) {
	assert.Equal(t, Mk(True, 1), AndSeq(nil))
	assert.Equal(t, Mk(False, 1), OrSeq(nil))
	assert.Equal(t, Mk(Unknown, 0), Reduce(nil, Val.And, ConfAnd, False))
	one := Mk(Unknown, 0.4)
	assert.Equal(t, one, AndSeq([]State{one}))
	assert.Equal(t, one, OrSeq([]State{one}))
}

func TestAndSeqAbsorbs(t *testing.T) {
	ss := []State{Mk(True, 0.9), Mk(False, 0.8), Mk(True, 0.1)}
	r := AndSeq(ss)
	assert.Equal(t, False, r.Val)
	// the fold stopped at the absorbing element; the trailing low
	// confidence did not dilute the result
	assert.InDelta(t, 0.9*0.8, float64(r.Conf), 1e-6)
}

func TestOrSeqAbsorbs(t *testing.T) {
	ss := []State{Mk(False, 0.5), Mk(True, 0.5), Mk(False, 0.99)}
	r := OrSeq(ss)
	assert.Equal(t, True, r.Val)
	assert.InDelta(t, 1-(1-0.5)*(1-0.5), float64(r.Conf), 1e-6)
}

// no-early-exit reference folds used to pin down equivalence
func andSeqFull(ss []State) State {
	if len(ss) == 0 {
		return Mk(True, 1)
	}
	r := ss[0]
	for i := 1; i < len(ss); i++ {
		stop := r.Val == False
		if !stop {
			r = r.And(ss[i])
		}
	}
	return r
}

func TestEarlyTerminationEquivalence(t *testing.T) {
	rnd := rand.New(rand.NewSource(44))
	for i := 0; i < 1000; i++ {
		n := rnd.Intn(12)
		ss := make([]State, n)
		for j := range ss {
			ss[j] = Mk(vals[rnd.Intn(3)], Conf(rnd.Float32()))
		}
		assert.Equal(t, andSeqFull(ss), AndSeq(ss), "seq %v", ss)
	}
}

func TestUnknownPreservation(t *testing.T) {
	rnd := rand.New(rand.NewSource(45))
	for i := 0; i < 1000; i++ {
		n := 1 + rnd.Intn(10)
		ss := make([]State, n)
		hasUnknown := false
		for j := range ss {
			// draw from {Unknown, True} only: no absorbing element for AND
			v := Unknown
			if rnd.Intn(2) == 0 {
				v = True
			} else {
				hasUnknown = true
			}
			ss[j] = Mk(v, Conf(rnd.Float32()))
		}
		if !hasUnknown {
			continue
		}
		assert.Equal(t, Unknown, AndSeq(ss).Val, "and seq %v", ss)
		// symmetric: OR over {Unknown, False} stays Unknown
		for j := range ss {
			ss[j].Val = ss[j].Val.Not()
		}
		assert.Equal(t, Unknown, OrSeq(ss).Val, "or seq %v", ss)
	}
}

func TestPersistsUnknown(t *testing.T) {
	assert.True(t, PersistsUnknown(Unknown, []Val{Unknown, Unknown}))
	assert.False(t, PersistsUnknown(Unknown, []Val{Unknown, False}))
	assert.False(t, PersistsUnknown(True, []Val{Unknown, Unknown}))
}

func TestUnknownPersistenceProb(t *testing.T) {
	assert.Equal(t, 1.0, UnknownPersistenceProb(0))
	assert.Equal(t, 1.0, UnknownPersistenceProb(1))
	assert.InDelta(t, 2.0/3.0, UnknownPersistenceProb(2), 1e-12)
	assert.InDelta(t, 4.0/9.0, UnknownPersistenceProb(3), 1e-12)
}

func BenchmarkAndSeq(b *testing.B) {
	rnd := rand.New(rand.NewSource(3))
	ss := make([]State, 64)
	for j := range ss {
		ss[j] = Mk(vals[rnd.Intn(3)], Conf(rnd.Float32()))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AndSeq(ss)
	}
}
