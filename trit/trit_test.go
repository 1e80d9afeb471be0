// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package trit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vals = []Val{False, Unknown, True}

func TestValTables(t *testing.T) {
	for _, a := range vals {
		for _, b := range vals {
			assert.Equal(t, min8(a, b), a.And(b), "and(%s,%s)", a, b)
			assert.Equal(t, max8(a, b), a.Or(b), "or(%s,%s)", a, b)
			assert.Equal(t, a.And(b).Not(), a.Nand(b), "nand(%s,%s)", a, b)
			assert.Equal(t, a.Or(b).Not(), a.Nor(b), "nor(%s,%s)", a, b)
			assert.Equal(t, a.Not().Or(b), a.Implies(b), "implies(%s,%s)", a, b)
			assert.Equal(t, a*b, a.Equiv(b), "equiv(%s,%s)", a, b)
		}
		assert.Equal(t, -a, a.Not())
	}
}

func min8(a, b Val) Val {
	if a < b {
		return a
	}
	return b
}

func max8(a, b Val) Val {
	if a > b {
		return a
	}
	return b
}

func TestConfRules(t *testing.T) {
	assert.InDelta(t, 0.08, float64(ConfAnd(0.2, 0.4)), 1e-6)
	assert.InDelta(t, 0.52, float64(ConfOr(0.2, 0.4)), 1e-6)
	assert.Equal(t, Conf(0.7), ConfNot(0.7))
	// implication: 1 - c1 + c1*c2
	assert.InDelta(t, 1-0.8+0.8*0.4, float64(ConfImplies(0.8, 0.4)), 1e-6)
}

func TestNewRejectsBadConfidence(t *testing.T) {
	for _, c := range []Conf{-0.1, 1.1, Conf(float32(math.NaN())), Conf(float32(math.Inf(1)))} {
		_, err := New(True, c)
		require.Error(t, err, "confidence %v", c)
	}
	s, err := New(Unknown, 0.5)
	require.NoError(t, err)
	assert.Equal(t, Mk(Unknown, 0.5), s)
}

func TestStateCombinatorsStayInRange(t *testing.T) {
	confs := []Conf{0, 0.25, 0.5, 0.75, 1}
	for _, a := range vals {
		for _, b := range vals {
			for _, ca := range confs {
				for _, cb := range confs {
					x, y := Mk(a, ca), Mk(b, cb)
					for _, s := range []State{x.And(y), x.Or(y), x.Not(), x.Nand(y), x.Nor(y), x.Implies(y), x.Equiv(y)} {
						assert.True(t, s.Conf.Valid(), "conf %v out of range for %s %s", s.Conf, x, y)
					}
				}
			}
		}
	}
}

func TestNandNorConfidenceMatchesUnderlying(t *testing.T) {
	a, b := Mk(True, 0.9), Mk(Unknown, 0.3)
	assert.Equal(t, a.And(b).Conf, a.Nand(b).Conf)
	assert.Equal(t, a.Or(b).Conf, a.Nor(b).Conf)
}
