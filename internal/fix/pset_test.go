// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package fix

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPSetBasics(t *testing.T) {
	p, err := FullPSet(9)
	require.NoError(t, err)
	assert.Equal(t, 9, p.Count())
	assert.Equal(t, -1, p.Single())
	for v := 0; v < 9; v++ {
		assert.True(t, p.Has(v))
	}
	assert.False(t, p.Has(9))
	assert.False(t, p.Has(-1))

	for v := 1; v < 9; v++ {
		p.Clear(v)
	}
	assert.Equal(t, 1, p.Count())
	assert.Equal(t, 0, p.Single())
	p.Clear(0)
	assert.True(t, p.Empty())
}

func TestPSetWidth(t *testing.T) {
	_, err := FullPSet(0)
	assert.True(t, errors.Is(err, ErrCapacity))
	_, err = FullPSet(65)
	assert.True(t, errors.Is(err, ErrCapacity))
	p, err := FullPSet(64)
	require.NoError(t, err)
	assert.Equal(t, 64, p.Count())
}

func TestPSetIterateAscending(t *testing.T) {
	p, _ := FullPSet(8)
	p.Clear(1)
	p.Clear(4)
	var got []int
	p.Iterate(func(v int) { got = append(got, v) })
	assert.Equal(t, []int{0, 2, 3, 5, 6, 7}, got)
}

func TestMask(t *testing.T) {
	var m Mask
	assert.False(t, m.Has(3))
	m.Set(3)
	m.Set(5)
	assert.True(t, m.Has(3))
	assert.True(t, m.Has(5))
	assert.Equal(t, 2, m.Count())
}
