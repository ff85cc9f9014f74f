// Copyright 2026 The NumGrid Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numgrid/numgrid/array"
)

func TestPublicConstruction(t *testing.T) {
	x, err := array.New([]float64{1, 2, 3}, array.WithDims(2))
	require.NoError(t, err)
	assert.Equal(t, array.Shape{3, 1}, x.Shape())
	assert.Equal(t, array.Float64, x.DType())
}

func TestPublicDimsContractViolation(t *testing.T) {
	_, err := array.New([][]float64{{1, 2}, {3, 4}}, array.WithDims(1))
	require.Error(t, err)

	var verr *array.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "dims", verr.Attr)
}

func TestPublicAsShape(t *testing.T) {
	s, err := array.AsShape([]int{2, 3}, 0)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{2, 3}, s)

	s, err = array.AsShape(5, 3)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{1, 1, 5}, s)

	_, err = array.AsShape("bad", 0)
	assert.Error(t, err)
}

func TestPublicOffset(t *testing.T) {
	x, err := array.FromFloat64s([]float64{0, 1, 2, 3, 4, 5}, array.Shape{3, 2})
	require.NoError(t, err)

	assert.Equal(t, 0, array.Offset(x))
	assert.Equal(t, 2*8, array.Offset(x.Index(1)))
}

func TestPublicHashing(t *testing.T) {
	a, err := array.New([]float64{1, 2, 3})
	require.NoError(t, err)
	b, err := array.New([]float64{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, array.HashValue(a), array.HashValue(b))
	assert.Equal(t, array.HashValue(7), array.HashValue(7))
}

func TestPublicMeshgrid(t *testing.T) {
	x, err := array.New([]float64{1, 2})
	require.NoError(t, err)
	y, err := array.New([]float64{3, 4})
	require.NoError(t, err)

	grids, err := array.Meshgrid(x, y)
	require.NoError(t, err)
	require.Len(t, grids, 2)
	assert.Equal(t, array.Shape{2, 2}, grids[0].Shape())
	assert.Equal(t, 2.0, grids[0].Float64At(1, 1))
	assert.Equal(t, 4.0, grids[1].Float64At(1, 1))
}

func TestPublicReductions(t *testing.T) {
	x, err := array.New([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	total, err := array.Sum(x, nil, false)
	require.NoError(t, err)
	assert.Equal(t, 10.0, total.Float64())

	m, err := array.Mean(x, []int{0}, true)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{1, 2}, m.Shape())
	assert.Equal(t, 2.0, m.Float64At(0, 0))
	assert.Equal(t, 3.0, m.Float64At(0, 1))
}

func TestPublicReadonly(t *testing.T) {
	x, err := array.New([]float64{1}, array.AsReadonly())
	require.NoError(t, err)
	assert.False(t, x.Writeable())

	assert.Panics(t, func() { x.SetFloat64(2, 0) })
}
