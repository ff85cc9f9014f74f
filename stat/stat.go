// Copyright 2026 The NumGrid Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package stat provides amplitude statistics over dense arrays: Euclidean
// norm, root-mean-square amplitude, and RMS error, plus a three-way scalar
// comparator.
package stat

import (
	"github.com/numgrid/numgrid/array"
)

// Compare is a three-way comparator: 0 when a == b, 1 when a > b, -1 when
// a < b. The second result is false when none of these relations hold
// (NaN operands); the comparison value is then meaningless.
func Compare(a, b float64) (int, bool) {
	switch {
	case a == b:
		return 0, true
	case a > b:
		return 1, true
	case a < b:
		return -1, true
	default:
		return 0, false
	}
}

// Norm computes the Euclidean (L2) norm: sqrt(sum(x^2)) reduced along the
// given axes. Nil axes reduce over all elements into a rank-0 scalar. With
// keepdims, reduced axes are retained with size 1. Integer arrays are
// promoted to float64.
func Norm(x *array.Dense, axes []int, keepdims bool) (*array.Dense, error) {
	sq, err := squared(x)
	if err != nil {
		return nil, err
	}
	total, err := array.Sum(sq, axes, keepdims)
	if err != nil {
		return nil, err
	}
	return array.Sqrt(total)
}

// RMS computes the root-mean-square amplitude: sqrt(mean(x^2)), with the
// same axes and keepdims semantics as Norm.
func RMS(x *array.Dense, axes []int, keepdims bool) (*array.Dense, error) {
	sq, err := squared(x)
	if err != nil {
		return nil, err
	}
	m, err := array.Mean(sq, axes, keepdims)
	if err != nil {
		return nil, err
	}
	return array.Sqrt(m)
}

// RMSE computes the root-mean-square error between x and y: RMS(x - y).
// The inputs must be broadcast-compatible; shape mismatches propagate the
// subtraction error unchanged.
func RMSE(x, y *array.Dense, axes []int, keepdims bool) (*array.Dense, error) {
	xf, err := array.ToFloat64(x)
	if err != nil {
		return nil, err
	}
	yf, err := array.ToFloat64(y)
	if err != nil {
		return nil, err
	}
	diff, err := array.Sub(xf, yf)
	if err != nil {
		return nil, err
	}
	return RMS(diff, axes, keepdims)
}

// squared promotes to float64 where needed and squares element-wise.
func squared(x *array.Dense) (*array.Dense, error) {
	if x.DType() == array.Float32 {
		return array.Square(x)
	}
	xf, err := array.ToFloat64(x)
	if err != nil {
		return nil, err
	}
	return array.Square(xf)
}
