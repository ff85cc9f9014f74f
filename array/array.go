// Copyright 2026 The NumGrid Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array is the public API for NumGrid's dense N-dimensional arrays.
//
// The package re-exports the core types and the utility functions built on
// them: shape normalization, array construction, content hashing, view
// offsets, and meshgrids.
//
// Example:
//
//	x, _ := array.New([]float64{1, 2, 3}, array.WithDims(2))
//	x.Shape() // Shape{3, 1}
package array

import (
	"github.com/numgrid/numgrid/internal/array"
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} is a 3-D array with dimensions 2×3×4.
type Shape = array.Shape

// DataType represents the element type of an array.
type DataType = array.DataType

// Element type constants.
const (
	Float64 DataType = array.Float64
	Float32 DataType = array.Float32
	Int32   DataType = array.Int32
	Int64   DataType = array.Int64
	Uint8   DataType = array.Uint8
	Bool    DataType = array.Bool
)

// Dense is a dense N-dimensional array. Views share storage with a base
// array; owned arrays report a nil Base and a zero Offset.
type Dense = array.Dense

// ValidationError reports a caller contract violation, naming the violated
// attribute (for example "dims" in New).
type ValidationError = array.ValidationError

// ErrReadonly is carried by panics from setters on read-only arrays.
var ErrReadonly = array.ErrReadonly

// Option configures New.
type Option = array.Option

// Construction options.
var (
	// WithDims requests an exact number of axes; see New.
	WithDims = array.WithDims
	// WithMinDims requests a minimum number of axes when no exact dims is set.
	WithMinDims = array.WithMinDims
	// WithDType selects the element type instead of inferring it.
	WithDType = array.WithDType
	// AsReadonly marks the result non-writeable.
	AsReadonly = array.AsReadonly
)

// New builds a Dense from a scalar, a (possibly nested) slice, or another
// Dense. With WithDims(d), inputs of fewer natural axes gain trailing
// singleton axes without copying data; inputs of more natural axes fail
// with a *ValidationError naming "dims".
func New(x any, opts ...Option) (*Dense, error) {
	return array.New(x, opts...)
}

// NewDense allocates a zero-initialized array with the given shape and type.
func NewDense(shape Shape, dtype DataType) (*Dense, error) {
	return array.NewDense(shape, dtype)
}

// FromFloat64s creates a Float64 array from a flat slice and shape.
func FromFloat64s(data []float64, shape Shape) (*Dense, error) {
	return array.FromFloat64s(data, shape)
}

// FromFloat32s creates a Float32 array from a flat slice and shape.
func FromFloat32s(data []float32, shape Shape) (*Dense, error) {
	return array.FromFloat32s(data, shape)
}

// FromInt64s creates an Int64 array from a flat slice and shape.
func FromInt64s(data []int64, shape Shape) (*Dense, error) {
	return array.FromInt64s(data, shape)
}

// Zeros creates a Float64 array filled with zeros.
func Zeros(shape Shape) (*Dense, error) {
	return array.Zeros(shape)
}

// Full creates a Float64 array filled with a value.
func Full(shape Shape, value float64) (*Dense, error) {
	return array.Full(shape, value)
}

// Arange creates a 1-D Float64 array with values [start, end) in unit steps.
func Arange(start, end float64) (*Dense, error) {
	return array.Arange(start, end)
}

// Linspace creates a 1-D Float64 array of n evenly spaced values covering
// [start, end] inclusive.
func Linspace(start, end float64, n int) (*Dense, error) {
	return array.Linspace(start, end, n)
}

// AsShape normalizes a shape specifier: integer-like scalars become a
// one-element shape, int slices and Shapes convert directly, and anything
// else is rejected. Results shorter than minDim are left-padded with 1s.
func AsShape(x any, minDim int) (Shape, error) {
	return array.AsShape(x, minDim)
}

// BroadcastShape left-pads a shape with 1s to the given length, following
// standard broadcasting padding rules. It never truncates.
func BroadcastShape(shape Shape, length int) Shape {
	return array.BroadcastShape(shape, length)
}

// BroadcastShapes computes the broadcast shape of two shapes under NumPy
// rules, also reporting whether either operand needs expanding.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return array.BroadcastShapes(a, b)
}

// HashSampleSize is the default element budget used by HashValue when
// sampling large arrays.
const HashSampleSize = array.HashSampleSize

// HashValue returns a fast content hash of v for use as an equality or
// memoization key. Dense arrays hash by content (sampled above
// HashSampleSize elements); other values hash their printed representation.
func HashValue(v any) uint64 {
	return array.HashValue(v)
}

// HashArray computes a fast, non-cryptographic content hash. Arrays with
// fewer than n elements hash all bytes; larger arrays hash a deterministic
// per-axis sample of n elements, so same-sized arrays sample the same
// indices across calls. Large arrays that differ only outside the sample
// collide; this works well for dense data and is weaker for sparse data.
func HashArray(a *Dense, n int) uint64 {
	return array.HashArray(a, n)
}

// Offset returns the byte offset of x's first element relative to its root
// array's first element, or 0 when x owns its storage.
func Offset(x *Dense) int {
	return x.Offset()
}

// Meshgrid returns k arrays of shape (len(vs[0]), ..., len(vs[k-1])), where
// output i holds input i's values varying along axis i. Axis order matches
// argument order.
func Meshgrid(vs ...*Dense) ([]*Dense, error) {
	return array.Meshgrid(vs...)
}

// Sub computes the element-wise difference a - b with broadcasting.
func Sub(a, b *Dense) (*Dense, error) {
	return array.Sub(a, b)
}

// Square computes the element-wise square.
func Square(x *Dense) (*Dense, error) {
	return array.Square(x)
}

// Sqrt computes the element-wise square root.
func Sqrt(x *Dense) (*Dense, error) {
	return array.Sqrt(x)
}

// Scale multiplies every element by a scalar.
func Scale(x *Dense, s float64) (*Dense, error) {
	return array.Scale(x, s)
}

// ToFloat64 returns x itself when already Float64, or a converted copy.
func ToFloat64(x *Dense) (*Dense, error) {
	return array.ToFloat64(x)
}

// Sum reduces by addition along the given axes; nil axes reduce everything
// into a rank-0 scalar. With keepdims, reduced axes are kept at size 1.
func Sum(x *Dense, axes []int, keepdims bool) (*Dense, error) {
	return array.Sum(x, axes, keepdims)
}

// Mean reduces by arithmetic mean, with the same semantics as Sum.
func Mean(x *Dense, axes []int, keepdims bool) (*Dense, error) {
	return array.Mean(x, axes, keepdims)
}
