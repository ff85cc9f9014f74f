package array

import "fmt"

// Shape represents the dimensions of an array.
type Shape []int

// NumElements returns the total number of elements described by the shape.
// A rank-0 (scalar) shape has one element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal reports whether two shapes are identical.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major element strides for the shape:
// stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// AsShape normalizes a shape specifier. Integer-like scalars become a
// one-element shape, int slices and Shapes convert directly, and anything
// else is rejected. If the result has fewer than minDim axes it is
// left-padded with 1s until it has exactly minDim.
func AsShape(x any, minDim int) (Shape, error) {
	var shape Shape

	switch v := x.(type) {
	case Shape:
		shape = v.Clone()
	case []int:
		shape = append(Shape(nil), v...)
	case []int64:
		shape = make(Shape, len(v))
		for i, d := range v {
			shape[i] = int(d)
		}
	case []int32:
		shape = make(Shape, len(v))
		for i, d := range v {
			shape[i] = int(d)
		}
	case int:
		shape = Shape{v}
	case int64:
		shape = Shape{int(v)}
	case int32:
		shape = Shape{int(v)}
	case uint:
		shape = Shape{int(v)}
	default:
		return nil, fmt.Errorf("%v cannot be converted to a shape", x)
	}

	if len(shape) < minDim {
		padded := make(Shape, minDim)
		for i := 0; i < minDim-len(shape); i++ {
			padded[i] = 1
		}
		copy(padded[minDim-len(shape):], shape)
		shape = padded
	}

	return shape, nil
}

// BroadcastShape left-pads a shape with 1s until it has the given length,
// following standard broadcasting padding rules. Shapes that are already
// long enough are returned unchanged; no truncation ever occurs.
func BroadcastShape(shape Shape, length int) Shape {
	if len(shape) >= length {
		return shape
	}
	out := make(Shape, length)
	for i := 0; i < length-len(shape); i++ {
		out[i] = 1
	}
	copy(out[length-len(shape):], shape)
	return out
}

// BroadcastShapes implements NumPy-style broadcasting rules: shapes are
// compared right to left, dimensions are compatible when equal or when one
// of them is 1, and missing dimensions count as 1.
//
// Returns the broadcast shape, a flag indicating whether either operand
// needs expanding, and an error for incompatible shapes.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)
	needsBroadcast := false

	for i := 0; i < maxLen; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim := 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}

		bDim := 1
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			result[maxLen-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, fmt.Errorf("shapes not compatible for broadcasting: %v vs %v (dimension %d: %d vs %d)",
				a, b, maxLen-1-i, aDim, bDim)
		}
	}

	return result, needsBroadcast, nil
}
