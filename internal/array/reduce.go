package array

import "fmt"

// Sum reduces by addition along the given axes. A nil or empty axes slice
// reduces over all elements. With keepdims, reduced axes are retained with
// size 1; otherwise they are removed from the output shape, and reducing
// every axis yields a rank-0 scalar. Negative axes count from the end.
func Sum(x *Dense, axes []int, keepdims bool) (*Dense, error) {
	if x.dtype != Float64 && x.dtype != Float32 {
		return nil, fmt.Errorf("sum: unsupported dtype %s (only float32/float64 supported)", x.dtype)
	}

	ndim := x.NumDims()
	if ndim == 0 {
		return x.Clone(), nil
	}

	normalized, err := normalizeAxes(axes, ndim)
	if err != nil {
		return nil, err
	}

	// Reduce one axis at a time, keeping reduced axes at size 1 so the
	// remaining axis numbers stay valid.
	cur := x
	for _, axis := range normalized {
		cur = sumSingleAxis(cur, axis)
	}

	if keepdims {
		return cur, nil
	}

	reduced := make(map[int]bool, len(normalized))
	for _, axis := range normalized {
		reduced[axis] = true
	}
	outShape := make(Shape, 0, ndim-len(normalized))
	for i := 0; i < ndim; i++ {
		if !reduced[i] {
			outShape = append(outShape, x.shape[i])
		}
	}
	return cur.withShape(outShape), nil
}

// Mean reduces by arithmetic mean along the given axes, with the same axes
// and keepdims semantics as Sum.
func Mean(x *Dense, axes []int, keepdims bool) (*Dense, error) {
	total, err := Sum(x, axes, keepdims)
	if err != nil {
		return nil, err
	}

	ndim := x.NumDims()
	if ndim == 0 {
		return total, nil
	}

	normalized, err := normalizeAxes(axes, ndim)
	if err != nil {
		return nil, err
	}

	count := 1
	for _, axis := range normalized {
		count *= x.shape[axis]
	}
	if count == 1 {
		return total, nil
	}
	return Scale(total, 1/float64(count))
}

// normalizeAxes resolves negative axes, rejects out-of-range or duplicate
// entries, and expands nil to every axis.
func normalizeAxes(axes []int, ndim int) ([]int, error) {
	if len(axes) == 0 {
		all := make([]int, ndim)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}

	seen := make(map[int]bool, len(axes))
	out := make([]int, 0, len(axes))
	for _, axis := range axes {
		if axis < 0 {
			axis += ndim
		}
		if axis < 0 || axis >= ndim {
			return nil, fmt.Errorf("axis %d out of range for %dD array", axis, ndim)
		}
		if seen[axis] {
			return nil, fmt.Errorf("duplicate axis %d", axis)
		}
		seen[axis] = true
		out = append(out, axis)
	}
	return out, nil
}

// sumSingleAxis reduces one axis to size 1, preserving rank.
func sumSingleAxis(x *Dense, axis int) *Dense {
	outShape := x.shape.Clone()
	outShape[axis] = 1

	result, err := NewDense(outShape, x.dtype)
	if err != nil {
		panic(fmt.Sprintf("sum: %v", err)) // shape derived from a valid input
	}

	switch x.dtype {
	case Float64:
		sumAxisFloat64(x.AsFloat64(), result.AsFloat64(), x.shape, axis)
	case Float32:
		sumAxisFloat32(x.AsFloat32(), result.AsFloat32(), x.shape, axis)
	}
	return result
}

func sumAxisFloat64(data, result []float64, shape Shape, axis int) {
	strides := shape.ComputeStrides()
	numElements := shape.NumElements()

	outShape := shape.Clone()
	outShape[axis] = 1
	outStrides := outShape.ComputeStrides()

	for i := 0; i < numElements; i++ {
		outIdx := 0
		temp := i
		for d := 0; d < len(shape); d++ {
			coord := temp / strides[d]
			temp %= strides[d]

			// The reduced axis always maps to coordinate 0 in the output.
			if d != axis {
				outIdx += coord * outStrides[d]
			}
		}

		result[outIdx] += data[i]
	}
}

func sumAxisFloat32(data, result []float32, shape Shape, axis int) {
	strides := shape.ComputeStrides()
	numElements := shape.NumElements()

	outShape := shape.Clone()
	outShape[axis] = 1
	outStrides := outShape.ComputeStrides()

	for i := 0; i < numElements; i++ {
		outIdx := 0
		temp := i
		for d := 0; d < len(shape); d++ {
			coord := temp / strides[d]
			temp %= strides[d]

			if d != axis {
				outIdx += coord * outStrides[d]
			}
		}

		result[outIdx] += data[i]
	}
}
