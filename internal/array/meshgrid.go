package array

import "fmt"

// Meshgrid generalizes a 2-D coordinate grid to N dimensions. Given k
// inputs (flattened to 1-D), it returns k arrays of shape
// (len(vs[0]), ..., len(vs[k-1])); output i holds input i's values varying
// along axis i and repeated along every other axis. Axis order matches
// argument order. Outputs are materialized copies.
func Meshgrid(vs ...*Dense) ([]*Dense, error) {
	if len(vs) == 0 {
		return nil, fmt.Errorf("meshgrid: no input arrays")
	}

	k := len(vs)
	gridShape := make(Shape, k)
	flat := make([]*Dense, k)
	for i, v := range vs {
		f, err := v.Reshape(Shape{v.NumElements()})
		if err != nil {
			return nil, err
		}
		flat[i] = f
		gridShape[i] = f.shape[0]
	}

	out := make([]*Dense, k)
	for i, f := range flat {
		// Reshape input i so it varies along its own axis only.
		axisShape := make(Shape, k)
		for j := range axisShape {
			axisShape[j] = 1
		}
		axisShape[i] = f.shape[0]

		expanded, err := expand(f.withShape(axisShape), gridShape)
		if err != nil {
			return nil, err
		}
		out[i] = expanded
	}

	return out, nil
}

// expand materializes a broadcast of x to targetShape. Every axis of x must
// be either 1 or equal to the target axis.
func expand(x *Dense, targetShape Shape) (*Dense, error) {
	bshape, _, err := BroadcastShapes(x.shape, targetShape)
	if err != nil {
		return nil, err
	}
	if !bshape.Equal(targetShape) {
		return nil, fmt.Errorf("cannot expand %v to shape %v", x.shape, targetShape)
	}

	out, err := NewDense(targetShape, x.dtype)
	if err != nil {
		return nil, err
	}

	outStrides := targetShape.ComputeStrides()
	srcStrides := broadcastStrides(x.shape, targetShape)
	elemSize := x.dtype.Size()
	src := x.Data()
	dst := out.Data()

	n := targetShape.NumElements()
	for i := 0; i < n; i++ {
		j := broadcastFlatIndex(i, outStrides, srcStrides)
		copy(dst[i*elemSize:(i+1)*elemSize], src[j*elemSize:(j+1)*elemSize])
	}

	return out, nil
}
