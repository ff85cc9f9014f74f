package array

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/numgrid/numgrid/internal/parallel"
)

// kernelCfg is the shared parallelism configuration for element kernels.
var kernelCfg = parallel.DefaultConfig()

// ToFloat64 returns d itself when it is already Float64, or a converted
// copy otherwise. Bool arrays cannot be converted.
func ToFloat64(d *Dense) (*Dense, error) {
	if d.dtype == Float64 {
		return d, nil
	}
	return convert(d, Float64)
}

// Sub computes the element-wise difference a - b with NumPy broadcasting.
// Shape-incompatible inputs fail with the broadcast error unchanged.
func Sub(a, b *Dense) (*Dense, error) {
	if a.dtype != b.dtype {
		return nil, fmt.Errorf("mismatched dtypes: %s vs %s", a.dtype, b.dtype)
	}

	outShape, needsBroadcast, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, err
	}

	out, err := NewDense(outShape, a.dtype)
	if err != nil {
		return nil, err
	}

	if !needsBroadcast && a.shape.Equal(b.shape) {
		switch a.dtype {
		case Float64:
			dst, x, y := out.AsFloat64(), a.AsFloat64(), b.AsFloat64()
			parallel.ForRange(len(dst), func(s, e int) {
				for i := s; i < e; i++ {
					dst[i] = x[i] - y[i]
				}
			}, kernelCfg)
		case Float32:
			dst, x, y := out.AsFloat32(), a.AsFloat32(), b.AsFloat32()
			for i := range dst {
				dst[i] = x[i] - y[i]
			}
		default:
			return nil, fmt.Errorf("sub: unsupported dtype %s", a.dtype)
		}
		return out, nil
	}

	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(a.shape, outShape)
	bStrides := broadcastStrides(b.shape, outShape)

	switch a.dtype {
	case Float64:
		dst, x, y := out.AsFloat64(), a.AsFloat64(), b.AsFloat64()
		parallel.For(len(dst), func(i int) {
			dst[i] = x[broadcastFlatIndex(i, outStrides, aStrides)] - y[broadcastFlatIndex(i, outStrides, bStrides)]
		}, kernelCfg)
	case Float32:
		dst, x, y := out.AsFloat32(), a.AsFloat32(), b.AsFloat32()
		for i := range dst {
			dst[i] = x[broadcastFlatIndex(i, outStrides, aStrides)] - y[broadcastFlatIndex(i, outStrides, bStrides)]
		}
	default:
		return nil, fmt.Errorf("sub: unsupported dtype %s", a.dtype)
	}

	return out, nil
}

// Square computes the element-wise square into a new array.
func Square(x *Dense) (*Dense, error) {
	out, err := NewDense(x.shape, x.dtype)
	if err != nil {
		return nil, err
	}

	switch x.dtype {
	case Float64:
		// SIMD fast path: dst = src * src.
		vecmath.MulBlock(out.AsFloat64(), x.AsFloat64(), x.AsFloat64())
	case Float32:
		dst, src := out.AsFloat32(), x.AsFloat32()
		for i := range dst {
			dst[i] = src[i] * src[i]
		}
	default:
		return nil, fmt.Errorf("square: unsupported dtype %s", x.dtype)
	}

	return out, nil
}

// Sqrt computes the element-wise square root into a new array.
func Sqrt(x *Dense) (*Dense, error) {
	out, err := NewDense(x.shape, x.dtype)
	if err != nil {
		return nil, err
	}

	switch x.dtype {
	case Float64:
		dst, src := out.AsFloat64(), x.AsFloat64()
		parallel.ForRange(len(dst), func(s, e int) {
			for i := s; i < e; i++ {
				dst[i] = math.Sqrt(src[i])
			}
		}, kernelCfg)
	case Float32:
		dst, src := out.AsFloat32(), x.AsFloat32()
		for i := range dst {
			dst[i] = float32(math.Sqrt(float64(src[i])))
		}
	default:
		return nil, fmt.Errorf("sqrt: unsupported dtype %s", x.dtype)
	}

	return out, nil
}

// Scale multiplies every element by a scalar into a new array.
func Scale(x *Dense, s float64) (*Dense, error) {
	out, err := NewDense(x.shape, x.dtype)
	if err != nil {
		return nil, err
	}

	switch x.dtype {
	case Float64:
		vecmath.ScaleBlock(out.AsFloat64(), x.AsFloat64(), s)
	case Float32:
		dst, src := out.AsFloat32(), x.AsFloat32()
		f := float32(s)
		for i := range dst {
			dst[i] = src[i] * f
		}
	default:
		return nil, fmt.Errorf("scale: unsupported dtype %s", x.dtype)
	}

	return out, nil
}

// broadcastStrides computes strides for reading a shape broadcast to
// outShape: padded and size-1 axes get stride 0.
func broadcastStrides(inShape, outShape Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	inDim := len(inShape)
	offset := outDim - inDim
	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0 || inIdx >= inDim:
			strides[i] = 0 // padded axis
		case inShape[inIdx] == 1:
			strides[i] = 0 // broadcast axis
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// broadcastFlatIndex maps a flat output index to the flat source index
// under broadcast-adjusted strides.
func broadcastFlatIndex(outIdx int, outStrides, inStrides []int) int {
	flatIdx := 0
	for i := 0; i < len(outStrides); i++ {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flatIdx += coord * inStrides[i]
	}
	return flatIdx
}
