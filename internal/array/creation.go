package array

import (
	"fmt"
	"reflect"
)

// Option configures New.
type Option func(*buildConfig)

type buildConfig struct {
	dims     int
	hasDims  bool
	minDims  int
	dtype    DataType
	hasDType bool
	readonly bool
}

// WithDims requests an exact number of axes for the result. Inputs with
// fewer natural axes gain trailing singleton axes; inputs with more fail
// with a ValidationError naming "dims".
func WithDims(n int) Option {
	return func(c *buildConfig) {
		c.dims = n
		c.hasDims = true
	}
}

// WithMinDims requests a minimum number of axes when no exact dims is set.
func WithMinDims(n int) Option {
	return func(c *buildConfig) {
		c.minDims = n
	}
}

// WithDType selects the element type of the result instead of inferring it
// from the input.
func WithDType(dt DataType) Option {
	return func(c *buildConfig) {
		c.dtype = dt
		c.hasDType = true
	}
}

// AsReadonly marks the result non-writeable.
func AsReadonly() Option {
	return func(c *buildConfig) {
		c.readonly = true
	}
}

// New builds a Dense from a scalar, a (possibly nested) slice, or another
// Dense, then normalizes its dimensionality per the configured options.
func New(x any, opts ...Option) (*Dense, error) {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	y, err := build(x, cfg)
	if err != nil {
		return nil, err
	}

	dims := cfg.dims
	if !cfg.hasDims {
		dims = max(cfg.minDims, y.NumDims())
	}

	switch {
	case y.NumDims() < dims:
		// Insert trailing singleton axes; data is untouched.
		shape := make(Shape, dims)
		copy(shape, y.shape)
		for i := y.NumDims(); i < dims; i++ {
			shape[i] = 1
		}
		y = y.withShape(shape)
	case y.NumDims() > dims:
		return nil, NewValidationError("dims", "input cannot be cast to array with %d dimensions", dims)
	}

	if cfg.readonly {
		y.SetReadonly()
	}

	return y, nil
}

// build constructs the natural array for x, before any dims adjustment.
func build(x any, cfg buildConfig) (*Dense, error) {
	if d, ok := x.(*Dense); ok {
		out := d.Clone()
		if cfg.hasDType && cfg.dtype != out.dtype {
			return convert(out, cfg.dtype)
		}
		return out, nil
	}

	shape, elemKind, err := inferShape(reflect.ValueOf(x))
	if err != nil {
		return nil, err
	}

	dtype, ok := dataTypeOf(elemKind)
	if !ok {
		return nil, fmt.Errorf("cannot build array from %T", x)
	}
	if cfg.hasDType {
		dtype = cfg.dtype
	}

	out, err := NewDense(shape, dtype)
	if err != nil {
		return nil, err
	}

	flat := 0
	if err := fill(out, reflect.ValueOf(x), &flat); err != nil {
		return nil, err
	}
	return out, nil
}

// inferShape walks nested slices to derive the natural shape and the
// innermost element kind. Scalars yield a rank-0 shape.
func inferShape(v reflect.Value) (Shape, reflect.Kind, error) {
	var shape Shape
	for v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		if v.Len() == 0 {
			return nil, 0, fmt.Errorf("cannot build array from an empty sequence")
		}
		shape = append(shape, v.Len())
		v = v.Index(0)
		if v.Kind() == reflect.Interface {
			v = v.Elem()
		}
	}
	if _, ok := dataTypeOf(v.Kind()); !ok {
		return nil, 0, fmt.Errorf("cannot build array from element type %s", v.Kind())
	}
	return shape, v.Kind(), nil
}

// fill copies nested-slice elements into out in row-major order, checking
// that nesting is rectangular.
func fill(out *Dense, v reflect.Value, flat *int) error {
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}

	depth := 0
	for p := v; p.Kind() == reflect.Slice || p.Kind() == reflect.Array; depth++ {
		if p.Len() == 0 {
			return fmt.Errorf("ragged input: empty sequence at depth %d", depth)
		}
		p = p.Index(0)
		if p.Kind() == reflect.Interface {
			p = p.Elem()
		}
	}

	if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		axis := out.NumDims() - depth
		if v.Len() != out.shape[axis] {
			return fmt.Errorf("ragged input: axis %d has length %d, expected %d", axis, v.Len(), out.shape[axis])
		}
		for i := 0; i < v.Len(); i++ {
			if err := fill(out, v.Index(i), flat); err != nil {
				return err
			}
		}
		return nil
	}

	if err := storeScalar(out, v, *flat); err != nil {
		return err
	}
	*flat++
	return nil
}

// storeScalar writes one reflected scalar into the flat element slot.
func storeScalar(out *Dense, v reflect.Value, flat int) error {
	if out.dtype == Bool {
		if v.Kind() != reflect.Bool {
			return fmt.Errorf("cannot store %s into bool array", v.Kind())
		}
		out.AsBool()[flat] = v.Bool()
		return nil
	}

	var f float64
	switch v.Kind() {
	case reflect.Float64, reflect.Float32:
		f = v.Float()
	case reflect.Int, reflect.Int32, reflect.Int64:
		f = float64(v.Int())
	case reflect.Uint8, reflect.Uint:
		f = float64(v.Uint())
	case reflect.Bool:
		return fmt.Errorf("cannot store bool into %s array", out.dtype)
	default:
		return fmt.Errorf("cannot store %s element", v.Kind())
	}

	switch out.dtype {
	case Float64:
		out.AsFloat64()[flat] = f
	case Float32:
		out.AsFloat32()[flat] = float32(f)
	case Int32:
		out.AsInt32()[flat] = int32(f)
	case Int64:
		out.AsInt64()[flat] = int64(f)
	case Uint8:
		out.AsUint8()[flat] = uint8(f)
	default:
		return fmt.Errorf("cannot store into %s array", out.dtype)
	}
	return nil
}

// convert copies an array into a new dtype, element by element.
func convert(d *Dense, dtype DataType) (*Dense, error) {
	if d.dtype == Bool || dtype == Bool {
		return nil, fmt.Errorf("cannot convert between %s and %s", d.dtype, dtype)
	}
	out, err := NewDense(d.shape, dtype)
	if err != nil {
		return nil, err
	}
	n := d.NumElements()
	for i := 0; i < n; i++ {
		switch dtype {
		case Float64:
			out.AsFloat64()[i] = d.float64AtFlat(i)
		case Float32:
			out.AsFloat32()[i] = float32(d.float64AtFlat(i))
		case Int32:
			out.AsInt32()[i] = int32(d.float64AtFlat(i))
		case Int64:
			out.AsInt64()[i] = int64(d.float64AtFlat(i))
		case Uint8:
			out.AsUint8()[i] = uint8(d.float64AtFlat(i))
		}
	}
	return out, nil
}

// FromFloat64s creates a Float64 array from a flat slice and shape.
// The data is copied.
func FromFloat64s(data []float64, shape Shape) (*Dense, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	out, err := NewDense(shape, Float64)
	if err != nil {
		return nil, err
	}
	copy(out.AsFloat64(), data)
	return out, nil
}

// FromFloat32s creates a Float32 array from a flat slice and shape.
// The data is copied.
func FromFloat32s(data []float32, shape Shape) (*Dense, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	out, err := NewDense(shape, Float32)
	if err != nil {
		return nil, err
	}
	copy(out.AsFloat32(), data)
	return out, nil
}

// FromInt64s creates an Int64 array from a flat slice and shape.
// The data is copied.
func FromInt64s(data []int64, shape Shape) (*Dense, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	out, err := NewDense(shape, Int64)
	if err != nil {
		return nil, err
	}
	copy(out.AsInt64(), data)
	return out, nil
}

// Zeros creates a Float64 array filled with zeros.
func Zeros(shape Shape) (*Dense, error) {
	return NewDense(shape, Float64)
}

// Full creates a Float64 array filled with a value.
func Full(shape Shape, value float64) (*Dense, error) {
	out, err := NewDense(shape, Float64)
	if err != nil {
		return nil, err
	}
	data := out.AsFloat64()
	for i := range data {
		data[i] = value
	}
	return out, nil
}

// Arange creates a 1-D Float64 array with values [start, end) in unit steps.
func Arange(start, end float64) (*Dense, error) {
	n := int(end - start)
	if n < 1 {
		return nil, fmt.Errorf("arange: empty range [%v, %v)", start, end)
	}
	out, err := NewDense(Shape{n}, Float64)
	if err != nil {
		return nil, err
	}
	data := out.AsFloat64()
	for i := range data {
		data[i] = start + float64(i)
	}
	return out, nil
}

// Linspace creates a 1-D Float64 array of n evenly spaced values covering
// [start, end] inclusive.
func Linspace(start, end float64, n int) (*Dense, error) {
	if n < 2 {
		return nil, fmt.Errorf("linspace: need at least 2 points, got %d", n)
	}
	out, err := NewDense(Shape{n}, Float64)
	if err != nil {
		return nil, err
	}
	step := (end - start) / float64(n-1)
	data := out.AsFloat64()
	for i := range data {
		data[i] = start + float64(i)*step
	}
	data[n-1] = end
	return out, nil
}
