package array

import (
	"fmt"
	"unsafe"
)

// Dense is a dense N-dimensional array: a contiguous byte buffer interpreted
// through a shape, row-major element strides, and a data type.
//
// A Dense either owns its buffer (base == nil) or is a view into another
// array's buffer. Views share storage with their root and differ only in
// shape and byte offset; they never take ownership.
type Dense struct {
	buffer   []byte // backing buffer, shared across views
	base     *Dense // root owner; nil when this array owns buffer
	shape    Shape
	stride   []int // element strides, row-major
	dtype    DataType
	offset   int // byte offset into buffer
	readonly bool
}

// NewDense allocates a zero-initialized array with the given shape and type.
func NewDense(shape Shape, dtype DataType) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	byteSize := shape.NumElements() * dtype.Size()

	return &Dense{
		buffer: make([]byte, byteSize),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// Shape returns the array's shape.
func (d *Dense) Shape() Shape {
	return d.shape
}

// Strides returns the array's element strides.
func (d *Dense) Strides() []int {
	return d.stride
}

// DType returns the array's data type.
func (d *Dense) DType() DataType {
	return d.dtype
}

// NumDims returns the number of axes.
func (d *Dense) NumDims() int {
	return len(d.shape)
}

// NumElements returns the total number of elements.
func (d *Dense) NumElements() int {
	return d.shape.NumElements()
}

// ByteSize returns the memory footprint of this array's elements in bytes.
func (d *Dense) ByteSize() int {
	return d.NumElements() * d.dtype.Size()
}

// Base returns the root array this view shares storage with, or nil when
// the array owns its own buffer.
func (d *Dense) Base() *Dense {
	return d.base
}

// Offset returns the byte offset of this array's first element relative to
// its root's first element. Arrays that own their storage report 0.
func (d *Dense) Offset() int {
	if d.base == nil {
		return 0
	}
	return d.offset
}

// Writeable reports whether the array accepts mutation.
func (d *Dense) Writeable() bool {
	return !d.readonly
}

// SetReadonly marks the array non-writeable. Subsequent Set calls panic.
func (d *Dense) SetReadonly() {
	d.readonly = true
}

// root follows the base chain to the owning array.
func (d *Dense) root() *Dense {
	if d.base == nil {
		return d
	}
	return d.base
}

// Data returns the raw bytes of this array's elements.
// WARNING: direct access to underlying memory. Use with caution.
func (d *Dense) Data() []byte {
	return d.buffer[d.offset : d.offset+d.ByteSize()]
}

// AsFloat64 interprets the data as []float64.
// Panics if the array's dtype is not Float64.
func (d *Dense) AsFloat64() []float64 {
	if d.dtype != Float64 {
		panic(fmt.Sprintf("array dtype is %s, not float64", d.dtype))
	}
	if d.NumElements() == 0 {
		return nil
	}
	data := d.buffer[d.offset:]
	return unsafe.Slice((*float64)(unsafe.Pointer(&data[0])), d.NumElements())
}

// AsFloat32 interprets the data as []float32.
// Panics if the array's dtype is not Float32.
func (d *Dense) AsFloat32() []float32 {
	if d.dtype != Float32 {
		panic(fmt.Sprintf("array dtype is %s, not float32", d.dtype))
	}
	if d.NumElements() == 0 {
		return nil
	}
	data := d.buffer[d.offset:]
	return unsafe.Slice((*float32)(unsafe.Pointer(&data[0])), d.NumElements())
}

// AsInt32 interprets the data as []int32.
// Panics if the array's dtype is not Int32.
func (d *Dense) AsInt32() []int32 {
	if d.dtype != Int32 {
		panic(fmt.Sprintf("array dtype is %s, not int32", d.dtype))
	}
	if d.NumElements() == 0 {
		return nil
	}
	data := d.buffer[d.offset:]
	return unsafe.Slice((*int32)(unsafe.Pointer(&data[0])), d.NumElements())
}

// AsInt64 interprets the data as []int64.
// Panics if the array's dtype is not Int64.
func (d *Dense) AsInt64() []int64 {
	if d.dtype != Int64 {
		panic(fmt.Sprintf("array dtype is %s, not int64", d.dtype))
	}
	if d.NumElements() == 0 {
		return nil
	}
	data := d.buffer[d.offset:]
	return unsafe.Slice((*int64)(unsafe.Pointer(&data[0])), d.NumElements())
}

// AsUint8 interprets the data as []uint8.
// Panics if the array's dtype is not Uint8.
func (d *Dense) AsUint8() []uint8 {
	if d.dtype != Uint8 {
		panic(fmt.Sprintf("array dtype is %s, not uint8", d.dtype))
	}
	return d.Data()
}

// AsBool interprets the data as []bool.
// Panics if the array's dtype is not Bool.
func (d *Dense) AsBool() []bool {
	if d.dtype != Bool {
		panic(fmt.Sprintf("array dtype is %s, not bool", d.dtype))
	}
	if d.NumElements() == 0 {
		return nil
	}
	data := d.buffer[d.offset:]
	return unsafe.Slice((*bool)(unsafe.Pointer(&data[0])), d.NumElements())
}

// View returns a view of the whole array sharing the root's buffer.
func (d *Dense) View() *Dense {
	return &Dense{
		buffer:   d.buffer,
		base:     d.root(),
		shape:    d.shape.Clone(),
		stride:   append([]int(nil), d.stride...),
		dtype:    d.dtype,
		offset:   d.offset,
		readonly: d.readonly,
	}
}

// ReadonlyView returns a non-writeable view of the array.
func (d *Dense) ReadonlyView() *Dense {
	v := d.View()
	v.readonly = true
	return v
}

// Index returns a view of the i-th subarray along axis 0. The view drops
// the leading axis and shares storage with the root.
func (d *Dense) Index(i int) *Dense {
	if len(d.shape) == 0 {
		panic("cannot index a scalar array")
	}
	if i < 0 || i >= d.shape[0] {
		panic(fmt.Sprintf("index %d out of range for axis 0 with size %d", i, d.shape[0]))
	}

	v := d.View()
	v.offset += i * d.stride[0] * d.dtype.Size()
	v.shape = d.shape[1:].Clone()
	v.stride = append([]int(nil), d.stride[1:]...)
	return v
}

// Narrow returns a view of rows [start, start+n) along axis 0.
func (d *Dense) Narrow(start, n int) *Dense {
	if len(d.shape) == 0 {
		panic("cannot narrow a scalar array")
	}
	if start < 0 || n < 1 || start+n > d.shape[0] {
		panic(fmt.Sprintf("narrow [%d, %d) out of range for axis 0 with size %d", start, start+n, d.shape[0]))
	}

	v := d.View()
	v.offset += start * d.stride[0] * d.dtype.Size()
	v.shape = d.shape.Clone()
	v.shape[0] = n
	return v
}

// Reshape returns a view with a new shape over the same elements.
// The element count must be unchanged.
func (d *Dense) Reshape(newShape Shape) (*Dense, error) {
	if err := newShape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if newShape.NumElements() != d.NumElements() {
		return nil, fmt.Errorf("cannot reshape array with %d elements to shape %v (%d elements)",
			d.NumElements(), newShape, newShape.NumElements())
	}

	v := d.View()
	v.shape = newShape.Clone()
	v.stride = newShape.ComputeStrides()
	return v, nil
}

// withShape is Reshape for internal callers that already know the element
// counts match.
func (d *Dense) withShape(newShape Shape) *Dense {
	v, err := d.Reshape(newShape)
	if err != nil {
		panic(err)
	}
	return v
}

// Clone returns a deep copy owning fresh storage. The readonly flag is not
// inherited.
func (d *Dense) Clone() *Dense {
	out, err := NewDense(d.shape, d.dtype)
	if err != nil {
		panic(err) // source shape was already validated
	}
	copy(out.Data(), d.Data())
	return out
}

// flatIndex converts multi-axis indices to a flat element index, with
// bounds checks.
func (d *Dense) flatIndex(indices []int) int {
	if len(indices) != len(d.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(d.shape), len(indices)))
	}
	flat := 0
	for i, idx := range indices {
		if idx < 0 || idx >= d.shape[i] {
			panic(fmt.Sprintf("index %d out of range for axis %d with size %d", idx, i, d.shape[i]))
		}
		flat += idx * d.stride[i]
	}
	return flat
}

// Float64At returns the element at the given indices as a float64,
// converting from the array's dtype.
func (d *Dense) Float64At(indices ...int) float64 {
	return d.float64AtFlat(d.flatIndex(indices))
}

func (d *Dense) float64AtFlat(flat int) float64 {
	switch d.dtype {
	case Float64:
		return d.AsFloat64()[flat]
	case Float32:
		return float64(d.AsFloat32()[flat])
	case Int32:
		return float64(d.AsInt32()[flat])
	case Int64:
		return float64(d.AsInt64()[flat])
	case Uint8:
		return float64(d.AsUint8()[flat])
	default:
		panic(fmt.Sprintf("cannot read %s element as float64", d.dtype))
	}
}

// SetFloat64 stores a value at the given indices, converting to the array's
// dtype. Panics with ErrReadonly when the array is non-writeable.
func (d *Dense) SetFloat64(value float64, indices ...int) {
	if d.readonly {
		panic(ErrReadonly)
	}
	flat := d.flatIndex(indices)
	switch d.dtype {
	case Float64:
		d.AsFloat64()[flat] = value
	case Float32:
		d.AsFloat32()[flat] = float32(value)
	case Int32:
		d.AsInt32()[flat] = int32(value)
	case Int64:
		d.AsInt64()[flat] = int64(value)
	case Uint8:
		d.AsUint8()[flat] = uint8(value)
	default:
		panic(fmt.Sprintf("cannot store float64 into %s element", d.dtype))
	}
}

// Float64 unwraps a single-element array (rank 0, or all axes of size 1)
// into its value.
func (d *Dense) Float64() float64 {
	if d.NumElements() != 1 {
		panic(fmt.Sprintf("Float64 requires a single-element array, shape is %v", d.shape))
	}
	return d.float64AtFlat(0)
}

// String returns a short description of the array.
func (d *Dense) String() string {
	return fmt.Sprintf("Dense(shape=%v, dtype=%s)", d.shape, d.dtype)
}
