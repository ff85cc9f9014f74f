// Package array provides the dense N-dimensional array core for NumGrid.
package array

import "reflect"

// DataType represents runtime type information for array elements.
type DataType int

// Supported element types.
const (
	Float64 DataType = iota
	Float32
	Int32
	Int64
	Uint8
	Bool
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Uint8, Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// dataTypeOf maps a Go scalar kind to its DataType. The second result is
// false for kinds that cannot be stored in a Dense.
func dataTypeOf(k reflect.Kind) (DataType, bool) {
	switch k {
	case reflect.Float64:
		return Float64, true
	case reflect.Float32:
		return Float32, true
	case reflect.Int32:
		return Int32, true
	case reflect.Int, reflect.Int64:
		return Int64, true
	case reflect.Uint8:
		return Uint8, true
	case reflect.Bool:
		return Bool, true
	default:
		return 0, false
	}
}
