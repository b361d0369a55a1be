// Package tensor provides the core tensor types and the array primitives used by
// the augmentation and initialization packages.
package tensor

// DType is a constraint for supported tensor data types.
// It uses Go generics to ensure compile-time type safety.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// Float is the subset of DType that random samplers can fill.
type Float interface {
	~float32 | ~float64
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Uint8
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Uint8:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	default:
		return "unknown"
	}
}

// ParseDataType maps a dtype name ("float32", "uint8", ...) back to a DataType.
func ParseDataType(name string) (DataType, bool) {
	for _, dt := range []DataType{Float32, Float64, Int32, Int64, Uint8} {
		if dt.String() == name {
			return dt, true
		}
	}
	return 0, false
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	default:
		panic("unsupported type")
	}
}

// DataTypeOf returns the runtime DataType for T.
func DataTypeOf[T DType]() DataType {
	var dummy T
	return inferDataType(dummy)
}
