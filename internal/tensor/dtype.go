// Package tensor provides the core dense tensor types for the tensorly module.
package tensor

// DType is a constraint for supported tensor element types.
// Tucker cores and factors are numeric; the float types cover the usual
// decomposition work, the integer types allow exact arithmetic.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64
}

// Float is the floating-point subset of DType. Operations that produce
// fractional values, such as random initialization, are restricted to it.
type Float interface {
	~float32 | ~float64
}

// DataType tags a RawTensor's element type at runtime.
type DataType int

// Supported element types for tensors.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
)

var (
	dataTypeSizes = [...]int{Float32: 4, Float64: 8, Int32: 4, Int64: 8}
	dataTypeNames = [...]string{Float32: "float32", Float64: "float64", Int32: "int32", Int64: "int64"}
)

// Size returns the width of one element in bytes.
func (dt DataType) Size() int {
	if dt < 0 || int(dt) >= len(dataTypeSizes) {
		panic("tensor: unknown data type")
	}
	return dataTypeSizes[dt]
}

// String returns the type's name, e.g. "float64".
func (dt DataType) String() string {
	if dt < 0 || int(dt) >= len(dataTypeNames) {
		return "unknown"
	}
	return dataTypeNames[dt]
}

// dataTypeOf maps the compile-time element type T to its runtime tag.
func dataTypeOf[T DType]() DataType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	default:
		panic("tensor: unsupported element type")
	}
}
