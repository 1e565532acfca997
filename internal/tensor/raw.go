package tensor

import (
	"fmt"
	"unsafe"
)

// RawTensor is the type-erased tensor representation shared by all backends.
// It owns a contiguous row-major byte buffer plus shape and dtype metadata.
type RawTensor struct {
	data  []byte
	shape Shape
	dtype DataType
}

// NewRaw creates a RawTensor from raw bytes. The data length must match
// shape.NumElements() * dtype.Size() exactly.
func NewRaw(shape Shape, data []byte, dtype DataType) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	expectedSize := shape.NumElements() * dtype.Size()
	if len(data) != expectedSize {
		return nil, fmt.Errorf("data size mismatch: got %d bytes, expected %d for shape %v with dtype %s",
			len(data), expectedSize, shape, dtype)
	}

	return &RawTensor{
		data:  data,
		shape: shape.Clone(),
		dtype: dtype,
	}, nil
}

// NewRawZeros creates a zero-filled RawTensor with the given shape and dtype.
func NewRawZeros(shape Shape, dtype DataType) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	data := make([]byte, shape.NumElements()*dtype.Size())
	return &RawTensor{
		data:  data,
		shape: shape.Clone(),
		dtype: dtype,
	}, nil
}

// Shape returns the tensor's shape. The caller must not mutate it.
func (r *RawTensor) Shape() Shape { return r.shape }

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType { return r.dtype }

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int { return r.shape.NumElements() }

// Data returns the underlying byte buffer.
func (r *RawTensor) Data() []byte { return r.data }

// Clone returns a deep copy of the tensor.
func (r *RawTensor) Clone() *RawTensor {
	data := make([]byte, len(r.data))
	copy(data, r.data)
	return &RawTensor{
		data:  data,
		shape: r.shape.Clone(),
		dtype: r.dtype,
	}
}

// WithShape returns a tensor sharing this tensor's buffer under a new shape.
// The element count must be unchanged.
func (r *RawTensor) WithShape(shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != r.shape.NumElements() {
		return nil, fmt.Errorf("cannot view shape %v as %v: element count %d != %d",
			r.shape, shape, r.shape.NumElements(), shape.NumElements())
	}
	return &RawTensor{
		data:  r.data,
		shape: shape.Clone(),
		dtype: r.dtype,
	}, nil
}

// AsFloat32 returns the buffer viewed as []float32.
// Panics if the dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("AsFloat32 called on %s tensor", r.dtype))
	}
	if len(r.data) == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&r.data[0])), len(r.data)/4)
}

// AsFloat64 returns the buffer viewed as []float64.
// Panics if the dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("AsFloat64 called on %s tensor", r.dtype))
	}
	if len(r.data) == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&r.data[0])), len(r.data)/8)
}

// AsInt32 returns the buffer viewed as []int32.
// Panics if the dtype is not Int32.
func (r *RawTensor) AsInt32() []int32 {
	if r.dtype != Int32 {
		panic(fmt.Sprintf("AsInt32 called on %s tensor", r.dtype))
	}
	if len(r.data) == 0 {
		return nil
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(&r.data[0])), len(r.data)/4)
}

// AsInt64 returns the buffer viewed as []int64.
// Panics if the dtype is not Int64.
func (r *RawTensor) AsInt64() []int64 {
	if r.dtype != Int64 {
		panic(fmt.Sprintf("AsInt64 called on %s tensor", r.dtype))
	}
	if len(r.data) == 0 {
		return nil
	}
	return unsafe.Slice((*int64)(unsafe.Pointer(&r.data[0])), len(r.data)/8)
}

// String returns a short description of the tensor.
func (r *RawTensor) String() string {
	return fmt.Sprintf("RawTensor(shape=%v, dtype=%s)", r.shape, r.dtype)
}
