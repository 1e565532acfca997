package tensor

import (
	"fmt"
	"strings"
	"unsafe"
)

// Tensor is a generic, type-safe view over a RawTensor, bound to a backend.
// The element type is fixed at compile time; the raw dtype always matches T.
type Tensor[T DType, B Backend] struct {
	raw     *RawTensor
	backend B
}

// New wraps an existing RawTensor. The raw tensor's dtype must match T.
func New[T DType, B Backend](raw *RawTensor, backend B) (*Tensor[T, B], error) {
	if want := dataTypeOf[T](); raw.DType() != want {
		return nil, fmt.Errorf("dtype mismatch: element type is %s but raw tensor holds %s", want, raw.DType())
	}
	return &Tensor[T, B]{raw: raw, backend: backend}, nil
}

// FromSlice creates a tensor from a flat slice in row-major order.
// The data is copied.
func FromSlice[T DType, B Backend](data []T, shape Shape, backend B) (*Tensor[T, B], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}

	dtype := dataTypeOf[T]()
	buf := make([]byte, len(data)*dtype.Size())
	if len(data) > 0 {
		copy(buf, unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(buf)))
	}

	raw, err := NewRaw(shape, buf, dtype)
	if err != nil {
		return nil, err
	}
	return &Tensor[T, B]{raw: raw, backend: backend}, nil
}

// fromRaw wraps a backend result without re-checking the dtype.
func fromRaw[T DType, B Backend](raw *RawTensor, backend B) *Tensor[T, B] {
	return &Tensor[T, B]{raw: raw, backend: backend}
}

// Shape returns the tensor's shape. The caller must not mutate it.
func (t *Tensor[T, B]) Shape() Shape { return t.raw.Shape() }

// NDim returns the number of modes.
func (t *Tensor[T, B]) NDim() int { return len(t.raw.Shape()) }

// DType returns the runtime data type.
func (t *Tensor[T, B]) DType() DataType { return t.raw.DType() }

// NumElements returns the total number of elements.
func (t *Tensor[T, B]) NumElements() int { return t.raw.NumElements() }

// Raw returns the underlying raw tensor.
func (t *Tensor[T, B]) Raw() *RawTensor { return t.raw }

// Backend returns the backend the tensor is bound to.
func (t *Tensor[T, B]) Backend() B { return t.backend }

// Data returns the elements as a typed slice sharing the tensor's buffer.
// Mutating the slice mutates the tensor.
func (t *Tensor[T, B]) Data() []T {
	data := t.raw.Data()
	if len(data) == 0 {
		return nil
	}
	size := dataTypeOf[T]().Size()
	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), len(data)/size)
}

// At returns the element at the given multi-index.
// Panics if the number of indices or any index is out of range.
func (t *Tensor[T, B]) At(indices ...int) T {
	return t.Data()[t.flatIndex(indices)]
}

// Set stores value at the given multi-index.
// Panics if the number of indices or any index is out of range.
func (t *Tensor[T, B]) Set(value T, indices ...int) {
	t.Data()[t.flatIndex(indices)] = value
}

func (t *Tensor[T, B]) flatIndex(indices []int) int {
	shape := t.raw.Shape()
	if len(indices) != len(shape) {
		panic(fmt.Sprintf("index: got %d indices for %d-mode tensor", len(indices), len(shape)))
	}
	strides := shape.ComputeStrides()
	flat := 0
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			panic(fmt.Sprintf("index: index %d out of range for mode %d with size %d", idx, i, shape[i]))
		}
		flat += idx * strides[i]
	}
	return flat
}

// Clone returns a deep copy of the tensor.
func (t *Tensor[T, B]) Clone() *Tensor[T, B] {
	return &Tensor[T, B]{raw: t.raw.Clone(), backend: t.backend}
}

// String returns a short description, including the elements for small tensors.
func (t *Tensor[T, B]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tensor(shape=%v, dtype=%s, backend=%s", t.raw.Shape(), t.raw.DType(), t.backend.Name())
	if n := t.raw.NumElements(); n <= 32 {
		fmt.Fprintf(&sb, ", data=%v", t.Data())
	}
	sb.WriteString(")")
	return sb.String()
}
