package tensor

import (
	"fmt"
	"math/rand"
)

// Zeros creates a zero-filled tensor with the given shape.
func Zeros[T DType, B Backend](shape Shape, backend B) (*Tensor[T, B], error) {
	raw, err := NewRawZeros(shape, dataTypeOf[T]())
	if err != nil {
		return nil, err
	}
	return &Tensor[T, B]{raw: raw, backend: backend}, nil
}

// Ones creates a one-filled tensor with the given shape.
func Ones[T DType, B Backend](shape Shape, backend B) (*Tensor[T, B], error) {
	return Full(shape, T(1), backend)
}

// Full creates a tensor with every element set to value.
func Full[T DType, B Backend](shape Shape, value T, backend B) (*Tensor[T, B], error) {
	t, err := Zeros[T](shape, backend)
	if err != nil {
		return nil, err
	}
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t, nil
}

// Arange creates a 1-D tensor holding 0, 1, ..., n-1.
func Arange[T DType, B Backend](n int, backend B) (*Tensor[T, B], error) {
	if n <= 0 {
		return nil, fmt.Errorf("arange: n must be > 0, got %d", n)
	}
	t, err := Zeros[T](Shape{n}, backend)
	if err != nil {
		return nil, err
	}
	data := t.Data()
	for i := range data {
		data[i] = T(i)
	}
	return t, nil
}

// Eye creates the n x n identity matrix.
func Eye[T DType, B Backend](n int, backend B) (*Tensor[T, B], error) {
	t, err := Zeros[T](Shape{n, n}, backend)
	if err != nil {
		return nil, err
	}
	data := t.Data()
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}
	return t, nil
}

// Rand creates a tensor filled with uniform values in [0, 1) drawn from rng.
func Rand[T Float, B Backend](shape Shape, rng *rand.Rand, backend B) (*Tensor[T, B], error) {
	t, err := Zeros[T](shape, backend)
	if err != nil {
		return nil, err
	}
	data := t.Data()
	for i := range data {
		data[i] = T(rng.Float64())
	}
	return t, nil
}
