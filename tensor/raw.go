// Copyright 2025 The Tensorly Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/zhangyaqian0701/tensorly/internal/tensor"
)

// RawTensor is the low-level tensor representation.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType()
//   - Type-safe data access via AsFloat64(), AsInt64(), etc.
//   - Deep copies via Clone() and shared-buffer views via WithShape()
//
// Most users should use the high-level Tensor[T, B] type instead.
//
// Example:
//
//	raw, _ := tensor.NewRawZeros(tensor.Shape{2, 3}, tensor.Float64)
//	data := raw.AsFloat64()  // Type-safe access
//	view, _ := raw.WithShape(tensor.Shape{6})
type RawTensor = tensor.RawTensor

// NewRaw creates a raw tensor over the given byte buffer.
//
// This is a low-level function. Most users should use high-level
// creation functions instead.
func NewRaw(shape Shape, data []byte, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, data, dtype)
}

// NewRawZeros creates a zero-filled raw tensor with the given shape and
// dtype.
func NewRawZeros(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRawZeros(shape, dtype)
}
