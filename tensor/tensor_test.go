// Copyright 2025 The Tensorly Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/zhangyaqian0701/tensorly/internal/backend/cpu"
	"github.com/zhangyaqian0701/tensorly/tensor"
)

// TestBackendInterface verifies that cpu.CPUBackend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.CPUBackend)(nil)
}

// TestRawTensorAPI verifies the RawTensor type alias exposes the expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRawZeros(tensor.Shape{2, 3}, tensor.Float64)
	if err != nil {
		t.Fatalf("NewRawZeros failed: %v", err)
	}

	if !raw.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", raw.Shape())
	}
	if raw.DType() != tensor.Float64 {
		t.Errorf("DType() = %v, want Float64", raw.DType())
	}
	if raw.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", raw.NumElements())
	}

	clone := raw.Clone()
	if clone == nil {
		t.Fatal("Clone() returned nil")
	}
	clone.AsFloat64()[0] = 5
	if raw.AsFloat64()[0] != 0 {
		t.Error("Clone() shares the buffer, want a deep copy")
	}
}

// TestPublicRoundTrip drives the tensor API end to end through the facade.
func TestPublicRoundTrip(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.Arange[float64](24, backend)
	if err != nil {
		t.Fatalf("Arange failed: %v", err)
	}
	cube := x.Reshape(3, 4, 2)

	m := tensor.Unfold(cube, 1)
	if !m.Shape().Equal(tensor.Shape{4, 6}) {
		t.Fatalf("Unfold shape = %v, want [4 6]", m.Shape())
	}

	back := tensor.Fold(m, 1, tensor.Shape{3, 4, 2})
	for i, v := range back.Data() {
		if v != cube.Data()[i] {
			t.Fatalf("Fold(Unfold(t)) mismatch at %d: got %v want %v", i, v, cube.Data()[i])
		}
	}

	v := tensor.ToVec(cube)
	if !v.Shape().Equal(tensor.Shape{24}) {
		t.Fatalf("ToVec shape = %v, want [24]", v.Shape())
	}
	for i, got := range v.Data() {
		if got != float64(i) {
			t.Fatalf("ToVec[%d] = %v, want %v", i, got, float64(i))
		}
	}
}
