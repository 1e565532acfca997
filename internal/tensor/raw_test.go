package tensor

import "testing"

func TestNewRaw(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		raw, err := NewRaw(Shape{2, 3}, make([]byte, 24), Float32)
		if err != nil {
			t.Fatalf("NewRaw() error = %v", err)
		}
		if !raw.Shape().Equal(Shape{2, 3}) {
			t.Errorf("Shape() = %v, want [2 3]", raw.Shape())
		}
		if raw.DType() != Float32 {
			t.Errorf("DType() = %s, want float32", raw.DType())
		}
		if raw.NumElements() != 6 {
			t.Errorf("NumElements() = %d, want 6", raw.NumElements())
		}
	})

	t.Run("size mismatch", func(t *testing.T) {
		if _, err := NewRaw(Shape{2, 3}, make([]byte, 10), Float32); err == nil {
			t.Error("expected error for wrong buffer size")
		}
	})

	t.Run("invalid shape", func(t *testing.T) {
		if _, err := NewRaw(Shape{2, 0}, nil, Float32); err == nil {
			t.Error("expected error for zero dimension")
		}
	})
}

func TestNewRawZeros(t *testing.T) {
	raw, err := NewRawZeros(Shape{2, 2}, Int64)
	if err != nil {
		t.Fatalf("NewRawZeros() error = %v", err)
	}
	for i, v := range raw.AsInt64() {
		if v != 0 {
			t.Errorf("element %d = %d, want 0", i, v)
		}
	}
}

func TestRawClone(t *testing.T) {
	raw, err := NewRawZeros(Shape{4}, Float64)
	if err != nil {
		t.Fatalf("NewRawZeros() error = %v", err)
	}
	raw.AsFloat64()[0] = 1.5

	clone := raw.Clone()
	clone.AsFloat64()[0] = 9.0

	if got := raw.AsFloat64()[0]; got != 1.5 {
		t.Errorf("mutating the clone changed the original: got %v, want 1.5", got)
	}
}

func TestRawWithShape(t *testing.T) {
	raw, err := NewRawZeros(Shape{2, 6}, Float32)
	if err != nil {
		t.Fatalf("NewRawZeros() error = %v", err)
	}

	t.Run("shares buffer", func(t *testing.T) {
		view, err := raw.WithShape(Shape{3, 4})
		if err != nil {
			t.Fatalf("WithShape() error = %v", err)
		}
		view.AsFloat32()[0] = 7
		if got := raw.AsFloat32()[0]; got != 7 {
			t.Errorf("view does not share the buffer: got %v, want 7", got)
		}
	})

	t.Run("element count mismatch", func(t *testing.T) {
		if _, err := raw.WithShape(Shape{5}); err == nil {
			t.Error("expected error for element count change")
		}
	})
}

func TestRawTypedViewPanics(t *testing.T) {
	raw, err := NewRawZeros(Shape{2}, Float32)
	if err != nil {
		t.Fatalf("NewRawZeros() error = %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("AsInt32 on a float32 tensor should panic")
		}
	}()
	raw.AsInt32()
}

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
		str   string
	}{
		{Float32, 4, "float32"},
		{Float64, 8, "float64"},
		{Int32, 4, "int32"},
		{Int64, 8, "int64"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.dtype.Size(); got != tt.size {
				t.Errorf("Size() = %d, want %d", got, tt.size)
			}
			if got := tt.dtype.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}
