package tenalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhangyaqian0701/tensorly/internal/tensor"
)

func TestKronecker_Known(t *testing.T) {
	a := i64(t, []int64{1, 2, 3, 4}, 2, 2)
	b := i64(t, []int64{0, 1, 1, 0}, 2, 2)

	got, err := Kronecker([]*tensor.Tensor[int64, backendT]{a, b})
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{4, 4}, got.Shape())
	assert.Equal(t, []int64{
		0, 1, 0, 2,
		1, 0, 2, 0,
		0, 3, 0, 4,
		3, 0, 4, 0,
	}, got.Data())
}

func TestKronecker_Rectangular(t *testing.T) {
	a := i64(t, []int64{1, 2}, 1, 2)
	b := i64(t, []int64{1, 2, 3}, 3, 1)

	got, err := Kronecker([]*tensor.Tensor[int64, backendT]{a, b})
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{3, 2}, got.Shape())
	assert.Equal(t, []int64{1, 2, 2, 4, 3, 6}, got.Data())
}

func TestKronecker_Reverse(t *testing.T) {
	a := i64(t, []int64{1, 2, 3, 4}, 2, 2)
	b := i64(t, []int64{0, 1, 1, 0}, 2, 2)

	got, err := Kronecker([]*tensor.Tensor[int64, backendT]{a, b}, Reverse())
	require.NoError(t, err)

	want, err := Kronecker([]*tensor.Tensor[int64, backendT]{b, a})
	require.NoError(t, err)

	assert.Equal(t, want.Data(), got.Data())
}

func TestKronecker_SkipMatrix(t *testing.T) {
	a := i64(t, []int64{1, 2, 3, 4}, 2, 2)
	b := i64(t, []int64{9, 9, 9, 9}, 2, 2)
	c := i64(t, []int64{0, 1, 1, 0}, 2, 2)

	got, err := Kronecker([]*tensor.Tensor[int64, backendT]{a, b, c}, SkipMatrix(1))
	require.NoError(t, err)

	want, err := Kronecker([]*tensor.Tensor[int64, backendT]{a, c})
	require.NoError(t, err)

	assert.Equal(t, want.Shape(), got.Shape())
	assert.Equal(t, want.Data(), got.Data())
}

func TestKronecker_Single(t *testing.T) {
	a := i64(t, []int64{1, 2, 3, 4, 5, 6}, 2, 3)

	got, err := Kronecker([]*tensor.Tensor[int64, backendT]{a})
	require.NoError(t, err)

	assert.Equal(t, a.Shape(), got.Shape())
	assert.Equal(t, a.Data(), got.Data())
}

func TestKronecker_IdentityBlocks(t *testing.T) {
	i2, err := tensor.Eye[float64](2, testBackend)
	require.NoError(t, err)
	i3, err := tensor.Eye[float64](3, testBackend)
	require.NoError(t, err)

	got, err := Kronecker([]*tensor.Tensor[float64, backendT]{i2, i3})
	require.NoError(t, err)

	want, err := tensor.Eye[float64](6, testBackend)
	require.NoError(t, err)
	assert.Equal(t, want.Data(), got.Data())
}

func TestKronecker_Errors(t *testing.T) {
	t.Run("no matrices", func(t *testing.T) {
		_, err := Kronecker[float64, backendT](nil)
		assert.Error(t, err)
	})

	t.Run("everything skipped", func(t *testing.T) {
		a := i64(t, []int64{1}, 1, 1)
		_, err := Kronecker([]*tensor.Tensor[int64, backendT]{a}, SkipMatrix(0))
		assert.Error(t, err)
	})

	t.Run("non-matrix operand", func(t *testing.T) {
		v := i64(t, []int64{1, 2, 3}, 3)
		_, err := Kronecker([]*tensor.Tensor[int64, backendT]{v})
		assert.ErrorIs(t, err, ErrNotMatrix)
	})
}
