package tucker

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhangyaqian0701/tensorly/internal/backend/cpu"
	"github.com/zhangyaqian0701/tensorly/internal/tensor"
)

type backendT = *cpu.CPUBackend

var testBackend = cpu.New()

func f64(t *testing.T, data []float64, shape ...int) *tensor.Tensor[float64, backendT] {
	t.Helper()
	tn, err := tensor.FromSlice(data, tensor.Shape(shape), testBackend)
	require.NoError(t, err)
	return tn
}

func i64(t *testing.T, data []int64, shape ...int) *tensor.Tensor[int64, backendT] {
	t.Helper()
	tn, err := tensor.FromSlice(data, tensor.Shape(shape), testBackend)
	require.NoError(t, err)
	return tn
}

func randF64(t *testing.T, rng *rand.Rand, shape ...int) *tensor.Tensor[float64, backendT] {
	t.Helper()
	tn, err := tensor.Rand[float64](tensor.Shape(shape), rng, testBackend)
	require.NoError(t, err)
	return tn
}

// randomTucker draws a random core of the given rank plus one factor of
// shape (shape[i], rank[i]) per mode.
func randomTucker(t *testing.T, rng *rand.Rand, shape, rank []int) (*tensor.Tensor[float64, backendT], []*tensor.Tensor[float64, backendT]) {
	t.Helper()
	require.Equal(t, len(shape), len(rank))
	core := randF64(t, rng, rank...)
	factors := make([]*tensor.Tensor[float64, backendT], len(shape))
	for i := range shape {
		factors[i] = randF64(t, rng, shape[i], rank[i])
	}
	return core, factors
}

func TestValidate(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	trueShape := []int{3, 4, 5}
	trueRank := []int{3, 2, 4}
	core, factors := randomTucker(t, rng, trueShape, trueRank)

	shape, rank, err := Validate(core, factors)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape(trueShape), shape)
	assert.Equal(t, tensor.Shape(trueRank), rank)
}

func TestValidate_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	core, factors := randomTucker(t, rng, []int{3, 4, 5}, []int{3, 2, 4})

	t.Run("wrong rank", func(t *testing.T) {
		bad := append([]*tensor.Tensor[float64, backendT]{randF64(t, rng, 4, 4)}, factors[1:]...)
		_, _, err := Validate(core, bad)
		require.ErrorIs(t, err, ErrRankMismatch)
		assert.Contains(t, err.Error(), "factors[0] has 4 columns")
		assert.Contains(t, err.Error(), "core mode 0 has extent 3")
	})

	t.Run("missing factor", func(t *testing.T) {
		_, _, err := Validate(core, factors[1:])
		require.ErrorIs(t, err, ErrFactorCount)
	})

	t.Run("single factor", func(t *testing.T) {
		_, _, err := Validate(core, factors[:1])
		require.ErrorIs(t, err, ErrTooFewFactors)
	})

	t.Run("no factors", func(t *testing.T) {
		_, _, err := Validate(core, nil)
		require.ErrorIs(t, err, ErrTooFewFactors)
	})

	t.Run("factor not a matrix", func(t *testing.T) {
		bad := append([]*tensor.Tensor[float64, backendT]{}, factors...)
		bad[1] = randF64(t, rng, 4, 2, 1)
		_, _, err := Validate(core, bad)
		require.ErrorIs(t, err, ErrFactorShape)
		assert.Contains(t, err.Error(), "factors[1]")
	})
}

func TestNew(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	core, factors := randomTucker(t, rng, []int{5, 4, 3}, []int{2, 3, 2})

	d, err := New(core, factors)
	require.NoError(t, err)
	shape, rank, err := d.Validate()
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{5, 4, 3}, shape)
	assert.Equal(t, tensor.Shape{2, 3, 2}, rank)

	_, err = New(core, factors[:1])
	assert.ErrorIs(t, err, ErrTooFewFactors)
}
