package data_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/needle/internal/backend/cpu"
	"github.com/born-ml/needle/internal/data"
	errs "github.com/born-ml/needle/internal/errors"
	"github.com/born-ml/needle/internal/tensor"
)

func TestRandomFlipHorizontal_NeverFlipsAtZero(t *testing.T) {
	rng := tensor.NewGenerator(1)
	flip, err := data.NewRandomFlipHorizontal[float32, *cpu.CPUBackend](0, rng)
	require.NoError(t, err)

	img := rampImage(t, 3, 4, 2)
	for i := 0; i < 50; i++ {
		out, err := flip.Apply(img)
		require.NoError(t, err)
		assert.True(t, out.Equal(img))
	}
}

func TestRandomFlipHorizontal_AlwaysFlipsAtOne(t *testing.T) {
	rng := tensor.NewGenerator(2)
	flip, err := data.NewRandomFlipHorizontal[float32, *cpu.CPUBackend](1, rng)
	require.NoError(t, err)

	img := rampImage(t, 3, 4, 2)
	for n := 0; n < 20; n++ {
		out, err := flip.Apply(img)
		require.NoError(t, err)
		require.Equal(t, img.Shape(), out.Shape())
		for i := 0; i < 3; i++ {
			for j := 0; j < 4; j++ {
				for c := 0; c < 2; c++ {
					require.Equal(t, img.At(i, 3-j, c), out.At(i, j, c))
				}
			}
		}
	}
	assert.Equal(t, float32(1), img.At(0, 0, 0), "input must stay untouched")
}

func TestRandomFlipHorizontal_ThresholdIsStrict(t *testing.T) {
	img := rampImage(t, 2, 3, 1)

	atThreshold := &scriptedSource{uniform: 0.5}
	flip, err := data.NewRandomFlipHorizontal[float32, *cpu.CPUBackend](0.5, atThreshold)
	require.NoError(t, err)
	out, err := flip.Apply(img)
	require.NoError(t, err)
	assert.Same(t, img, out, "u == p must not flip")

	below := &scriptedSource{uniform: 0.49}
	flip, err = data.NewRandomFlipHorizontal[float32, *cpu.CPUBackend](0.5, below)
	require.NoError(t, err)
	out, err = flip.Apply(img)
	require.NoError(t, err)
	assert.True(t, out.Equal(img.Flip(1)))
	assert.Equal(t, 1, below.uniforms, "one draw per call")
}

func TestRandomFlipHorizontal_Frequency(t *testing.T) {
	rng := tensor.NewGenerator(3)
	flip, err := data.NewRandomFlipHorizontal[float32, *cpu.CPUBackend](data.DefaultFlipProbability, rng)
	require.NoError(t, err)

	img := rampImage(t, 1, 2, 1)
	flips := 0
	for i := 0; i < 4000; i++ {
		out, err := flip.Apply(img)
		require.NoError(t, err)
		if out != img {
			flips++
		}
	}
	assert.InDelta(t, 2000, flips, 150)
}

func TestRandomFlipHorizontal_Validation(t *testing.T) {
	rng := tensor.NewGenerator(4)

	for _, p := range []float64{-0.1, 1.01, math.NaN()} {
		_, err := data.NewRandomFlipHorizontal[float32, *cpu.CPUBackend](p, rng)
		assert.True(t, errs.Is(err, errs.ErrCodeInvalidInput), "p=%v", p)
	}

	_, err := data.NewRandomFlipHorizontal[float32, *cpu.CPUBackend](0.5, nil)
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidInput))

	flip, err := data.NewRandomFlipHorizontal[float32, *cpu.CPUBackend](0.5, rng)
	require.NoError(t, err)
	assert.Equal(t, 0.5, flip.P())

	m, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, cpu.New())
	require.NoError(t, err)
	_, err = flip.Apply(m)
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidShape))

	_, err = flip.Apply(nil)
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidInput))
}
