package nn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/born-ml/needle/internal/backend/cpu"
	errs "github.com/born-ml/needle/internal/errors"
	"github.com/born-ml/needle/internal/nn"
	"github.com/born-ml/needle/internal/tensor"
)

func TestXavierUniform_Bounds(t *testing.T) {
	backend := cpu.New()
	rng := tensor.NewGenerator(0)

	w, err := nn.XavierUniform[float64](rng, 6, 4, backend, nn.Config{})
	require.NoError(t, err)

	a := math.Sqrt(6.0 / 10.0)
	assert.InDelta(t, 0.7746, a, 1e-4)
	assert.Equal(t, tensor.Shape{6, 4}, w.Shape())
	for _, v := range w.Data() {
		assert.GreaterOrEqual(t, v, -a)
		assert.LessOrEqual(t, v, a)
	}
}

func TestXavierUniform_GainScalesBound(t *testing.T) {
	backend := cpu.New()
	rng := tensor.NewGenerator(1)

	w, err := nn.XavierUniform[float64](rng, 50, 50, backend, nn.Config{Gain: nn.Gain(0.5)})
	require.NoError(t, err)

	a := 0.5 * math.Sqrt(6.0/100.0)
	data := w.Data()
	assert.GreaterOrEqual(t, floats.Min(data), -a)
	assert.LessOrEqual(t, floats.Max(data), a)
	// With 2500 draws the extremes get close to the bound.
	assert.Greater(t, floats.Max(data), 0.9*a)
}

func TestXavierNormal_Std(t *testing.T) {
	backend := cpu.New()
	rng := tensor.NewGenerator(2)

	w, err := nn.XavierNormal[float64](rng, 300, 100, backend, nn.Config{Gain: nn.Gain(2)})
	require.NoError(t, err)

	mean, std := stat.MeanStdDev(w.Data(), nil)
	assert.InDelta(t, 0, mean, 0.01)
	assert.InDelta(t, 2*math.Sqrt(2.0/400.0), std, 0.005)
}

func TestKaimingUniform_Bounds(t *testing.T) {
	backend := cpu.New()
	rng := tensor.NewGenerator(3)

	w, err := nn.KaimingUniform[float32](rng, 4, 8, backend, nn.Config{})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{4, 8}, w.Shape())

	bound := float32(math.Sqrt2 * math.Sqrt(3.0/4.0))
	for _, v := range w.Data() {
		assert.GreaterOrEqual(t, v, -bound)
		assert.LessOrEqual(t, v, bound)
	}
}

func TestKaimingNormal_Std(t *testing.T) {
	backend := cpu.New()
	rng := tensor.NewGenerator(4)

	w, err := nn.KaimingNormal[float64](rng, 200, 100, backend, nn.Config{Nonlinearity: nn.ReLU})
	require.NoError(t, err)

	_, std := stat.MeanStdDev(w.Data(), nil)
	assert.InDelta(t, math.Sqrt2/math.Sqrt(200), std, 0.003)
}

func TestKaiming_UnsupportedNonlinearity(t *testing.T) {
	backend := cpu.New()
	rng := tensor.NewGenerator(5)

	_, err := nn.KaimingUniform[float32](rng, 4, 8, backend, nn.Config{Nonlinearity: "tanh"})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrCodeUnsupported))
	assert.Contains(t, err.Error(), "only relu supported")

	_, err = nn.KaimingNormal[float32](rng, 4, 8, backend, nn.Config{Nonlinearity: "leaky_relu"})
	assert.True(t, errs.Is(err, errs.ErrCodeUnsupported))
}

func TestInitializers_InvalidInput(t *testing.T) {
	backend := cpu.New()
	rng := tensor.NewGenerator(6)

	for _, name := range nn.Names() {
		initFn, err := nn.Lookup[float32, *cpu.CPUBackend](name)
		require.NoError(t, err)

		t.Run(name, func(t *testing.T) {
			_, err := initFn(rng, 0, 4, backend, nn.Config{})
			assert.True(t, errs.Is(err, errs.ErrCodeInvalidInput), "fan_in=0: %v", err)

			_, err = initFn(rng, 4, -1, backend, nn.Config{})
			assert.True(t, errs.Is(err, errs.ErrCodeInvalidInput), "fan_out=-1: %v", err)

			_, err = initFn(nil, 4, 4, backend, nn.Config{})
			assert.True(t, errs.Is(err, errs.ErrCodeInvalidInput), "nil rng: %v", err)

			_, err = initFn(rng, 4, 4, backend, nn.Config{Sample: tensor.SampleConfig{Device: tensor.CUDA}})
			assert.True(t, errs.Is(err, errs.ErrCodeUnsupported), "device: %v", err)
		})
	}
}

func TestXavier_ZeroGainGivesZeroWeights(t *testing.T) {
	backend := cpu.New()
	rng := tensor.NewGenerator(8)

	u, err := nn.XavierUniform[float64](rng, 5, 3, backend, nn.Config{Gain: nn.Gain(0)})
	require.NoError(t, err)
	n, err := nn.XavierNormal[float32](rng, 5, 3, backend, nn.Config{Gain: nn.Gain(0)})
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{5, 3}, u.Shape())
	for _, v := range u.Data() {
		assert.Zero(t, v)
	}
	for _, v := range n.Data() {
		assert.Zero(t, v)
	}
}

func TestXavier_NilGainDefaultsToOne(t *testing.T) {
	backend := cpu.New()

	a, err := nn.XavierUniform[float64](tensor.NewGenerator(4), 6, 4, backend, nn.Config{})
	require.NoError(t, err)
	b, err := nn.XavierUniform[float64](tensor.NewGenerator(4), 6, 4, backend, nn.Config{Gain: nn.Gain(1)})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
}

func TestXavier_NegativeGainRejected(t *testing.T) {
	backend := cpu.New()
	rng := tensor.NewGenerator(7)

	_, err := nn.XavierUniform[float32](rng, 4, 4, backend, nn.Config{Gain: nn.Gain(-1)})
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidInput))

	_, err = nn.XavierNormal[float32](rng, 4, 4, backend, nn.Config{Gain: nn.Gain(-1)})
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidInput))
}

func TestInitializers_DeterministicUnderSeed(t *testing.T) {
	backend := cpu.New()

	for _, name := range nn.Names() {
		t.Run(name, func(t *testing.T) {
			initFn, err := nn.Lookup[float32, *cpu.CPUBackend](name)
			require.NoError(t, err)

			a, err := initFn(tensor.NewGenerator(1234), 16, 32, backend, nn.Config{})
			require.NoError(t, err)
			b, err := initFn(tensor.NewGenerator(1234), 16, 32, backend, nn.Config{})
			require.NoError(t, err)
			c, err := initFn(tensor.NewGenerator(4321), 16, 32, backend, nn.Config{})
			require.NoError(t, err)

			assert.Equal(t, a.Data(), b.Data(), "same seed must be bit-identical")
			assert.NotEqual(t, a.Data(), c.Data())
		})
	}
}

func TestInitializers_SampleConfigForwarded(t *testing.T) {
	backend := cpu.New()
	rng := tensor.NewGenerator(8)

	w, err := nn.XavierNormal[float32](rng, 3, 5, backend, nn.Config{Sample: tensor.SampleConfig{RequiresGrad: true}})
	require.NoError(t, err)
	assert.True(t, w.RequiresGrad())
	assert.Equal(t, tensor.CPU, w.Device())
}

func TestZeros(t *testing.T) {
	b := nn.Zeros[float32](tensor.Shape{8}, cpu.New())
	assert.Equal(t, make([]float32, 8), b.Data())
}
