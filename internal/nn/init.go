// Package nn implements weight initialization for neural network layers.
//
// The initializers are plain functions, not objects: each takes the layer's
// fan-in and fan-out and returns a freshly sampled (fanIn, fanOut) tensor
// whose ownership passes to the caller. Randomness comes from an explicit
// *tensor.Generator so results are reproducible under a fixed seed.
//
//   - XavierUniform / XavierNormal: Glorot scaling for tanh/sigmoid layers
//   - KaimingUniform / KaimingNormal: He scaling for ReLU layers
package nn

import (
	"math"

	errs "github.com/born-ml/needle/internal/errors"
	"github.com/born-ml/needle/internal/tensor"
)

// Nonlinearity names the activation that follows the initialized layer.
type Nonlinearity string

// Supported nonlinearities.
const (
	ReLU Nonlinearity = "relu"
)

// Config replaces per-call keyword options for the initializers.
//
// The zero value selects the defaults: gain 1.0, ReLU, CPU, no gradients.
type Config struct {
	// Gain scales the Xavier bound or standard deviation. nil selects 1.0;
	// an explicit 0 yields all-zero weights.
	// Ignored by the Kaiming initializers, which fix gain at sqrt(2).
	Gain *float64

	// Nonlinearity is checked by the Kaiming initializers. "" selects ReLU.
	Nonlinearity Nonlinearity

	// Sample is forwarded untouched to the tensor samplers.
	Sample tensor.SampleConfig
}

// Gain returns a pointer to v for use in Config.
//
//	w, err := nn.XavierUniform[float32](rng, 784, 128, backend, nn.Config{Gain: nn.Gain(0.5)})
func Gain(v float64) *float64 {
	return &v
}

func (c Config) gain() float64 {
	if c.Gain == nil {
		return 1.0
	}
	return *c.Gain
}

func (c Config) nonlinearity() Nonlinearity {
	if c.Nonlinearity == "" {
		return ReLU
	}
	return c.Nonlinearity
}

// kaimingGain is the recommended gain for ReLU.
var kaimingGain = math.Sqrt2

// XavierUniform (Glorot) initialization.
//
// Initializes weights with values drawn from a uniform distribution:
// U(-a, a) where a = gain * sqrt(6/(fan_in + fan_out))
//
// Parameters:
//   - rng: Random source
//   - fanIn: Number of input units
//   - fanOut: Number of output units
//   - backend: Backend to use for tensor creation
//   - cfg: Gain and sampler options
//
// Returns a (fanIn, fanOut) tensor.
func XavierUniform[T tensor.Float, B tensor.Backend](rng *tensor.Generator, fanIn, fanOut int, backend B, cfg Config) (*tensor.Tensor[T, B], error) {
	if err := checkFans(fanIn, fanOut); err != nil {
		return nil, err
	}
	a := cfg.gain() * math.Sqrt(6.0/float64(fanIn+fanOut))
	return uniform[T](rng, fanIn, fanOut, a, backend, cfg.Sample)
}

// XavierNormal (Glorot) initialization.
//
// Initializes weights with values drawn from N(0, std²) where
// std = gain * sqrt(2/(fan_in + fan_out)).
func XavierNormal[T tensor.Float, B tensor.Backend](rng *tensor.Generator, fanIn, fanOut int, backend B, cfg Config) (*tensor.Tensor[T, B], error) {
	if err := checkFans(fanIn, fanOut); err != nil {
		return nil, err
	}
	std := cfg.gain() * math.Sqrt(2.0/float64(fanIn+fanOut))
	return normal[T](rng, fanIn, fanOut, std, backend, cfg.Sample)
}

// KaimingUniform (He) initialization.
//
// Initializes weights with values drawn from U(-bound, bound) where
// bound = sqrt(2) * sqrt(3/fan_in). Only ReLU is supported.
func KaimingUniform[T tensor.Float, B tensor.Backend](rng *tensor.Generator, fanIn, fanOut int, backend B, cfg Config) (*tensor.Tensor[T, B], error) {
	if err := checkNonlinearity(cfg.nonlinearity()); err != nil {
		return nil, err
	}
	if err := checkFans(fanIn, fanOut); err != nil {
		return nil, err
	}
	bound := kaimingGain * math.Sqrt(3.0/float64(fanIn))
	return uniform[T](rng, fanIn, fanOut, bound, backend, cfg.Sample)
}

// KaimingNormal (He) initialization.
//
// Initializes weights with values drawn from N(0, std²) where
// std = sqrt(2) / sqrt(fan_in). Only ReLU is supported.
func KaimingNormal[T tensor.Float, B tensor.Backend](rng *tensor.Generator, fanIn, fanOut int, backend B, cfg Config) (*tensor.Tensor[T, B], error) {
	if err := checkNonlinearity(cfg.nonlinearity()); err != nil {
		return nil, err
	}
	if err := checkFans(fanIn, fanOut); err != nil {
		return nil, err
	}
	std := kaimingGain / math.Sqrt(float64(fanIn))
	return normal[T](rng, fanIn, fanOut, std, backend, cfg.Sample)
}

// Zeros creates a tensor filled with zeros.
//
// This is commonly used for bias initialization.
func Zeros[T tensor.Float, B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[T, B] {
	return tensor.Zeros[T](shape, backend)
}

func checkFans(fanIn, fanOut int) error {
	if fanIn <= 0 || fanOut <= 0 {
		return errs.New(errs.ErrCodeInvalidInput, "fan_in and fan_out must be positive, got (%d, %d)", fanIn, fanOut)
	}
	return nil
}

func checkNonlinearity(n Nonlinearity) error {
	if n != ReLU {
		return errs.New(errs.ErrCodeUnsupported, "only relu supported currently, got %q", string(n))
	}
	return nil
}

func checkSampler[B tensor.Backend](rng *tensor.Generator, backend B, cfg tensor.SampleConfig) error {
	if rng == nil {
		return errs.New(errs.ErrCodeInvalidInput, "nil random generator")
	}
	if cfg.Device != backend.Device() {
		return errs.New(errs.ErrCodeUnsupported, "device %s not served by %s backend", cfg.Device, backend.Name())
	}
	return nil
}

func uniform[T tensor.Float, B tensor.Backend](rng *tensor.Generator, fanIn, fanOut int, bound float64, backend B, cfg tensor.SampleConfig) (*tensor.Tensor[T, B], error) {
	if err := checkSampler(rng, backend, cfg); err != nil {
		return nil, err
	}
	w, err := tensor.Rand[T](rng, tensor.Shape{fanIn, fanOut}, -bound, bound, backend, cfg)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "uniform(%v, %v)", -bound, bound)
	}
	return w, nil
}

func normal[T tensor.Float, B tensor.Backend](rng *tensor.Generator, fanIn, fanOut int, std float64, backend B, cfg tensor.SampleConfig) (*tensor.Tensor[T, B], error) {
	if err := checkSampler(rng, backend, cfg); err != nil {
		return nil, err
	}
	w, err := tensor.Randn[T](rng, tensor.Shape{fanIn, fanOut}, 0, std, backend, cfg)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "normal(0, %v)", std)
	}
	return w, nil
}
