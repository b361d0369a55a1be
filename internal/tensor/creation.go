package tensor

import (
	"fmt"
	"math"
)

// SampleConfig carries the options forwarded to the random samplers.
//
// The zero value creates a CPU tensor that does not require gradients.
type SampleConfig struct {
	// Device the tensor must live on. It has to match the backend's device.
	Device Device

	// RequiresGrad marks the sampled tensor as a trainable parameter.
	RequiresGrad bool
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	raw, err := NewRaw(shape, DataTypeOf[T](), b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Rand creates a tensor with values drawn uniformly from [low, high).
//
// Example:
//
//	rng := tensor.NewGenerator(0)
//	w, err := tensor.Rand[float32](rng, Shape{784, 128}, -0.1, 0.1, backend, SampleConfig{})
func Rand[T Float, B Backend](rng *Generator, shape Shape, low, high float64, b B, cfg SampleConfig) (*Tensor[T, B], error) {
	if low > high || math.IsNaN(low) || math.IsNaN(high) {
		return nil, fmt.Errorf("rand: invalid bounds [%v, %v)", low, high)
	}
	return sample[T](rng, shape, b, cfg, func() float64 {
		return rng.Uniform(low, high)
	})
}

// Randn creates a tensor with values drawn from N(mean, std²).
//
// Example:
//
//	rng := tensor.NewGenerator(0)
//	w, err := tensor.Randn[float64](rng, Shape{100, 100}, 0, 1, backend, SampleConfig{})
func Randn[T Float, B Backend](rng *Generator, shape Shape, mean, std float64, b B, cfg SampleConfig) (*Tensor[T, B], error) {
	if std < 0 || math.IsNaN(std) || math.IsNaN(mean) {
		return nil, fmt.Errorf("randn: invalid parameters mean=%v std=%v", mean, std)
	}
	return sample[T](rng, shape, b, cfg, func() float64 {
		return rng.Normal(mean, std)
	})
}

// sample allocates a tensor and fills it in row-major order from draw.
func sample[T Float, B Backend](rng *Generator, shape Shape, b B, cfg SampleConfig, draw func() float64) (*Tensor[T, B], error) {
	if rng == nil {
		return nil, fmt.Errorf("sample: nil generator")
	}
	if cfg.Device != b.Device() {
		return nil, fmt.Errorf("sample: device %s not served by %s backend (%s)", cfg.Device, b.Name(), b.Device())
	}

	raw, err := NewRaw(shape, DataTypeOf[T](), b.Device())
	if err != nil {
		return nil, err
	}

	t := New[T, B](raw, b)
	data := t.Data()
	for i := range data {
		data[i] = T(draw())
	}

	if cfg.RequiresGrad {
		t.RequireGrad()
	}
	return t, nil
}
