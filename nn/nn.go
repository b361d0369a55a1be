// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/needle/internal/nn"
	"github.com/born-ml/needle/tensor"
)

// Nonlinearity names the activation an initializer is tuned for.
type Nonlinearity = nn.Nonlinearity

// ReLU is the only nonlinearity accepted by the Kaiming initializers.
const ReLU = nn.ReLU

// Config holds the optional initializer settings.
//
// The zero value selects gain 1.0, ReLU, and a CPU tensor without gradients.
// Set Gain with nn.Gain(v); an explicit zero gain produces all-zero weights.
type Config = nn.Config

// Gain returns a pointer to v for Config.Gain. A nil gain selects 1.0.
func Gain(v float64) *float64 {
	return nn.Gain(v)
}

// InitFunc is the common signature of every initializer.
type InitFunc[T tensor.Float, B tensor.Backend] = nn.InitFunc[T, B]

// Registered initializer names.
const (
	NameXavierUniform  = nn.NameXavierUniform
	NameXavierNormal   = nn.NameXavierNormal
	NameKaimingUniform = nn.NameKaimingUniform
	NameKaimingNormal  = nn.NameKaimingNormal
)

// XavierUniform fills a [fanIn, fanOut] tensor from U(-a, a).
//
// Example:
//
//	w, err := nn.XavierUniform[float32](rng, 784, 128, backend, nn.Config{})
func XavierUniform[T tensor.Float, B tensor.Backend](rng *tensor.Generator, fanIn, fanOut int, backend B, cfg Config) (*tensor.Tensor[T, B], error) {
	return nn.XavierUniform[T, B](rng, fanIn, fanOut, backend, cfg)
}

// XavierNormal fills a [fanIn, fanOut] tensor from N(0, std²).
func XavierNormal[T tensor.Float, B tensor.Backend](rng *tensor.Generator, fanIn, fanOut int, backend B, cfg Config) (*tensor.Tensor[T, B], error) {
	return nn.XavierNormal[T, B](rng, fanIn, fanOut, backend, cfg)
}

// KaimingUniform fills a [fanIn, fanOut] tensor from U(-bound, bound).
//
// Example:
//
//	w, err := nn.KaimingUniform[float32](rng, 784, 128, backend, nn.Config{Nonlinearity: nn.ReLU})
func KaimingUniform[T tensor.Float, B tensor.Backend](rng *tensor.Generator, fanIn, fanOut int, backend B, cfg Config) (*tensor.Tensor[T, B], error) {
	return nn.KaimingUniform[T, B](rng, fanIn, fanOut, backend, cfg)
}

// KaimingNormal fills a [fanIn, fanOut] tensor from N(0, std²).
func KaimingNormal[T tensor.Float, B tensor.Backend](rng *tensor.Generator, fanIn, fanOut int, backend B, cfg Config) (*tensor.Tensor[T, B], error) {
	return nn.KaimingNormal[T, B](rng, fanIn, fanOut, backend, cfg)
}

// Zeros creates a zero-filled tensor, typically used for biases.
func Zeros[T tensor.Float, B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[T, B] {
	return nn.Zeros[T, B](shape, backend)
}

// Names returns the registered initializer names.
func Names() []string {
	return nn.Names()
}

// IsRegistered reports whether name resolves to an initializer.
func IsRegistered(name string) bool {
	return nn.IsRegistered(name)
}

// Lookup returns the initializer registered under name.
func Lookup[T tensor.Float, B tensor.Backend](name string) (InitFunc[T, B], error) {
	return nn.Lookup[T, B](name)
}
