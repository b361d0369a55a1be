// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/needle/internal/tensor"
)

// DType is a constraint for supported element types.
type DType = tensor.DType

// Float is a constraint for floating-point element types.
type Float = tensor.Float

// DataType represents runtime type information.
type DataType = tensor.DataType

// Supported data types.
const (
	Float32 = tensor.Float32
	Float64 = tensor.Float64
	Int32   = tensor.Int32
	Int64   = tensor.Int64
	Uint8   = tensor.Uint8
)

// ParseDataType resolves a lowercase dtype name such as "float32".
func ParseDataType(name string) (DataType, bool) {
	return tensor.ParseDataType(name)
}

// Device represents a compute device.
type Device = tensor.Device

// Supported devices.
const (
	CPU    = tensor.CPU
	CUDA   = tensor.CUDA
	Vulkan = tensor.Vulkan
	Metal  = tensor.Metal
	WebGPU = tensor.WebGPU
)

// Shape represents tensor dimensions.
type Shape = tensor.Shape

// Tensor is a generic type-safe tensor.
//
// Type parameters:
//   - T: Data type (float32, float64, int32, int64, uint8)
//   - B: Backend implementation
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// Generator is a seedable random source.
//
// A Generator is not safe for concurrent use.
type Generator = tensor.Generator

// NewGenerator returns a generator seeded with seed.
func NewGenerator(seed uint64) *Generator {
	return tensor.NewGenerator(seed)
}

// SampleConfig carries the options shared by the random creation functions.
type SampleConfig = tensor.SampleConfig

// Creation functions

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Rand creates a tensor with values drawn from U(low, high).
//
// Example:
//
//	rng := tensor.NewGenerator(0)
//	x, err := tensor.Rand[float32](rng, tensor.Shape{2, 3}, -1, 1, cpu.New(), tensor.SampleConfig{})
func Rand[T Float, B Backend](rng *Generator, shape Shape, low, high float64, b B, cfg SampleConfig) (*Tensor[T, B], error) {
	return tensor.Rand[T, B](rng, shape, low, high, b, cfg)
}

// Randn creates a tensor with values drawn from N(mean, std²).
//
// Example:
//
//	rng := tensor.NewGenerator(0)
//	x, err := tensor.Randn[float64](rng, tensor.Shape{4}, 0, 1, cpu.New(), tensor.SampleConfig{})
func Randn[T Float, B Backend](rng *Generator, shape Shape, mean, std float64, b B, cfg SampleConfig) (*Tensor[T, B], error) {
	return tensor.Randn[T, B](rng, shape, mean, std, b, cfg)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	backend := cpu.New()
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// New creates a tensor from a raw tensor.
//
// This is a low-level function. Most users should use Zeros or FromSlice instead.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}
