// Package cpu implements the CPU backend for the array primitives used by
// the augmentation and initialization packages.
package cpu

import (
	"fmt"

	"github.com/born-ml/needle/internal/parallel"
	"github.com/born-ml/needle/internal/tensor"
)

// Compile-time check that CPUBackend implements tensor.Backend.
var _ tensor.Backend = (*CPUBackend)(nil)

// CPUBackend implements tensor operations on CPU.
//
// Operations are dtype-agnostic: they move whole elements as byte blocks,
// so one code path serves every supported data type.
type CPUBackend struct {
	device   tensor.Device
	parallel parallel.Config
}

// New creates a new CPU backend that spreads large copies across all CPUs.
func New() *CPUBackend {
	return &CPUBackend{
		device:   tensor.CPU,
		parallel: parallel.DefaultConfig(),
	}
}

// WithParallel returns a copy of the backend using cfg for row-level parallelism.
func (cpu *CPUBackend) WithParallel(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device:   cpu.device,
		parallel: cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// alloc creates a zeroed result tensor, panicking on invalid shapes.
func (cpu *CPUBackend) alloc(op string, shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	result, err := tensor.NewRaw(shape, dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	return result
}
