package tensor

import (
	"fmt"
	"slices"
)

// Tensor is a generic tensor with type T and backend B.
// It provides type-safe access over multi-dimensional arrays.
//
// Type Parameters:
//   - T: Data type (must satisfy DType constraint)
//   - B: Computation backend (must implement Backend interface)
//
// Example:
//
//	backend := cpu.New()
//	img := tensor.Zeros[uint8](Shape{32, 32, 3}, backend)
//	flipped := img.Flip(1) // Reverse the width axis
type Tensor[T DType, B Backend] struct {
	raw          *RawTensor
	backend      B
	requiresGrad bool // Whether the tensor is a trainable parameter
}

// New creates a Tensor from a RawTensor and backend.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return &Tensor[T, B]{
		raw:     raw,
		backend: b,
	}
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	raw, err := NewRaw(shape, DataTypeOf[T](), b.Device())
	if err != nil {
		return nil, err
	}

	t := New[T, B](raw, b)
	copy(t.Data(), data)

	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T, B]) Shape() Shape {
	return t.raw.Shape()
}

// DType returns the tensor's data type.
func (t *Tensor[T, B]) DType() DataType {
	return t.raw.DType()
}

// Device returns the tensor's compute device.
func (t *Tensor[T, B]) Device() Device {
	return t.raw.Device()
}

// NumElements returns the total number of elements.
func (t *Tensor[T, B]) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor.
// Used by backend implementations for low-level operations.
func (t *Tensor[T, B]) Raw() *RawTensor {
	return t.raw
}

// Backend returns the computation backend.
func (t *Tensor[T, B]) Backend() B {
	return t.backend
}

// Data returns a typed slice view of the tensor's data.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T, B]) Data() []T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(t.raw.AsFloat32()).([]T)
	case float64:
		return any(t.raw.AsFloat64()).([]T)
	case int32:
		return any(t.raw.AsInt32()).([]T)
	case int64:
		return any(t.raw.AsInt64()).([]T)
	case uint8:
		return any(t.raw.AsUint8()).([]T)
	default:
		panic("unsupported type")
	}
}

// offset converts indices into a flat element offset.
func (t *Tensor[T, B]) offset(indices []int) int {
	shape := t.Shape()
	if len(indices) != len(shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(shape), len(indices)))
	}

	off := 0
	strides := t.raw.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, shape[i]))
		}
		off += idx * strides[i]
	}
	return off
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	img := tensor.Zeros[float32](Shape{4, 4, 3}, backend)
//	value := img.At(1, 2, 0) // Row 1, column 2, channel 0
func (t *Tensor[T, B]) At(indices ...int) T {
	return t.Data()[t.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T, B]) Set(value T, indices ...int) {
	t.Data()[t.offset(indices)] = value
}

// Equal reports whether t and other have the same shape and elements.
func (t *Tensor[T, B]) Equal(other *Tensor[T, B]) bool {
	if other == nil {
		return false
	}
	return t.Shape().Equal(other.Shape()) && slices.Equal(t.Data(), other.Data())
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T, B]) String() string {
	return fmt.Sprintf("Tensor[%s]%v on %s", t.raw.DType(), t.raw.Shape(), t.raw.Device())
}

// Clone creates a deep copy of the tensor.
func (t *Tensor[T, B]) Clone() *Tensor[T, B] {
	return &Tensor[T, B]{
		raw:          t.raw.Clone(),
		backend:      t.backend,
		requiresGrad: t.requiresGrad,
	}
}

// Pad returns a new tensor zero-padded by widths, one entry per axis.
func (t *Tensor[T, B]) Pad(widths ...PadWidth) *Tensor[T, B] {
	return New[T, B](t.backend.Pad(t.raw, widths), t.backend)
}

// Flip returns a new tensor with the element order along dim reversed.
func (t *Tensor[T, B]) Flip(dim int) *Tensor[T, B] {
	return New[T, B](t.backend.Flip(t.raw, dim), t.backend)
}

// Slice returns a new tensor holding the block selected by ranges, one per axis.
func (t *Tensor[T, B]) Slice(ranges ...Range) *Tensor[T, B] {
	return New[T, B](t.backend.Slice(t.raw, ranges), t.backend)
}

// RequireGrad marks this tensor as a trainable parameter.
//
// Returns the tensor itself for method chaining.
func (t *Tensor[T, B]) RequireGrad() *Tensor[T, B] {
	t.requiresGrad = true
	return t
}

// RequiresGrad returns true if this tensor is marked as a trainable parameter.
func (t *Tensor[T, B]) RequiresGrad() bool {
	return t.requiresGrad
}
