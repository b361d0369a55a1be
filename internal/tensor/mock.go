package tensor

import "fmt"

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing.
// It implements all operations naively, one element at a time, for
// correctness verification against optimized backends.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Pad zero-pads x by widths.
func (m *MockBackend) Pad(x *RawTensor, widths []PadWidth) *RawTensor {
	outShape, err := PaddedShape(x.Shape(), widths)
	if err != nil {
		panic(err)
	}
	result := m.alloc(outShape, x.DType())

	m.forEach(x.Shape(), func(idx []int) {
		dst := make([]int, len(idx))
		for i, v := range idx {
			dst[i] = v + widths[i].Before
		}
		m.copyElem(result, dst, x, idx)
	})
	return result
}

// Flip reverses x along dim.
func (m *MockBackend) Flip(x *RawTensor, dim int) *RawTensor {
	d, err := x.Shape().NormalizeDim(dim)
	if err != nil {
		panic(fmt.Sprintf("flip: %v", err))
	}
	result := m.alloc(x.Shape(), x.DType())

	n := x.Shape()[d]
	m.forEach(x.Shape(), func(idx []int) {
		dst := append([]int(nil), idx...)
		dst[d] = n - 1 - idx[d]
		m.copyElem(result, dst, x, idx)
	})
	return result
}

// Slice copies the block selected by ranges.
func (m *MockBackend) Slice(x *RawTensor, ranges []Range) *RawTensor {
	outShape, err := SlicedShape(x.Shape(), ranges)
	if err != nil {
		panic(err)
	}
	result := m.alloc(outShape, x.DType())

	m.forEach(outShape, func(idx []int) {
		src := make([]int, len(idx))
		for i, v := range idx {
			src[i] = v + ranges[i].Start
		}
		m.copyElem(result, idx, x, src)
	})
	return result
}

func (m *MockBackend) alloc(shape Shape, dtype DataType) *RawTensor {
	result, err := NewRaw(shape, dtype, m.Device())
	if err != nil {
		panic(err)
	}
	return result
}

// forEach calls fn with every multi-index of shape in row-major order.
func (m *MockBackend) forEach(shape Shape, fn func(idx []int)) {
	idx := make([]int, len(shape))
	for n := 0; n < shape.NumElements(); n++ {
		fn(idx)
		for d := len(shape) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < shape[d] {
				break
			}
			idx[d] = 0
		}
	}
}

// copyElem copies one element from src[srcIdx] to dst[dstIdx].
func (m *MockBackend) copyElem(dst *RawTensor, dstIdx []int, src *RawTensor, srcIdx []int) {
	size := src.DType().Size()
	do := flatOffset(dst.Strides(), dstIdx) * size
	so := flatOffset(src.Strides(), srcIdx) * size
	copy(dst.Data()[do:do+size], src.Data()[so:so+size])
}

func flatOffset(strides, idx []int) int {
	off := 0
	for i, v := range idx {
		off += v * strides[i]
	}
	return off
}
