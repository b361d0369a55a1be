package cpu

import (
	"fmt"

	"github.com/born-ml/needle/internal/parallel"
	"github.com/born-ml/needle/internal/tensor"
)

// Pad zero-pads x by one PadWidth per axis (constant mode).
//
// Example:
//
//	img := tensor.Zeros[uint8](tensor.Shape{32, 32, 3}, backend)
//	padded := backend.Pad(img.Raw(), []tensor.PadWidth{{4, 4}, {4, 4}, {0, 0}}) // Shape: [40, 40, 3]
func (cpu *CPUBackend) Pad(x *tensor.RawTensor, widths []tensor.PadWidth) *tensor.RawTensor {
	outShape, err := tensor.PaddedShape(x.Shape(), widths)
	if err != nil {
		panic(err.Error())
	}
	if len(outShape) == 0 {
		return x.Clone()
	}

	result := cpu.alloc("pad", outShape, x.DType())

	size := x.DType().Size()
	last := len(outShape) - 1
	rowBytes := x.Shape()[last] * size
	src, dst := x.Data(), result.Data()
	srcStrides, dstStrides := x.Strides(), result.Strides()

	// Copy each innermost row of x into its shifted position; the border stays zero.
	forEachRow(x.Shape(), cpu.parallel, func(idx []int) {
		so, do := 0, widths[last].Before
		for d, v := range idx {
			so += v * srcStrides[d]
			do += (v + widths[d].Before) * dstStrides[d]
		}
		copy(dst[do*size:do*size+rowBytes], src[so*size:so*size+rowBytes])
	})

	return result
}

// Flip reverses the element order of x along dim.
// Supports negative dim indexing (-1 = last dimension).
func (cpu *CPUBackend) Flip(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	d, err := shape.NormalizeDim(dim)
	if err != nil {
		panic(fmt.Sprintf("flip: %v", err))
	}

	result := cpu.alloc("flip", shape, x.DType())

	// View x as [outer, n, inner]: every block of inner bytes moves as a unit.
	outer := 1
	for _, v := range shape[:d] {
		outer *= v
	}
	n := shape[d]
	inner := x.DType().Size()
	for _, v := range shape[d+1:] {
		inner *= v
	}

	src, dst := x.Data(), result.Data()
	parallel.For(outer, cpu.parallel, func(o int) {
		base := o * n
		for i := 0; i < n; i++ {
			so := (base + i) * inner
			do := (base + n - 1 - i) * inner
			copy(dst[do:do+inner], src[so:so+inner])
		}
	})

	return result
}

// Slice copies the block of x selected by one half-open Range per axis into a
// new contiguous tensor.
func (cpu *CPUBackend) Slice(x *tensor.RawTensor, ranges []tensor.Range) *tensor.RawTensor {
	outShape, err := tensor.SlicedShape(x.Shape(), ranges)
	if err != nil {
		panic(err.Error())
	}
	if len(outShape) == 0 {
		return x.Clone()
	}

	result := cpu.alloc("slice", outShape, x.DType())

	size := x.DType().Size()
	last := len(outShape) - 1
	rowBytes := outShape[last] * size
	src, dst := x.Data(), result.Data()
	srcStrides, dstStrides := x.Strides(), result.Strides()

	forEachRow(outShape, cpu.parallel, func(idx []int) {
		so, do := ranges[last].Start, 0
		for d, v := range idx {
			so += (v + ranges[d].Start) * srcStrides[d]
			do += v * dstStrides[d]
		}
		copy(dst[do*size:do*size+rowBytes], src[so*size:so*size+rowBytes])
	})

	return result
}

// forEachRow calls fn once per innermost row of shape, passing the indices of
// all leading dimensions. Rows are split into chunks per cfg; within a chunk
// they are visited in row-major order and idx is only valid during the call.
func forEachRow(shape tensor.Shape, cfg parallel.Config, fn func(idx []int)) {
	lead := shape[:len(shape)-1]
	parallel.Chunks(lead.NumElements(), cfg, func(start, end int) {
		idx := make([]int, len(lead))
		rem := start
		for d := len(lead) - 1; d >= 0; d-- {
			idx[d] = rem % lead[d]
			rem /= lead[d]
		}
		for r := start; r < end; r++ {
			fn(idx)
			for d := len(lead) - 1; d >= 0; d-- {
				idx[d]++
				if idx[d] < lead[d] {
					break
				}
				idx[d] = 0
			}
		}
	})
}
