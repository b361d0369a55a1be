package tensor

import (
	"fmt"
	"math"
)

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks that all dimensions are > 0 and that their product fits in an int.
func (s Shape) Validate() error {
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
		if n > math.MaxInt/dim {
			return fmt.Errorf("shape %v: element count overflows int", s)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// NormalizeDim resolves a possibly negative dimension index against the rank.
// Returns an error if the dimension is out of range.
func (s Shape) NormalizeDim(dim int) (int, error) {
	ndim := len(s)
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		return 0, fmt.Errorf("dimension %d out of range for %dD tensor", dim, ndim)
	}
	return dim, nil
}

// PadWidth is the number of elements added before and after one axis.
type PadWidth struct {
	Before int
	After  int
}

// Range is a half-open index interval [Start, End) along one axis.
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// PaddedShape returns the shape that results from padding s with widths.
func PaddedShape(s Shape, widths []PadWidth) (Shape, error) {
	if len(widths) != len(s) {
		return nil, fmt.Errorf("pad: got %d widths for %dD shape %v", len(widths), len(s), s)
	}
	out := make(Shape, len(s))
	for i, w := range widths {
		if w.Before < 0 || w.After < 0 {
			return nil, fmt.Errorf("pad: negative width %+v at dimension %d", w, i)
		}
		out[i] = s[i] + w.Before + w.After
	}
	return out, nil
}

// SlicedShape returns the shape selected by ranges from s.
func SlicedShape(s Shape, ranges []Range) (Shape, error) {
	if len(ranges) != len(s) {
		return nil, fmt.Errorf("slice: got %d ranges for %dD shape %v", len(ranges), len(s), s)
	}
	out := make(Shape, len(s))
	for i, r := range ranges {
		if r.Start < 0 || r.End > s[i] || r.Len() <= 0 {
			return nil, fmt.Errorf("slice: range [%d, %d) invalid for dimension %d (size %d)", r.Start, r.End, i, s[i])
		}
		out[i] = r.Len()
	}
	return out, nil
}
