package data

import (
	"math"

	errs "github.com/born-ml/needle/internal/errors"
	"github.com/born-ml/needle/internal/tensor"
)

// DefaultFlipProbability is the usual flip probability for image training.
const DefaultFlipProbability = 0.5

// widthAxis is the column axis of an (H, W, C) image.
const widthAxis = 1

// RandomFlipHorizontal mirrors an image left-to-right with probability p.
type RandomFlipHorizontal[T tensor.DType, B tensor.Backend] struct {
	p   float64
	src Source
}

// NewRandomFlipHorizontal creates a flip transform. p must lie in [0, 1].
func NewRandomFlipHorizontal[T tensor.DType, B tensor.Backend](p float64, src Source) (*RandomFlipHorizontal[T, B], error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "flip probability must be in [0, 1], got %v", p)
	}
	if src == nil {
		return nil, errs.New(errs.ErrCodeInvalidInput, "nil random source")
	}
	return &RandomFlipHorizontal[T, B]{p: p, src: src}, nil
}

// P returns the flip probability.
func (f *RandomFlipHorizontal[T, B]) P() float64 {
	return f.p
}

// Apply draws one uniform value u in [0, 1). If u < p it returns a new image
// with the width axis reversed; otherwise it returns img itself.
func (f *RandomFlipHorizontal[T, B]) Apply(img *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if err := checkImage(img); err != nil {
		return nil, err
	}
	if f.src.Uniform(0, 1) < f.p {
		return img.Flip(widthAxis), nil
	}
	return img, nil
}
