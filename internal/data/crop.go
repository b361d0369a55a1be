package data

import (
	errs "github.com/born-ml/needle/internal/errors"
	"github.com/born-ml/needle/internal/tensor"
)

// DefaultCropPadding is the crop padding used when none is configured.
const DefaultCropPadding = 3

// RandomCrop zero-pads an image on all four spatial sides and crops back to
// the original size at a random offset.
//
// With padding p each shift is drawn from [-p, p], so the crop window always
// stays inside the padded canvas. A (0, 0) shift returns the original pixels.
type RandomCrop[T tensor.DType, B tensor.Backend] struct {
	padding int
	src     Source
}

// NewRandomCrop creates a crop transform. padding must be >= 0.
func NewRandomCrop[T tensor.DType, B tensor.Backend](padding int, src Source) (*RandomCrop[T, B], error) {
	if padding < 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "crop padding must be >= 0, got %d", padding)
	}
	if src == nil {
		return nil, errs.New(errs.ErrCodeInvalidInput, "nil random source")
	}
	return &RandomCrop[T, B]{padding: padding, src: src}, nil
}

// Padding returns the configured padding.
func (c *RandomCrop[T, B]) Padding() int {
	return c.padding
}

// Apply returns a new (H, W, C) image shifted by a random (shiftX, shiftY)
// with zeros filling the uncovered border.
func (c *RandomCrop[T, B]) Apply(img *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if err := checkImage(img); err != nil {
		return nil, err
	}
	shifts := c.src.Randint(-c.padding, c.padding+1, 2)
	return c.crop(img, shifts[0], shifts[1]), nil
}

// crop pads img by c.padding and cuts the H x W window whose top-left corner
// sits at (padding+shiftX, padding+shiftY) in the padded image.
func (c *RandomCrop[T, B]) crop(img *tensor.Tensor[T, B], shiftX, shiftY int) *tensor.Tensor[T, B] {
	shape := img.Shape()
	h, w, ch := shape[0], shape[1], shape[2]
	p := c.padding

	padded := img.Pad(
		tensor.PadWidth{Before: p, After: p},
		tensor.PadWidth{Before: p, After: p},
		tensor.PadWidth{},
	)

	top, left := p+shiftX, p+shiftY
	return padded.Slice(
		tensor.Range{Start: top, End: top + h},
		tensor.Range{Start: left, End: left + w},
		tensor.Range{Start: 0, End: ch},
	)
}
