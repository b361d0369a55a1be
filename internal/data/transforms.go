// Package data implements image augmentation transforms for training pipelines.
//
// Images are rank-3 tensors laid out as (height, width, channels). Every
// transform preserves that shape and never modifies its input: it either
// returns the input unchanged or a newly allocated tensor.
//
// Transforms draw their randomness from an injected Source, typically a
// *tensor.Generator, so a fixed seed reproduces the same augmentations.
package data

import (
	"fmt"

	errs "github.com/born-ml/needle/internal/errors"
	"github.com/born-ml/needle/internal/tensor"
)

// Transform maps an image to an image of identical shape.
type Transform[T tensor.DType, B tensor.Backend] interface {
	Apply(img *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error)
}

// Source is the random collaborator consumed by the transforms.
// *tensor.Generator implements it.
type Source interface {
	// Uniform returns one draw in [low, high).
	Uniform(low, high float64) float64

	// Randint returns size draws from the integers in [low, high).
	Randint(low, high, size int) []int
}

// Compose applies a fixed sequence of transforms in order.
//
// Example:
//
//	rng := tensor.NewGenerator(7)
//	flip, _ := data.NewRandomFlipHorizontal[uint8, *cpu.CPUBackend](0.5, rng)
//	crop, _ := data.NewRandomCrop[uint8, *cpu.CPUBackend](4, rng)
//	pipeline := data.NewCompose[uint8, *cpu.CPUBackend](flip, crop)
//	out, err := pipeline.Apply(img)
type Compose[T tensor.DType, B tensor.Backend] struct {
	transforms []Transform[T, B]
}

// NewCompose creates a pipeline from transforms. An empty pipeline is the identity.
func NewCompose[T tensor.DType, B tensor.Backend](transforms ...Transform[T, B]) *Compose[T, B] {
	return &Compose[T, B]{transforms: append([]Transform[T, B](nil), transforms...)}
}

// Apply runs every stage in order, stopping at the first error.
func (c *Compose[T, B]) Apply(img *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	out := img
	for i, t := range c.transforms {
		next, err := t.Apply(out)
		if err != nil {
			return nil, fmt.Errorf("transform %d (%T): %w", i, t, err)
		}
		out = next
	}
	return out, nil
}

// Len returns the number of stages.
func (c *Compose[T, B]) Len() int {
	return len(c.transforms)
}

// checkImage rejects anything that is not an (H, W, C) tensor.
func checkImage[T tensor.DType, B tensor.Backend](img *tensor.Tensor[T, B]) error {
	if img == nil {
		return errs.New(errs.ErrCodeInvalidInput, "nil image")
	}
	if shape := img.Shape(); shape.Rank() != 3 {
		return errs.New(errs.ErrCodeInvalidShape, "image must be H x W x C, got shape %v", shape)
	}
	return nil
}
