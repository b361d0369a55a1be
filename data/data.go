// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	"github.com/born-ml/needle/internal/data"
	"github.com/born-ml/needle/tensor"
)

// Default transform settings.
const (
	DefaultFlipProbability = data.DefaultFlipProbability
	DefaultCropPadding     = data.DefaultCropPadding
)

// Transform maps an image to an image of identical shape.
type Transform[T tensor.DType, B tensor.Backend] = data.Transform[T, B]

// Source supplies the random draws used by the transforms.
// *tensor.Generator implements it.
type Source = data.Source

// RandomFlipHorizontal mirrors an image left to right with probability p.
type RandomFlipHorizontal[T tensor.DType, B tensor.Backend] = data.RandomFlipHorizontal[T, B]

// NewRandomFlipHorizontal creates a flip transform. p must lie in [0, 1].
func NewRandomFlipHorizontal[T tensor.DType, B tensor.Backend](p float64, src Source) (*RandomFlipHorizontal[T, B], error) {
	return data.NewRandomFlipHorizontal[T, B](p, src)
}

// RandomCrop shifts an image by up to padding pixels on each spatial axis.
type RandomCrop[T tensor.DType, B tensor.Backend] = data.RandomCrop[T, B]

// NewRandomCrop creates a crop transform. padding must be non-negative.
func NewRandomCrop[T tensor.DType, B tensor.Backend](padding int, src Source) (*RandomCrop[T, B], error) {
	return data.NewRandomCrop[T, B](padding, src)
}

// Compose applies a fixed sequence of transforms in order.
type Compose[T tensor.DType, B tensor.Backend] = data.Compose[T, B]

// NewCompose creates a pipeline from transforms.
func NewCompose[T tensor.DType, B tensor.Backend](transforms ...Transform[T, B]) *Compose[T, B] {
	return data.NewCompose[T, B](transforms...)
}
