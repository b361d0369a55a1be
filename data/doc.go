// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package data provides image augmentation transforms.
//
// # Overview
//
// Images are (height, width, channels) tensors. This package contains:
//   - RandomFlipHorizontal: mirrors the width axis with probability p
//   - RandomCrop: shifts the image by up to padding pixels, filling with zeros
//   - Compose: applies transforms in sequence
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/needle/backend/cpu"
//	    "github.com/born-ml/needle/data"
//	    "github.com/born-ml/needle/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    rng := tensor.NewGenerator(42)
//
//	    flip, _ := data.NewRandomFlipHorizontal[uint8, *cpu.Backend](data.DefaultFlipProbability, rng)
//	    crop, _ := data.NewRandomCrop[uint8, *cpu.Backend](data.DefaultCropPadding, rng)
//	    pipeline := data.NewCompose[uint8, *cpu.Backend](flip, crop)
//
//	    img := tensor.Zeros[uint8](tensor.Shape{32, 32, 3}, backend)
//	    out, err := pipeline.Apply(img)
//	    _, _ = out, err
//	}
package data
