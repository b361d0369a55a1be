// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensors and explicit random sampling for needle.
//
// # Overview
//
// This package provides:
//   - Generic type-safe tensors (Tensor[T, B]) over float, integer and byte data
//   - Constant padding, axis flips and slicing, executed by a Backend
//   - A seedable Generator used by every random operation
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/needle/backend/cpu"
//	    "github.com/born-ml/needle/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    rng := tensor.NewGenerator(42)
//
//	    x, _ := tensor.Rand[float32](rng, tensor.Shape{2, 3}, -1, 1, backend, tensor.SampleConfig{})
//	    y := x.Pad(tensor.PadWidth{Before: 1, After: 1}, tensor.PadWidth{})
//	    _ = y.Shape() // [4 3]
//	}
//
// # Randomness
//
// There is no global random state. Two generators created with the same
// seed produce the same stream, so runs are reproducible as long as the
// generator is threaded through in the same order.
package tensor
