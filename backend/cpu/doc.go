// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Constant zero padding, axis flips and slicing
//   - One byte-level code path for every data type
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
//	    rng := tensor.NewGenerator(1)
//
//	    img := tensor.Zeros[float32](tensor.Shape{32, 32, 3}, backend)
//	    crop, _ := data.NewRandomCrop[float32, *cpu.Backend](3, rng)
//	    out, _ := crop.Apply(img)
//	    _ = out
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// allocates its own result and does not share mutable state.
package cpu
