// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/needle/internal/tensor"

// Backend defines the interface that all compute backends must implement.
//
// Backends execute the layout operations (Pad, Flip, Slice) on raw tensors.
// Implementations:
//   - backend/cpu: pure Go, dtype-agnostic byte copies
//
// Example:
//
//	backend := cpu.New()
//	img, _ := tensor.FromSlice([]uint8{1, 2, 3, 4}, tensor.Shape{1, 4, 1}, backend)
//	mirrored := img.Flip(1) // [4 3 2 1]
type Backend = tensor.Backend

// PadWidth is the number of zeros added before and after one axis.
type PadWidth = tensor.PadWidth

// Range is a half-open [Start, End) index range along one axis.
type Range = tensor.Range
