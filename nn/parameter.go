// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/needle/internal/nn"
	"github.com/born-ml/needle/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// Example:
//
//	w, _ := nn.XavierUniform[float32](rng, 128, 10, backend, nn.Config{})
//	weight := nn.NewParameter("fc.weight", w)
//	weight.Tensor().RequiresGrad() // true
type Parameter[T tensor.Float, B tensor.Backend] = nn.Parameter[T, B]

// NewParameter wraps t as a named parameter and marks it as requiring gradients.
func NewParameter[T tensor.Float, B tensor.Backend](name string, t *tensor.Tensor[T, B]) *Parameter[T, B] {
	return nn.NewParameter(name, t)
}
