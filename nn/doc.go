// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides weight initializers for neural network layers.
//
// # Overview
//
// This package contains:
//   - Xavier (Glorot) uniform and normal initializers
//   - Kaiming (He) uniform and normal initializers for ReLU networks
//   - A name registry used by configuration files and the CLI
//   - Parameter, a named tensor that requires gradients
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/needle/backend/cpu"
//	    "github.com/born-ml/needle/nn"
//	    "github.com/born-ml/needle/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    rng := tensor.NewGenerator(42)
//
//	    w, err := nn.KaimingUniform[float32](rng, 784, 128, backend, nn.Config{})
//	    if err != nil {
//	        panic(err)
//	    }
//	    weight := nn.NewParameter("fc1.weight", w)
//	    _ = weight
//	}
//
// # Shapes
//
// Every initializer returns a 2-D tensor of shape [fanIn, fanOut].
//
// Xavier bounds use a = gain * sqrt(6 / (fanIn + fanOut)) and
// std = gain * sqrt(2 / (fanIn + fanOut)). Kaiming uses a fixed gain of
// sqrt(2) with bound = gain * sqrt(3 / fanIn) and std = gain / sqrt(fanIn).
//
// # Lookup by Name
//
//	initFn, err := nn.Lookup[float64, *cpu.Backend]("xavier_normal")
//	w, err := initFn(rng, 256, 10, backend, nn.Config{Gain: nn.Gain(0.5)})
package nn
