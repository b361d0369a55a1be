// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/needle/backend/cpu"
	"github.com/born-ml/needle/tensor"
)

// TestBackendInterface verifies that cpu.Backend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.Backend)(nil)
}

func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
	require.NoError(t, err)

	assert.True(t, raw.Shape().Equal(tensor.Shape{2, 3}))
	assert.Equal(t, tensor.Float32, raw.DType())
	assert.Equal(t, tensor.CPU, raw.Device())
	assert.Len(t, raw.AsFloat32(), 6)
}

func TestFacadeRoundTrip(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]int64{1, 2, 3, 4}, tensor.Shape{1, 4}, backend)
	require.NoError(t, err)

	assert.Equal(t, []int64{4, 3, 2, 1}, x.Flip(1).Data())
	assert.Equal(t, []int64{0, 1, 2, 3, 4, 0}, x.Pad(tensor.PadWidth{}, tensor.PadWidth{Before: 1, After: 1}).Data())
}

func TestFacadeSampling(t *testing.T) {
	backend := cpu.New()

	a, err := tensor.Rand[float32](tensor.NewGenerator(7), tensor.Shape{16}, -1, 1, backend, tensor.SampleConfig{})
	require.NoError(t, err)
	b, err := tensor.Rand[float32](tensor.NewGenerator(7), tensor.Shape{16}, -1, 1, backend, tensor.SampleConfig{})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))

	dt, ok := tensor.ParseDataType("float64")
	require.True(t, ok)
	assert.Equal(t, tensor.Float64, dt)
}
