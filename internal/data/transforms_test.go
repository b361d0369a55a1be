package data_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/needle/internal/backend/cpu"
	"github.com/born-ml/needle/internal/data"
	errs "github.com/born-ml/needle/internal/errors"
	"github.com/born-ml/needle/internal/tensor"
)

type image = tensor.Tensor[float32, *cpu.CPUBackend]

// scriptedSource replays fixed draws and counts how many were consumed.
type scriptedSource struct {
	uniform  float64
	shifts   []int
	uniforms int
	randints int
}

func (s *scriptedSource) Uniform(low, high float64) float64 {
	s.uniforms++
	return low + s.uniform*(high-low)
}

func (s *scriptedSource) Randint(low, high, size int) []int {
	s.randints++
	out := make([]int, size)
	copy(out, s.shifts)
	return out
}

// rampImage returns an (h, w, c) image whose pixels count up from 1.
func rampImage(t *testing.T, h, w, c int) *image {
	t.Helper()
	px := make([]float32, h*w*c)
	for i := range px {
		px[i] = float32(i + 1)
	}
	img, err := tensor.FromSlice(px, tensor.Shape{h, w, c}, cpu.New())
	require.NoError(t, err)
	return img
}

func TestCompose_AppliesInOrder(t *testing.T) {
	img := rampImage(t, 4, 5, 3)
	src := &scriptedSource{uniform: 0, shifts: []int{1, 0}}

	flip, err := data.NewRandomFlipHorizontal[float32, *cpu.CPUBackend](1, src)
	require.NoError(t, err)
	crop, err := data.NewRandomCrop[float32, *cpu.CPUBackend](2, src)
	require.NoError(t, err)

	pipeline := data.NewCompose[float32, *cpu.CPUBackend](flip, crop)
	assert.Equal(t, 2, pipeline.Len())

	out, err := pipeline.Apply(img)
	require.NoError(t, err)

	// Flip first, then shift rows down by one: row 0 comes from padding.
	flipped := img.Flip(1)
	assert.Equal(t, img.Shape(), out.Shape())
	for j := 0; j < 5; j++ {
		assert.Equal(t, flipped.At(1, j, 0), out.At(0, j, 0))
		assert.Equal(t, float32(0), out.At(3, j, 2))
	}
	assert.Equal(t, 1, src.uniforms)
	assert.Equal(t, 1, src.randints)
}

func TestCompose_EmptyIsIdentity(t *testing.T) {
	img := rampImage(t, 2, 2, 1)
	out, err := data.NewCompose[float32, *cpu.CPUBackend]().Apply(img)
	require.NoError(t, err)
	assert.Same(t, img, out)
}

func TestCompose_ReportsFailingStage(t *testing.T) {
	src := &scriptedSource{}
	flip, err := data.NewRandomFlipHorizontal[float32, *cpu.CPUBackend](0.5, src)
	require.NoError(t, err)

	flat, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, cpu.New())
	require.NoError(t, err)

	_, err = data.NewCompose[float32, *cpu.CPUBackend](flip).Apply(flat)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidShape))
	assert.Contains(t, err.Error(), "transform 0")
}

func TestGeneratorIsASource(t *testing.T) {
	var _ data.Source = tensor.NewGenerator(0)
}
