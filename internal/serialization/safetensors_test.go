package serialization

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/needle/internal/tensor"
)

func rawOf[T tensor.DType](t *testing.T, data []T, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	x, err := tensor.FromSlice(data, shape, tensor.NewMockBackend())
	require.NoError(t, err)
	return x.Raw()
}

func TestWriteRead_RoundTrip(t *testing.T) {
	tensors := StateDict{
		"fc1.weight": rawOf(t, []float32{0.5, -1.25, 2, 3.5, -4, 0}, tensor.Shape{3, 2}),
		"fc1.bias":   rawOf(t, []float64{1, 2}, tensor.Shape{2}),
		"labels":     rawOf(t, []uint8{7, 8, 9}, tensor.Shape{3}),
	}
	meta := map[string]string{"seed": "42", "scheme": "kaiming_uniform"}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tensors, meta))

	got, gotMeta, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, meta, gotMeta)
	require.Len(t, got, len(tensors))
	for name, want := range tensors {
		g, ok := got[name]
		require.True(t, ok, name)
		assert.Equal(t, want.DType(), g.DType(), name)
		assert.True(t, want.Shape().Equal(g.Shape()), name)
		assert.Equal(t, want.Data(), g.Data(), name)
	}
}

func TestWrite_AlphabeticalLayout(t *testing.T) {
	tensors := StateDict{
		"b": rawOf(t, []uint8{2, 2}, tensor.Shape{2}),
		"a": rawOf(t, []uint8{1}, tensor.Shape{1}),
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tensors, nil))

	raw := buf.Bytes()
	n := binary.LittleEndian.Uint64(raw[:8])
	assert.Equal(t, []byte{1, 2, 2}, raw[8+n:])
	assert.NotContains(t, string(raw[8:8+n]), metadataKey)
}

func TestWriteFile_ReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.safetensors")
	w := rawOf(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})

	require.NoError(t, WriteFile(path, StateDict{"w": w}, nil))

	got, meta, err := ReadFile(path)
	require.NoError(t, err)
	assert.Nil(t, meta)
	assert.Equal(t, []float32{1, 2, 3, 4}, got["w"].AsFloat32())
}

func TestReadFile_Missing(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "absent.safetensors"))
	assert.Error(t, err)
}

func TestWrite_RejectsBadNames(t *testing.T) {
	w := rawOf(t, []uint8{1}, tensor.Shape{1})
	for _, name := range []string{"", "../escape", "a/b", metadataKey} {
		err := Write(&bytes.Buffer{}, StateDict{name: w}, nil)
		assert.ErrorIs(t, err, ErrInvalidTensorName, "name %q", name)
	}
}

// encode builds a stream with a hand-written header.
func encode(header string, data []byte) *bytes.Reader {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, uint64(len(header)))
	buf.WriteString(header)
	buf.Write(data)
	return bytes.NewReader(buf.Bytes())
}

func TestRead_RejectsOutOfBounds(t *testing.T) {
	r := encode(`{"w":{"dtype":"U8","shape":[4],"data_offsets":[0,4]}}`, []byte{1, 2})
	_, _, err := Read(r)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestRead_RejectsOverlap(t *testing.T) {
	r := encode(`{"a":{"dtype":"U8","shape":[2],"data_offsets":[0,2]},"b":{"dtype":"U8","shape":[2],"data_offsets":[1,3]}}`, []byte{1, 2, 3})
	_, _, err := Read(r)
	assert.ErrorIs(t, err, ErrOffsetOverlap)
}

func TestRead_RejectsSizeMismatch(t *testing.T) {
	r := encode(`{"w":{"dtype":"F32","shape":[2],"data_offsets":[0,4]}}`, []byte{0, 0, 0, 0})
	_, _, err := Read(r)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "size_mismatch", verr.Type)
}

func TestRead_RejectsOverflowingShape(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"wraps to zero", `{"w":{"dtype":"F32","shape":[4294967296,4294967296],"data_offsets":[0,0]}}`},
		{"too large to allocate", `{"w":{"dtype":"U8","shape":[1125899906842624],"data_offsets":[0,0]}}`},
		{"overflows with dtype size", `{"w":{"dtype":"F64","shape":[2305843009213693952],"data_offsets":[0,0]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tensors StateDict
			var err error
			require.NotPanics(t, func() {
				tensors, _, err = Read(encode(tt.header, nil))
			})
			assert.Nil(t, tensors)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "size_mismatch", verr.Type)
		})
	}
}

func TestRead_RejectsNonPositiveDim(t *testing.T) {
	_, _, err := Read(encode(`{"w":{"dtype":"U8","shape":[0,2],"data_offsets":[0,0]}}`, nil))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "invalid_shape", verr.Type)
}

func TestRead_RejectsUnknownDType(t *testing.T) {
	r := encode(`{"w":{"dtype":"BF16","shape":[1],"data_offsets":[0,2]}}`, []byte{0, 0})
	_, _, err := Read(r)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "unsupported_dtype", verr.Type)
}

func TestRead_RejectsHugeHeader(t *testing.T) {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, uint64(MaxHeaderSize+1))
	_, _, err := Read(&buf)
	assert.ErrorIs(t, err, ErrHeaderTooLarge)
}

func TestRead_Truncated(t *testing.T) {
	_, _, err := Read(bytes.NewReader([]byte{1, 2, 3}))
	assert.Error(t, err)
}
