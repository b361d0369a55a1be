package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/born-ml/needle/internal/tensor"
)

const metadataKey = "__metadata__"

// headerEntry describes one tensor in the JSON header.
type headerEntry struct {
	DType       string   `json:"dtype"`
	Shape       []int64  `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"`
}

// StateDict maps parameter names to tensors.
type StateDict map[string]*tensor.RawTensor

// Write encodes tensors and optional metadata to w.
func Write(w io.Writer, tensors StateDict, metadata map[string]string) error {
	names := make([]string, 0, len(tensors))
	for name := range tensors {
		if err := ValidateTensorName(name); err != nil {
			return err
		}
		names = append(names, name)
	}
	sort.Strings(names)

	header := make(map[string]any, len(names)+1)
	if len(metadata) > 0 {
		header[metadataKey] = metadata
	}

	var offset int64
	for _, name := range names {
		raw := tensors[name]
		shape := raw.Shape()
		dims := make([]int64, len(shape))
		for i, d := range shape {
			dims[i] = int64(d)
		}
		size := int64(raw.ByteSize())
		header[name] = headerEntry{
			DType:       dtypeToSafeTensors(raw.DType()),
			Shape:       dims,
			DataOffsets: [2]int64{offset, offset + size},
		}
		offset += size
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return fmt.Errorf("failed to write header size: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, name := range names {
		if _, err := w.Write(tensors[name].Data()); err != nil {
			return fmt.Errorf("failed to write tensor %s: %w", name, err)
		}
	}
	return nil
}

// WriteFile writes tensors to path, replacing any existing file.
func WriteFile(path string, tensors StateDict, metadata map[string]string) error {
	var buf bytes.Buffer
	if err := Write(&buf, tensors, metadata); err != nil {
		return err
	}
	//nolint:gosec // G306: weight files are meant to be readable by other tools
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Read decodes a SafeTensors stream. Tensors are placed on the CPU.
func Read(r io.Reader) (StateDict, map[string]string, error) {
	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, nil, fmt.Errorf("failed to read header size: %w", err)
	}
	if headerSize > MaxHeaderSize {
		return nil, nil, &ValidationError{
			Type:    "header_too_large",
			Details: fmt.Sprintf("%d bytes > max %d", headerSize, MaxHeaderSize),
			Err:     ErrHeaderTooLarge,
		}
	}

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(headerJSON, &fields); err != nil {
		return nil, nil, fmt.Errorf("failed to parse header JSON: %w", err)
	}

	var metadata map[string]string
	entries := make(map[string]headerEntry, len(fields))
	for name, field := range fields {
		if name == metadataKey {
			if err := json.Unmarshal(field, &metadata); err != nil {
				return nil, nil, fmt.Errorf("failed to parse metadata: %w", err)
			}
			continue
		}
		if err := ValidateTensorName(name); err != nil {
			return nil, nil, err
		}
		var e headerEntry
		if err := json.Unmarshal(field, &e); err != nil {
			return nil, nil, fmt.Errorf("failed to parse entry %s: %w", name, err)
		}
		entries[name] = e
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read tensor data: %w", err)
	}
	if err := validateOffsets(entries, int64(len(data))); err != nil {
		return nil, nil, err
	}

	tensors := make(StateDict, len(entries))
	for name, e := range entries {
		raw, err := decodeEntry(name, e, data)
		if err != nil {
			return nil, nil, err
		}
		tensors[name] = raw
	}
	return tensors, metadata, nil
}

// ReadFile reads a SafeTensors file from path.
func ReadFile(path string) (StateDict, map[string]string, error) {
	//nolint:gosec // G304: path is supplied by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Read(f)
}

func decodeEntry(name string, e headerEntry, data []byte) (*tensor.RawTensor, error) {
	dtype, ok := dtypeFromSafeTensors(e.DType)
	if !ok {
		return nil, &ValidationError{Type: "unsupported_dtype", Tensor: name, Details: e.DType}
	}

	begin, end := e.DataOffsets[0], e.DataOffsets[1]
	want, err := entryByteSize(name, e.Shape, dtype)
	if err != nil {
		return nil, err
	}
	if end-begin != want {
		return nil, &ValidationError{
			Type:    "size_mismatch",
			Tensor:  name,
			Details: fmt.Sprintf("%d bytes for shape %v of %s (want %d)", end-begin, e.Shape, dtype, want),
		}
	}

	shape := make(tensor.Shape, len(e.Shape))
	for i, d := range e.Shape {
		shape[i] = int(d)
	}
	raw, err := tensor.NewRaw(shape, dtype, tensor.CPU)
	if err != nil {
		return nil, fmt.Errorf("tensor %s: %w", name, err)
	}
	copy(raw.Data(), data[begin:end])
	return raw, nil
}

// entryByteSize multiplies dims by the dtype size, rejecting non-positive
// dims and products that do not fit in an int.
func entryByteSize(name string, dims []int64, dtype tensor.DataType) (int64, error) {
	n := int64(dtype.Size())
	for _, d := range dims {
		if d <= 0 {
			return 0, &ValidationError{
				Type:    "invalid_shape",
				Tensor:  name,
				Details: fmt.Sprintf("non-positive dimension in %v", dims),
			}
		}
		if n > math.MaxInt/d {
			return 0, &ValidationError{
				Type:    "size_mismatch",
				Tensor:  name,
				Details: fmt.Sprintf("shape %v of %s overflows the byte size", dims, dtype),
			}
		}
		n *= d
	}
	return n, nil
}

func dtypeToSafeTensors(dt tensor.DataType) string {
	switch dt {
	case tensor.Float32:
		return "F32"
	case tensor.Float64:
		return "F64"
	case tensor.Int32:
		return "I32"
	case tensor.Int64:
		return "I64"
	case tensor.Uint8:
		return "U8"
	default:
		return "unknown"
	}
}

func dtypeFromSafeTensors(s string) (tensor.DataType, bool) {
	switch s {
	case "F32":
		return tensor.Float32, true
	case "F64":
		return tensor.Float64, true
	case "I32":
		return tensor.Int32, true
	case "I64":
		return tensor.Int64, true
	case "U8":
		return tensor.Uint8, true
	default:
		return 0, false
	}
}
