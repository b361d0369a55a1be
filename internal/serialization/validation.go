package serialization

import (
	"fmt"
	"sort"
	"strings"
)

// Limits applied when reading untrusted files.
const (
	MaxHeaderSize    = 100 << 20
	MaxTensorNameLen = 1024
)

// ValidateTensorName rejects empty names and names that could be mistaken
// for paths.
func ValidateTensorName(name string) error {
	invalid := func(details string) error {
		return &ValidationError{Type: "invalid_name", Tensor: name, Details: details, Err: ErrInvalidTensorName}
	}
	switch {
	case name == "":
		return invalid("empty name")
	case len(name) > MaxTensorNameLen:
		return invalid(fmt.Sprintf("length %d > max %d", len(name), MaxTensorNameLen))
	case name == metadataKey:
		return invalid("reserved name")
	case strings.Contains(name, ".."):
		return invalid("contains '..'")
	case strings.ContainsAny(name, "/\\"):
		return invalid("contains path separator")
	case strings.Contains(name, "\x00"):
		return invalid("contains null byte")
	}
	return nil
}

// validateOffsets checks that every entry fits in dataSize bytes and that no
// two entries overlap.
func validateOffsets(entries map[string]headerEntry, dataSize int64) error {
	names := make([]string, 0, len(entries))
	for name, e := range entries {
		begin, end := e.DataOffsets[0], e.DataOffsets[1]
		if begin < 0 || end < begin || end > dataSize {
			return &ValidationError{
				Type:    "out_of_bounds",
				Tensor:  name,
				Details: fmt.Sprintf("range [%d, %d) outside data section of %d bytes", begin, end, dataSize),
				Err:     ErrOutOfBounds,
			}
		}
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		return entries[names[i]].DataOffsets[0] < entries[names[j]].DataOffsets[0]
	})
	for i := 1; i < len(names); i++ {
		prev, cur := entries[names[i-1]], entries[names[i]]
		if cur.DataOffsets[0] < prev.DataOffsets[1] {
			return &ValidationError{
				Type:    "offset_overlap",
				Tensor:  names[i],
				Details: fmt.Sprintf("overlaps %q", names[i-1]),
				Err:     ErrOffsetOverlap,
			}
		}
	}
	return nil
}
