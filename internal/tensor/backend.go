package tensor

// Backend defines the array primitives a compute backend must provide.
//
// Every operation allocates its result; inputs are never modified. Backends
// panic on malformed arguments, so callers validate user input first.
type Backend interface {
	// Pad adds zero-valued elements around each axis (constant mode).
	Pad(x *RawTensor, widths []PadWidth) *RawTensor

	// Flip reverses the element order along dim. Negative dims count from the end.
	Flip(x *RawTensor, dim int) *RawTensor

	// Slice copies the sub-block selected by one half-open range per axis.
	Slice(x *RawTensor, ranges []Range) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
