// Package serialization stores named tensors in the SafeTensors format.
//
// File layout:
//
//	[8 bytes: header size N, uint64 little-endian]
//	[N bytes: JSON header]
//	[tensor data: raw little-endian bytes, concatenated]
//
// The header maps each tensor name to its dtype, shape and [begin, end)
// byte range in the data section. An optional "__metadata__" entry holds
// string key/value pairs. Tensors are written in alphabetical order.
package serialization
