// Package licensetree decodes the navigation-system license file: a flat
// sequence of integers describing a tree whose node boundaries are implicit.
//
// # Encoding
//
// Every node is encoded as a two-integer header followed by its children and
// then its metadata:
//
//	childCount metaCount <child 1> ... <child N> meta_1 ... meta_M
//
// A child's extent is only known once it has been decoded, so the decoder
// threads the unconsumed remainder of the stream from one child to the next.
// Decoding uses an explicit work stack; tree depth is bounded by the input,
// not by the goroutine stack.
//
// # Metrics
//
//   - Checksum: sum of all metadata entries in the tree
//   - Value: leaf nodes sum their metadata; other nodes treat metadata as
//     1-based child indexes and sum the referenced children's values
//
// # Errors
//
// All failures are *DecodeError values carrying an ErrorCode. Use errors.Is
// with ErrInvalidToken, ErrMalformedInput, ErrEmptyInput or ErrTrailingData.
// Decoding is all-or-nothing: no partial tree is ever returned.
package licensetree
