// Package herr holds the error sentinels shared by every codec in this
// module, so a caller can errors.Is against one taxonomy no matter which
// package produced the failure.
package herr

import "errors"

var (
	// ErrUnexpectedEOF means a reader was asked for more bits than remain.
	ErrUnexpectedEOF = errors.New("compresskit: unexpected end of stream")
	// ErrCorruptStream means a decoder found a self-inconsistent header
	// or an out-of-range reference.
	ErrCorruptStream = errors.New("compresskit: corrupt stream")
	// ErrTooManySymbols means a Huffman table build was asked to encode
	// more symbols than the code-length bound can represent.
	ErrTooManySymbols = errors.New("compresskit: too many symbols for code length bound")
)
