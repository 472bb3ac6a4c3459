package lz77

import "github.com/ghalt/compresskit/internal/herr"

// Re-exported so callers can errors.Is against these without importing
// internal/herr directly.
var (
	ErrUnexpectedEOF = herr.ErrUnexpectedEOF
	ErrCorruptStream = herr.ErrCorruptStream
)
