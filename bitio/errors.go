package bitio

import "github.com/ghalt/compresskit/internal/herr"

// ErrUnexpectedEOF means a caller asked for more bits than remain in
// the stream. Re-exported so callers never need to import internal/herr.
var ErrUnexpectedEOF = herr.ErrUnexpectedEOF
