package lz77

import (
	"github.com/ghalt/compresskit/bitio"
	"github.com/ghalt/compresskit/internal/herr"
)

// Decompress expands a parsed item sequence into the original byte
// buffer. A back-reference whose offset is zero or exceeds the bytes
// decoded so far is reported as herr.ErrCorruptStream; the overlap case
// (offset < length)
// is legal and is expanded byte-by-byte.
func Decompress(items []Item) ([]byte, error) {
	var out []byte
	for _, it := range items {
		switch it.Kind {
		case ItemLiteral:
			out = append(out, it.Literal)
		case ItemMatch:
			if it.Offset <= 0 || it.Offset > len(out) {
				return nil, herr.ErrCorruptStream
			}
			src := len(out) - it.Offset
			for i := 0; i < it.Length; i++ {
				out = append(out, out[src+(i%it.Offset)])
			}
		}
	}
	return out, nil
}

// EncodeItems writes items to w per the wire layout: a 32-bit item
// count, then for each item a 1-bit tag followed by either 8 bits of
// literal or the match's (length-MinMatch, offset-1) pair, field widths
// sized from opts.
func EncodeItems(items []Item, opts Options, w *bitio.Writer) {
	validate(opts)
	lengthBits := ceilLog2(opts.MaxMatch)
	offsetBits := ceilLog2(opts.WindowSize)

	w.WriteBits(uint32(len(items)), 32)
	for _, it := range items {
		switch it.Kind {
		case ItemLiteral:
			w.WriteBits(0, 1)
			w.WriteBits(uint32(it.Literal), 8)
		case ItemMatch:
			w.WriteBits(1, 1)
			w.WriteBits(uint32(it.Length-opts.MinMatch), lengthBits)
			w.WriteBits(uint32(it.Offset-1), offsetBits)
		}
	}
}

// DecodeItems reverses EncodeItems; opts must match the Options the
// stream was encoded with, since the field widths aren't self-describing.
func DecodeItems(r *bitio.Reader, opts Options) ([]Item, error) {
	validate(opts)
	lengthBits := ceilLog2(opts.MaxMatch)
	offsetBits := ceilLog2(opts.WindowSize)

	count, err := r.ReadBits(32)
	if err != nil {
		return nil, herr.ErrUnexpectedEOF
	}

	items := make([]Item, 0, count)
	for i := uint32(0); i < count; i++ {
		tag, err := r.ReadBits(1)
		if err != nil {
			return nil, herr.ErrUnexpectedEOF
		}
		if tag == 0 {
			lit, err := r.ReadBits(8)
			if err != nil {
				return nil, herr.ErrUnexpectedEOF
			}
			items = append(items, NewLiteral(byte(lit)))
			continue
		}

		lraw, err := r.ReadBits(lengthBits)
		if err != nil {
			return nil, herr.ErrUnexpectedEOF
		}
		oraw, err := r.ReadBits(offsetBits)
		if err != nil {
			return nil, herr.ErrUnexpectedEOF
		}
		items = append(items, NewMatch(int(lraw)+opts.MinMatch, int(oraw)+1))
	}
	return items, nil
}
