package huffman

import (
	"github.com/ghalt/compresskit/bitio"
	"github.com/ghalt/compresskit/internal/herr"
)

// Decoder reverses Encoder.Compress. It carries no alphabet-size
// parameter: a chunk's table header is self-describing, and the fast
// lookup tables are sized to the fixed MaxCodeLen regardless of the
// alphabet the caller used to encode.
type Decoder struct {
	table    Table
	symbolOf []Symbol
	lengthOf []uint8
}

// NewDecoder returns a Decoder ready to decompress any stream produced
// by an Encoder, whatever alphabet size that Encoder used.
func NewDecoder() *Decoder {
	return &Decoder{
		symbolOf: make([]Symbol, 1<<MaxCodeLen),
		lengthOf: make([]uint8, 1<<MaxCodeLen),
	}
}

// Decompress reverses Compress, reading chunks until the stream is
// exhausted (fewer than ChunkSizeBits bits, one chunk-length field,
// remain) and concatenating their decoded bytes. Empty input
// decompresses to empty output.
func (d *Decoder) Decompress(input []byte) ([]byte, error) {
	if len(input) == 0 {
		return nil, nil
	}

	r := bitio.NewReader(input)
	var out []byte
	for r.RemainingBits() >= ChunkSizeBits {
		syms, err := d.decodeChunk(r)
		if err != nil {
			return nil, err
		}
		if syms == nil {
			break
		}
		for _, s := range syms {
			if s > 0xFF {
				return nil, herr.ErrCorruptStream
			}
			out = append(out, byte(s))
		}
	}
	return out, nil
}

// DecodeChunk reads one table-prefixed chunk from r and returns as many
// symbols as its chunk-length field declares. It returns (nil, nil) if
// fewer than ChunkSizeBits bits remain (not even a chunk-length field),
// signalling end of stream to a caller iterating chunks; a table header
// cut short after that field is reported as herr.ErrUnexpectedEOF.
func (d *Decoder) DecodeChunk(r *bitio.Reader) ([]Symbol, error) {
	return d.decodeChunk(r)
}

func (d *Decoder) decodeChunk(r *bitio.Reader) ([]Symbol, error) {
	m, err := r.ReadBits(ChunkSizeBits)
	if err != nil {
		return nil, nil
	}

	n, err := r.ReadBits(maxSymbolsBits)
	if err != nil {
		return nil, herr.ErrUnexpectedEOF
	}
	maxDepthBits, err := r.ReadBits(4)
	if err != nil {
		return nil, herr.ErrUnexpectedEOF
	}
	maxDepth := int(maxDepthBits)

	d.table = d.table[:0]
	if maxDepth > 0 {
		depthBits := depthFieldBits(maxDepth)
		for i := uint32(0); i < n; i++ {
			sym, err := r.ReadBits(maxSymbolsBits)
			if err != nil {
				return nil, herr.ErrUnexpectedEOF
			}
			lvl, err := r.ReadBits(depthBits)
			if err != nil {
				return nil, herr.ErrUnexpectedEOF
			}
			d.table = append(d.table, TableEntry{Symbol: Symbol(sym), Length: uint8(lvl) + 1})
		}
	}
	d.fillLookup()

	out := make([]Symbol, m)
	for i := uint32(0); i < m; i++ {
		path := r.PeekBitsSaturating(MaxCodeLen)
		length := d.lengthOf[path]
		if length == 0 {
			return nil, herr.ErrCorruptStream
		}
		out[i] = d.symbolOf[path]
		r.SkipBits(uint(length))
	}
	return out, nil
}

func (d *Decoder) fillLookup() {
	for i := range d.lengthOf {
		d.lengthOf[i] = 0
	}

	var code uint32
	var lastLen uint8
	for _, entry := range d.table {
		if entry.Length == lastLen {
			code++
		} else {
			if lastLen != 0 {
				code = (code + 1) << (entry.Length - lastLen)
			}
			lastLen = entry.Length
		}

		shift := uint(MaxCodeLen - entry.Length)
		start := code << shift
		end := start | ((uint32(1) << shift) - 1)
		for path := start; path <= end; path++ {
			d.symbolOf[path] = entry.Symbol
			d.lengthOf[path] = entry.Length
		}
	}
}
