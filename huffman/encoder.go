package huffman

import "github.com/ghalt/compresskit/bitio"

type codeEntry struct {
	code   uint32
	length uint8
	valid  bool
}

// Encoder builds and writes canonical Huffman chunks for an alphabet of
// at most maxSymbols symbols (clamped to MaxSymbols).
type Encoder struct {
	maxSymbols int
	freq       []uint64
	table      Table
	codes      []codeEntry
}

// NewEncoder returns an Encoder for an alphabet of maxSymbols symbols.
// maxSymbols <= 0 or > MaxSymbols is clamped to MaxSymbols.
func NewEncoder(maxSymbols int) *Encoder {
	if maxSymbols <= 0 || maxSymbols > MaxSymbols {
		maxSymbols = MaxSymbols
	}
	return &Encoder{
		maxSymbols: maxSymbols,
		freq:       make([]uint64, maxSymbols),
		codes:      make([]codeEntry, maxSymbols),
	}
}

// Compress splits input into chunks of chunkSize bytes (the final chunk
// may be shorter) and Huffman-encodes each independently, returning the
// concatenated bitstream padded to a whole number of bytes. Empty input
// produces an empty result with no chunks.
func (e *Encoder) Compress(input []byte, chunkSize int) []byte {
	if len(input) == 0 {
		return nil
	}
	if chunkSize <= 0 {
		chunkSize = len(input)
	}

	w := bitio.NewWriter()
	for start := 0; start < len(input); start += chunkSize {
		end := start + chunkSize
		if end > len(input) {
			end = len(input)
		}
		chunk := input[start:end]
		if err := e.encodeChunk(chunk, w); err != nil {
			// buildTable fails only for an alphabet too large for
			// MaxCodeLen, and the at most 256 byte symbols Compress
			// feeds it always fit, so this is not expected to fire.
			plog.Panicf("huffman: encode chunk: %v", err)
		}
	}
	data, _ := w.Finish()
	return data
}

// EncodeChunk Huffman-encodes one chunk of symbols — table header
// followed by the canonical codes — onto w. Callers working with an
// extended (non-byte) alphabet, such as an LZ77 literal/length stream,
// use this directly instead of Compress.
func (e *Encoder) EncodeChunk(symbols []Symbol, w *bitio.Writer) error {
	for i := range e.freq {
		e.freq[i] = 0
	}
	for _, s := range symbols {
		e.freq[s]++
	}

	table, err := buildTable(e.freq)
	if err != nil {
		return err
	}
	e.table = table
	e.buildCodeMap()

	w.WriteBits(uint32(len(symbols)), ChunkSizeBits)
	e.writeTable(w)
	for _, s := range symbols {
		c := e.codes[s]
		w.WriteBits(c.code, uint(c.length))
	}
	return nil
}

func (e *Encoder) encodeChunk(chunk []byte, w *bitio.Writer) error {
	syms := make([]Symbol, len(chunk))
	for i, b := range chunk {
		syms[i] = Symbol(b)
	}
	return e.EncodeChunk(syms, w)
}

func (e *Encoder) buildCodeMap() {
	for i := range e.codes {
		e.codes[i] = codeEntry{}
	}
	var code uint32
	var lastLen uint8
	for _, entry := range e.table {
		if entry.Length == lastLen {
			code++
		} else {
			if lastLen != 0 {
				code = (code + 1) << (entry.Length - lastLen)
			}
			lastLen = entry.Length
		}
		e.codes[entry.Symbol] = codeEntry{code: code, length: entry.Length, valid: true}
	}
}

func (e *Encoder) writeTable(w *bitio.Writer) {
	w.WriteBits(uint32(len(e.table)), maxSymbolsBits)

	var maxDepth int
	for _, entry := range e.table {
		if int(entry.Length) > maxDepth {
			maxDepth = int(entry.Length)
		}
	}
	w.WriteBits(uint32(maxDepth), 4)

	if maxDepth == 0 {
		return
	}
	depthBits := depthFieldBits(maxDepth)
	for _, entry := range e.table {
		w.WriteBits(uint32(entry.Symbol), maxSymbolsBits)
		w.WriteBits(uint32(entry.Length-1), depthBits)
	}
}
