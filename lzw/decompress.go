package lzw

import (
	"github.com/ghalt/compresskit/bitio"
	"github.com/ghalt/compresskit/internal/herr"
)

// tableEntry is one decode-table slot: prev chains to the code this
// entry extended, byte is the last byte of this code's expansion (the
// byte it appends to prev's string; for 0-255, the byte itself), and
// next is a scratch forward pointer used only while unwinding a single
// code's string (reset to 0 once that code has been emitted).
type tableEntry struct {
	prev, next uint16
	byte       byte
}

func newDecodeTable() []tableEntry {
	table := make([]tableEntry, 1<<MaxCodeLen)
	for i := 0; i < 256; i++ {
		table[i].byte = byte(i)
	}
	return table
}

func resetDecodeTable(table []tableEntry) {
	for i := range table {
		table[i] = tableEntry{}
	}
	for i := 0; i < 256; i++ {
		table[i].byte = byte(i)
	}
}

// Decompress reverses Compress. Empty input decompresses to empty
// output. A code referencing an entry not yet defined is reported as
// herr.ErrCorruptStream.
func Decompress(input []byte) ([]byte, error) {
	if len(input) == 0 {
		return nil, nil
	}

	r := bitio.NewReader(input)
	table := newDecodeTable()
	width := uint(MinCodeLen)
	maxCode := 1 << MinCodeLen
	nextCode := uint16(FirstUserCode)

	var out []byte
	for {
		raw, err := r.ReadBits(width)
		if err != nil {
			return nil, herr.ErrUnexpectedEOF
		}
		code := uint16(raw)

		if code == EOD {
			break
		}
		if code == Clear {
			plog.Debugf("lzw: clear observed at width %d, resetting dictionary", width)
			resetDecodeTable(table)
			width = MinCodeLen
			maxCode = 1 << MinCodeLen
			nextCode = FirstUserCode
			continue
		}
		// Compress never emits code == nextCode; the prev-walk below
		// can't service a self-reference to an entry that doesn't
		// exist yet, so treat it as corrupt rather than spin forever.
		if code >= nextCode {
			return nil, herr.ErrCorruptStream
		}

		curr := code
		table[nextCode].prev = code

		for curr > 255 {
			tmp := table[curr].prev
			table[tmp].next = curr
			curr = tmp
		}
		table[nextCode-1].byte = byte(curr)

		for table[curr].next != 0 {
			out = append(out, table[curr].byte)
			tmp := table[curr].next
			table[curr].next = 0
			curr = tmp
		}
		out = append(out, table[curr].byte)

		nextCode++
		if int(nextCode) == maxCode && width < MaxCodeLen {
			width++
			maxCode <<= 1
		}
	}

	return out, nil
}
