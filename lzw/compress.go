package lzw

import "github.com/ghalt/compresskit/bitio"

func dictKey(code uint16, b byte) uint32 {
	return uint32(code)<<8 | uint32(b)
}

// Compress LZW-encodes input, growing its code width from MinCodeLen to
// MaxCodeLen as the dictionary fills and emitting an explicit Clear
// instead of growing past MaxCodeLen. Empty input produces empty output.
func Compress(input []byte) []byte {
	if len(input) == 0 {
		return nil
	}

	w := bitio.NewWriter()
	width := uint(MinCodeLen)
	maxCode := 1 << MinCodeLen
	dict := make(map[uint32]uint16, 1<<MaxCodeLen)

	code := uint16(input[0])
	nextCode := uint16(FirstUserCode)

	for _, b := range input[1:] {
		k := dictKey(code, b)
		if next, ok := dict[k]; ok {
			code = next
			continue
		}

		w.WriteBits(uint32(code), width)
		dict[k] = nextCode
		code = uint16(b)
		nextCode++

		if int(nextCode) == maxCode {
			if width < MaxCodeLen {
				width++
				maxCode <<= 1
			} else {
				plog.Debugf("lzw: dictionary full at width %d, emitting clear", width)
				w.WriteBits(Clear, width)
				width = MinCodeLen
				maxCode = 1 << MinCodeLen
				nextCode = FirstUserCode
				for k := range dict {
					delete(dict, k)
				}
			}
		}
	}

	w.WriteBits(uint32(code), width)
	// Decompress counts the final code as a new entry too and may bump
	// its width before reading EOD; follow it so EOD lines up.
	if int(nextCode)+1 == maxCode && width < MaxCodeLen {
		width++
	}
	w.WriteBits(EOD, width)

	data, _ := w.Finish()
	return data
}
