package bitio

import "github.com/ghalt/compresskit/internal/herr"

// Reader borrows a byte slice and consumes it MSB-first through a 64-bit
// accumulator. buf holds the next unread bits packed from bit 63
// downward; nbits counts how many of those bits are valid. refill tops
// the accumulator back up from the backing slice whenever at least 8
// unused bits are available, and is idempotent.
type Reader struct {
	data      []byte
	pos       int
	buf       uint64
	nbits     uint
	remaining int
}

// NewReader returns a Reader over data. The slice is borrowed, not
// copied, for the lifetime of the Reader.
func NewReader(data []byte) *Reader {
	r := &Reader{data: data, remaining: len(data) * 8}
	r.refill()
	return r
}

func (r *Reader) refill() {
	for 64-r.nbits >= 8 && r.pos < len(r.data) {
		r.nbits += 8
		r.buf |= uint64(r.data[r.pos]) << (64 - r.nbits)
		r.pos++
	}
}

// RemainingBits returns the exact number of bits not yet consumed.
func (r *Reader) RemainingBits() int {
	return r.remaining
}

// ReadBits returns the next n bits MSB-first as an unsigned integer. n
// must be in [0, 32]; n == 0 returns zero. It fails with
// herr.ErrUnexpectedEOF if fewer than n bits remain.
func (r *Reader) ReadBits(n uint) (uint32, error) {
	if n > 32 {
		panic("bitio: ReadBits: n must be <= 32")
	}
	if n == 0 {
		return 0, nil
	}
	if n > uint(r.remaining) {
		return 0, herr.ErrUnexpectedEOF
	}

	val := uint32(r.buf >> (64 - n))
	r.buf <<= n
	r.nbits -= n
	r.remaining -= int(n)
	r.refill()

	return val, nil
}

// ReadBitsSaturating behaves like ReadBits, except that when fewer than
// n bits remain it consumes the remainder and returns it left-shifted to
// occupy the high n bits of the result. Decoders that speculatively
// pre-read a fixed window and ignore trailing padding use this instead
// of ReadBits.
func (r *Reader) ReadBitsSaturating(n uint) uint32 {
	if n > 32 {
		panic("bitio: ReadBitsSaturating: n must be <= 32")
	}
	if n == 0 || r.remaining == 0 {
		return 0
	}
	if n > uint(r.remaining) {
		have := uint(r.remaining)
		val, _ := r.ReadBits(have)
		return val << (n - have)
	}
	val, _ := r.ReadBits(n)
	return val
}

// PeekBits returns the next n bits MSB-first without consuming them.
func (r *Reader) PeekBits(n uint) (uint32, error) {
	if n > 32 {
		panic("bitio: PeekBits: n must be <= 32")
	}
	if n == 0 {
		return 0, nil
	}
	if n > uint(r.remaining) {
		return 0, herr.ErrUnexpectedEOF
	}
	return uint32(r.buf >> (64 - n)), nil
}

// PeekBitsSaturating behaves like PeekBits, except that when fewer than
// n bits remain it returns whatever remains left-shifted to occupy the
// high n bits of the result, without consuming anything. Decoders that
// speculatively look ahead a fixed window and consume only the bits
// they actually decode use this instead of PeekBits.
func (r *Reader) PeekBitsSaturating(n uint) uint32 {
	if n > 32 {
		panic("bitio: PeekBitsSaturating: n must be <= 32")
	}
	if n == 0 || r.remaining == 0 {
		return 0
	}
	if n > uint(r.remaining) {
		have := uint(r.remaining)
		val, _ := r.PeekBits(have)
		return val << (n - have)
	}
	val, _ := r.PeekBits(n)
	return val
}

// SkipBits advances the cursor by n bits without returning them. It is
// used after a saturating peek, where the caller already knows at most
// RemainingBits() bits are available.
func (r *Reader) SkipBits(n uint) {
	if n > 32 {
		panic("bitio: SkipBits: n must be <= 32")
	}
	if n == 0 {
		return
	}
	if n > uint(r.remaining) {
		n = uint(r.remaining)
	}
	if n == 0 {
		return
	}
	r.buf <<= n
	r.nbits -= n
	r.remaining -= int(n)
	r.refill()
}
