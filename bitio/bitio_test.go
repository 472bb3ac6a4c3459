package bitio_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ghalt/compresskit/bitio"
)

func TestRoundTripFixedValues(t *testing.T) {
	w := bitio.NewWriter()
	w.WriteBits(0x3, 2)
	w.WriteBits(0x1F, 5)
	w.WriteBits(0xABCD, 16)
	w.WriteBits(0, 0)
	w.WriteBits(0xFFFFFFFF, 32)
	data, total := w.Finish()
	require.Equal(t, 2+5+16+32, total)

	r := bitio.NewReader(data)
	v, err := r.ReadBits(2)
	require.NoError(t, err)
	require.EqualValues(t, 0x3, v)

	v, err = r.ReadBits(5)
	require.NoError(t, err)
	require.EqualValues(t, 0x1F, v)

	v, err = r.ReadBits(16)
	require.NoError(t, err)
	require.EqualValues(t, 0xABCD, v)

	v, err = r.ReadBits(0)
	require.NoError(t, err)
	require.EqualValues(t, 0, v)

	v, err = r.ReadBits(32)
	require.NoError(t, err)
	require.EqualValues(t, 0xFFFFFFFF, v)
}

func TestRoundTripRandomWidths(t *testing.T) {
	rng := rand.New(rand.NewSource(2123))

	const n = 4096
	vals := make([]uint32, n)
	widths := make([]uint, n)
	for i := 0; i < n; i++ {
		width := uint(1 + rng.Intn(32))
		var mask uint32 = 0xFFFFFFFF
		if width < 32 {
			mask = (1 << width) - 1
		}
		vals[i] = rng.Uint32() & mask
		widths[i] = width
	}

	w := bitio.NewWriter()
	for i := 0; i < n; i++ {
		w.WriteBits(vals[i], widths[i])
	}
	data, _ := w.Finish()

	r := bitio.NewReader(data)
	for i := 0; i < n; i++ {
		got, err := r.ReadBits(widths[i])
		require.NoError(t, err)
		require.Equalf(t, vals[i], got, "value %d (width %d)", i, widths[i])
	}
}

func TestReadBitsUnexpectedEOF(t *testing.T) {
	w := bitio.NewWriter()
	w.WriteBits(1, 1)
	data, _ := w.Finish()

	r := bitio.NewReader(data)
	// The reader sees the whole padded byte, so all 8 bits are readable.
	_, err := r.ReadBits(8)
	require.NoError(t, err)

	_, err = r.ReadBits(1)
	require.Error(t, err)
}

func TestReadBitsSaturating(t *testing.T) {
	w := bitio.NewWriter()
	w.WriteBits(0x5, 3) // 101
	data, _ := w.Finish()

	r := bitio.NewReader(data)
	// Only 3 real bits exist (ignoring zero padding up to the byte
	// boundary); request 8 and expect the 3 bits shifted into the high
	// positions of the result, with the rest coming from the padding.
	got := r.ReadBitsSaturating(8)
	require.EqualValues(t, 0x5<<5, got)
}

func TestReadBitsSaturatingPastEndOfData(t *testing.T) {
	w := bitio.NewWriter()
	w.WriteBits(0x1, 1)
	data, _ := w.Finish()

	r := bitio.NewReader(data)
	_, _ = r.ReadBits(8) // drain the whole byte, padding included
	require.Equal(t, 0, r.RemainingBits())

	got := r.ReadBitsSaturating(12)
	require.EqualValues(t, 0, got)
}

func TestPeekBitsSaturatingDoesNotConsume(t *testing.T) {
	w := bitio.NewWriter()
	w.WriteBits(0x5, 3) // 101
	data, _ := w.Finish()

	r := bitio.NewReader(data)
	// Only 3 real bits were written, but the reader also counts the 5
	// zero padding bits of the byte; peeking 8 returns the 3 bits in the
	// high positions of the result without consuming anything, so a
	// subsequent read of the same 3 bits still sees them.
	got := r.PeekBitsSaturating(8)
	require.EqualValues(t, 0x5<<5, got)
	require.Equal(t, 8, r.RemainingBits())

	v, err := r.ReadBits(3)
	require.NoError(t, err)
	require.EqualValues(t, 0x5, v)
}

func TestPeekBitsSaturatingPastEndOfData(t *testing.T) {
	w := bitio.NewWriter()
	w.WriteBits(0x1, 1)
	data, _ := w.Finish()

	r := bitio.NewReader(data)
	_, _ = r.ReadBits(8) // drain the whole byte, padding included
	require.Equal(t, 0, r.RemainingBits())

	got := r.PeekBitsSaturating(12)
	require.EqualValues(t, 0, got)
}

func TestPeekBitsDoesNotConsume(t *testing.T) {
	w := bitio.NewWriter()
	w.WriteBits(0xAB, 8)
	data, _ := w.Finish()

	r := bitio.NewReader(data)
	peeked, err := r.PeekBits(8)
	require.NoError(t, err)
	require.EqualValues(t, 0xAB, peeked)
	require.Equal(t, 8, r.RemainingBits())

	read, err := r.ReadBits(8)
	require.NoError(t, err)
	require.Equal(t, peeked, read)
}

func TestSkipBits(t *testing.T) {
	w := bitio.NewWriter()
	w.WriteBits(0x1, 4)
	w.WriteBits(0xA, 4)
	data, _ := w.Finish()

	r := bitio.NewReader(data)
	r.SkipBits(4)
	v, err := r.ReadBits(4)
	require.NoError(t, err)
	require.EqualValues(t, 0xA, v)
}

func TestWriteBitsZeroIsNoOp(t *testing.T) {
	w := bitio.NewWriter()
	w.WriteBits(0xFF, 0)
	require.Equal(t, 0, w.TotalBits())
}

func TestWriteBitsRejectsOversizedWidth(t *testing.T) {
	require.Panics(t, func() {
		bitio.NewWriter().WriteBits(0, 33)
	})
}
