/*
Package lzw implements GIF-style LZW compression: a variable code-width
dictionary coder that grows its code width from 9 to 12 bits as the
dictionary fills, and resets via an explicit CLEAR code rather than
ever exceeding the maximum width.
*/
package lzw

const (
	// MinCodeLen is the code width the encoder and decoder both start at.
	MinCodeLen = 9
	// MaxCodeLen is the code width the dictionary never grows past;
	// filling it completely forces a CLEAR instead of a further bump.
	MaxCodeLen = 12
	// Clear resets both sides' dictionary and code width.
	Clear = 256
	// EOD marks the end of the encoded stream.
	EOD = 257
	// FirstUserCode is the first code available for dictionary entries.
	FirstUserCode = 258
)
