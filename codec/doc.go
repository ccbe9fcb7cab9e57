// Package codec serializes dense arrays to a compact binary stream.
//
// What & Why:
//
//	Fields leave the process as dense arrays; codec gives those arrays a
//	stable on-disk and on-wire form. Values are stored bit-exact, so NaN
//	payloads and signed zeros survive a round trip.
//
// Layout (little endian):
//
//	"TFDA"            4 bytes  magic
//	version           1 byte   FormatVersion
//	compression       1 byte   0 = Raw, 1 = Zstd
//	rank              1 byte   1..dense.MaxRank
//	shape             rank × int64
//	payload           Raw:  len × float64 bits
//	                  Zstd: 8 planes, plane b = byte b of every value,
//	                        each as int64 length + zstd frame
//
//	Empty arrays carry no payload.
//
// Compression:
//
//	Splitting values into byte-significance planes lets the sign/exponent
//	planes of smooth physical fields compress to almost nothing while the
//	noisy low mantissa planes cost roughly their raw size.
//
// Errors:
//
//	ErrBadMagic, ErrVersion and ErrCorrupt are matched with errors.Is;
//	underlying I/O and zstd errors stay wrapped as well.
package codec
