// SPDX-License-Identifier: MIT

// Package codec: functional configuration of Encode.
// Decode needs no options: everything it needs is in the header.
package codec

import "fmt"

// Compression selects the payload encoding.
type Compression uint8

const (
	// Raw stores every value as its 8 float64 bytes.
	Raw Compression = iota
	// Zstd stores 8 zstd-compressed byte-significance planes.
	Zstd
)

// String returns the compression name.
func (c Compression) String() string {
	switch c {
	case Raw:
		return "raw"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// ---------- Defaults ----------

const (
	// DefaultCompression is the payload encoding used without WithCompression.
	DefaultCompression = Raw

	// DefaultLevel is the zstd level used for every plane.
	DefaultLevel = 1

	// MinLevel and MaxLevel bound WithLevel.
	MinLevel = 1
	MaxLevel = 22
)

const (
	panicCompressionUnknown = "codec: WithCompression: unknown compression"
	panicLevelOutOfRange    = "codec: WithLevel: level must be in [1, 22]"
)

// Option mutates Options; constructors panic on nonsensical values.
type Option func(*Options)

// Options is the resolved Encode configuration.
type Options struct {
	compression Compression
	level       int
}

// WithCompression selects the payload encoding.
// Panics on a value other than Raw or Zstd.
func WithCompression(c Compression) Option {
	if c != Raw && c != Zstd {
		panic(panicCompressionUnknown)
	}

	return func(o *Options) { o.compression = c }
}

// WithLevel sets the zstd level (MinLevel..MaxLevel). Ignored for Raw.
// Panics when l is out of range.
func WithLevel(l int) Option {
	if l < MinLevel || l > MaxLevel {
		panic(panicLevelOutOfRange)
	}

	return func(o *Options) { o.level = l }
}

// Compression returns the selected payload encoding.
func (o Options) Compression() Compression { return o.compression }

// Level returns the zstd level.
func (o Options) Level() int { return o.level }

// NewOptions resolves setters against the defaults; last writer wins.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

func gatherOptions(opts ...Option) Options {
	o := Options{compression: DefaultCompression, level: DefaultLevel}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
