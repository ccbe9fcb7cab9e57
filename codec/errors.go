// SPDX-License-Identifier: MIT
// Package codec: sentinel error set.

package codec

import "errors"

var (
	// ErrBadMagic indicates a stream that does not start with Magic.
	ErrBadMagic = errors.New("codec: bad magic")

	// ErrVersion indicates a stream written by an unsupported format version.
	ErrVersion = errors.New("codec: unsupported format version")

	// ErrCorrupt indicates a truncated stream, an unknown compression byte,
	// an invalid shape, or a plane whose length does not decode to the
	// element count.
	ErrCorrupt = errors.New("codec: corrupt stream")
)
