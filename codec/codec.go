// SPDX-License-Identifier: MIT

// Package codec - stream header and raw payload.
package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/tensorfield/dense"
)

const (
	// Magic opens every stream.
	Magic = "TFDA"

	// FormatVersion is the only version Decode accepts.
	FormatVersion = 1

	// MaxElements bounds the element count Decode will allocate for.
	MaxElements = 1 << 30
)

// fixed header: magic + version + compression + rank
const headerLen = len(Magic) + 3

// Encode writes a to w.
// Implementation:
//   - Stage 1: write the header (magic, version, compression, rank, shape).
//   - Stage 2: write the payload, raw or as zstd planes.
//
// Errors:
//   - dense.ErrNilArray for a nil array.
//   - I/O and zstd errors, wrapped.
//
// Complexity:
//   - Time O(len), Space O(len) for one encoded buffer.
func Encode(w io.Writer, a *dense.Array, opts ...Option) error {
	if a == nil {
		return fmt.Errorf("Encode: %w", dense.ErrNilArray)
	}
	o := gatherOptions(opts...)

	shape := a.Shape()
	hdr := make([]byte, 0, headerLen+8*len(shape))
	hdr = append(hdr, Magic...)
	hdr = append(hdr, FormatVersion, byte(o.compression), byte(len(shape)))
	for _, d := range shape {
		hdr = binary.LittleEndian.AppendUint64(hdr, uint64(d))
	}
	if _, err := w.Write(hdr); err != nil {
		return fmt.Errorf("Encode: header: %w", err)
	}

	data := a.Data()
	if len(data) == 0 {
		return nil
	}
	switch o.compression {
	case Zstd:
		return writePlanes(w, data, o.level)
	default:
		buf := make([]byte, 8*len(data))
		for i, v := range data {
			binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(v))
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("Encode: payload: %w", err)
		}
	}

	return nil
}

// Decode reads one array from r.
// Implementation:
//   - Stage 1: read and validate the fixed header.
//   - Stage 2: read the shape; allocate only after the element count passed
//     validation.
//   - Stage 3: read the payload and rebuild the row-major buffer.
//
// Errors:
//   - ErrBadMagic, ErrVersion, ErrCorrupt (truncation included; the I/O
//     error stays wrapped).
//
// Complexity:
//   - Time O(len), Space O(len).
func Decode(r io.Reader) (*dense.Array, error) {
	var fixed [headerLen]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		return nil, fmt.Errorf("Decode: header: %w: %w", ErrCorrupt, err)
	}
	if string(fixed[:len(Magic)]) != Magic {
		return nil, fmt.Errorf("Decode: %q: %w", fixed[:len(Magic)], ErrBadMagic)
	}
	version, comp, rank := fixed[len(Magic)], Compression(fixed[len(Magic)+1]), int(fixed[len(Magic)+2])
	if version != FormatVersion {
		return nil, fmt.Errorf("Decode: version %d: %w", version, ErrVersion)
	}
	if comp != Raw && comp != Zstd {
		return nil, fmt.Errorf("Decode: %v: %w", comp, ErrCorrupt)
	}
	if rank < 1 || rank > dense.MaxRank {
		return nil, fmt.Errorf("Decode: rank %d: %w: %w", rank, ErrCorrupt, dense.ErrBadShape)
	}

	shape, n, err := readShape(r, rank)
	if err != nil {
		return nil, err
	}

	data := make([]float64, n)
	if n > 0 {
		switch comp {
		case Zstd:
			err = readPlanes(r, data)
		default:
			err = readRaw(r, data)
		}
		if err != nil {
			return nil, err
		}
	}

	a, err := dense.FromSlice(data, shape...)
	if err != nil {
		return nil, fmt.Errorf("Decode: %w: %w", ErrCorrupt, err)
	}

	return a, nil
}

// readShape reads rank axis lengths and returns them with their product.
// Rejects negative axes and element counts above MaxElements.
func readShape(r io.Reader, rank int) ([]int, int, error) {
	buf := make([]byte, 8*rank)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, 0, fmt.Errorf("Decode: shape: %w: %w", ErrCorrupt, err)
	}
	shape := make([]int, rank)
	n := 1
	for k := range shape {
		d := int64(binary.LittleEndian.Uint64(buf[8*k:]))
		if d < 0 || d > MaxElements {
			return nil, 0, fmt.Errorf("Decode: axis %d length %d: %w", k, d, ErrCorrupt)
		}
		shape[k] = int(d)
		n *= shape[k]
		if n > MaxElements {
			return nil, 0, fmt.Errorf("Decode: shape %v exceeds %d elements: %w", shape[:k+1], MaxElements, ErrCorrupt)
		}
	}

	return shape, n, nil
}

// readRaw fills data from len(data) little-endian float64 words.
func readRaw(r io.Reader, data []float64) error {
	buf := make([]byte, 8*len(data))
	if _, err := io.ReadFull(r, buf); err != nil {
		return fmt.Errorf("Decode: payload: %w: %w", ErrCorrupt, err)
	}
	for i := range data {
		data[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[8*i:]))
	}

	return nil
}
