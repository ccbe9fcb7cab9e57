// SPDX-License-Identifier: MIT

// Package codec - zstd byte-significance planes.
//
// Plane b holds byte b (little endian, 0 = least significant) of every
// value's IEEE-754 bits, in element order. Each plane is compressed as its
// own zstd frame so the near-constant high planes get their own statistics.
package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/DataDog/zstd"
)

// planes is the number of bytes in a float64.
const planes = 8

// toPlane extracts byte b of every value into plane.
func toPlane(data []float64, plane []byte, b int) {
	shift := uint(8 * b)
	for i, v := range data {
		plane[i] = byte(math.Float64bits(v) >> shift)
	}
}

// fromPlane ORs plane back into byte b of the bit patterns in bits.
func fromPlane(plane []byte, bits []uint64, b int) {
	shift := uint(8 * b)
	for i, x := range plane {
		bits[i] |= uint64(x) << shift
	}
}

// writePlanes compresses and writes the 8 planes of data.
// The scratch buffers are reused across planes.
// Complexity: O(len) plus zstd cost.
func writePlanes(w io.Writer, data []float64, level int) error {
	plane := make([]byte, len(data))
	var (
		buf    []byte
		err    error
		prefix [8]byte
	)
	for b := 0; b < planes; b++ {
		toPlane(data, plane, b)

		if buf, err = zstd.CompressLevel(buf, plane, level); err != nil {
			return fmt.Errorf("Encode: plane %d: %w", b, err)
		}
		binary.LittleEndian.PutUint64(prefix[:], uint64(len(buf)))
		if _, err = w.Write(prefix[:]); err != nil {
			return fmt.Errorf("Encode: plane %d: %w", b, err)
		}
		if _, err = w.Write(buf); err != nil {
			return fmt.Errorf("Encode: plane %d: %w", b, err)
		}
	}

	return nil
}

// readPlanes reads 8 length-prefixed zstd planes and rebuilds data.
// Implementation:
//   - Stage 1: read the plane length; it must lie in [0, CompressBound(len)].
//   - Stage 2: read the frame and stream-decompress it into the plane buffer;
//     it must yield exactly len bytes.
//   - Stage 3: merge the plane into the accumulated bit patterns.
//
// Errors: ErrCorrupt, with the I/O or zstd error wrapped.
func readPlanes(r io.Reader, data []float64) error {
	n := len(data)
	bound := int64(zstd.CompressBound(n))
	bits := make([]uint64, n)
	var (
		prefix [8]byte
		frame  []byte
		plane  = make([]byte, n)
		err    error
	)
	for b := 0; b < planes; b++ {
		if _, err = io.ReadFull(r, prefix[:]); err != nil {
			return fmt.Errorf("Decode: plane %d: %w: %w", b, ErrCorrupt, err)
		}
		size := int64(binary.LittleEndian.Uint64(prefix[:]))
		if size < 0 || size > bound {
			return fmt.Errorf("Decode: plane %d length %d: %w", b, size, ErrCorrupt)
		}
		if int64(cap(frame)) < size {
			frame = make([]byte, size)
		}
		frame = frame[:size]
		if _, err = io.ReadFull(r, frame); err != nil {
			return fmt.Errorf("Decode: plane %d: %w: %w", b, ErrCorrupt, err)
		}

		if err = inflatePlane(frame, plane); err != nil {
			return fmt.Errorf("Decode: plane %d: %w: %w", b, ErrCorrupt, err)
		}
		fromPlane(plane, bits, b)
	}
	for i, x := range bits {
		data[i] = math.Float64frombits(x)
	}

	return nil
}

// errPlaneSize reports a frame that decompresses to more or fewer bytes than
// the element count.
var errPlaneSize = errors.New("plane size differs from element count")

// inflatePlane stream-decompresses frame into plane. It reads at most
// len(plane)+1 bytes, so an oversized frame costs no more memory than a
// valid one.
func inflatePlane(frame, plane []byte) error {
	zr := zstd.NewReader(bytes.NewReader(frame))
	defer zr.Close()

	if _, err := io.ReadFull(zr, plane); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: %w", errPlaneSize, err)
		}
		return err
	}
	var extra [1]byte
	switch _, err := io.ReadFull(zr, extra[:]); {
	case errors.Is(err, io.EOF):
		return nil
	case err == nil:
		return fmt.Errorf("more than %d bytes: %w", len(plane), errPlaneSize)
	default:
		return err
	}
}
