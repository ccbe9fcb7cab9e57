// SPDX-License-Identifier: MIT

// Package adapter - the Adapter type and its per-value policy.
//
// Purpose:
//   - Carry one resolved numeric policy per Adapter (no global state).
//   - Centralize shape validation and tensor packing so the six conversions
//     share one code path per field kind.
//
// Determinism:
//   - Points are visited in increasing i; components in increasing (row, col).
//     The first failing value determines the returned error.
package adapter

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tensorfield/dense"
	"github.com/katalvlaran/tensorfield/tensor"
)

// Shape descriptors used in error messages.
const (
	_wantScalar = "(N)"
	_wantVector = "(3, N)"
	_wantTensor = "(3, 3, N)"
)

// Adapter converts between field containers and dense arrays under a fixed
// numeric policy. An Adapter is immutable after New and safe to share.
type Adapter struct {
	opts Options
}

// New returns an Adapter configured by opts on top of the documented defaults.
// Complexity: O(len(opts)).
func New(opts ...Option) *Adapter {
	return &Adapter{opts: gatherOptions(opts...)}
}

// Options returns the Adapter's effective configuration.
func (ad *Adapter) Options() Options { return ad.opts }

// admit applies the numeric policy to one value read from a source operand.
// Order: NaN replacement, then the non-finite check.
// Returns bare ErrNaNInf; callers add the conversion and point context.
func (ad *Adapter) admit(v float64) (float64, error) {
	if ad.opts.replaceNaN && math.IsNaN(v) {
		v = ad.opts.nanValue
	}
	if ad.opts.rejectNonFinite && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return 0, ErrNaNInf
	}

	return v, nil
}

// pointErrorf attaches conversion and point context to a policy failure.
func pointErrorf(op string, i int, err error) error {
	return fmt.Errorf("%s: point %d: %w", op, i, err)
}

// checkShape validates a dense operand against the field kind's layout:
// rank = len(lead)+1 and the leading axes equal lead. It returns N, the
// trailing-axis length.
// Errors:
//   - ErrNilOperand for a nil array.
//   - ErrShape, also matching dense.ErrBadShape.
func checkShape(op string, a *dense.Array, want string, lead ...int) (int, error) {
	if a == nil {
		return 0, fmt.Errorf("%s: %w", op, ErrNilOperand)
	}
	shape := a.Shape()
	if len(shape) != len(lead)+1 {
		return 0, fmt.Errorf("%s: shape %v, want %s: %w: %w",
			op, shape, want, ErrShape, dense.ErrBadShape)
	}
	for k, d := range lead {
		if shape[k] != d {
			return 0, fmt.Errorf("%s: shape %v, want %s: %w: %w",
				op, shape, want, ErrShape, dense.ErrBadShape)
		}
	}

	return shape[len(lead)], nil
}

// unpackR1 writes the components of u into column i of a (3, N) array,
// translating each 1-based component through tensor.R1Axis.
// Complexity: O(1).
func (ad *Adapter) unpackR1(u tensor.R1, a *dense.Array, i int) error {
	var (
		axis int
		v    float64
		err  error
	)
	for k := tensor.MinIndex; k <= tensor.MaxIndex; k++ {
		if axis, err = tensor.R1Axis(k); err != nil {
			return err
		}
		if v, err = u.At(k); err != nil {
			return err
		}
		if v, err = ad.admit(v); err != nil {
			return err
		}
		if err = a.Set(v, axis, i); err != nil {
			return err
		}
	}

	return nil
}

// packR1 reads column i of a (3, N) array into an R1 through tensor.R1Axis.
func (ad *Adapter) packR1(a *dense.Array, i int) (tensor.R1, error) {
	var (
		u    tensor.R1
		axis int
		v    float64
		err  error
	)
	for k := tensor.MinIndex; k <= tensor.MaxIndex; k++ {
		if axis, err = tensor.R1Axis(k); err != nil {
			return u, err
		}
		if v, err = a.At(axis, i); err != nil {
			return u, err
		}
		if v, err = ad.admit(v); err != nil {
			return u, err
		}
		if err = u.Set(k, v); err != nil {
			return u, err
		}
	}

	return u, nil
}

// unpackR2 writes the components of t into fiber i of a (3, 3, N) array,
// translating each 1-based pair through tensor.R2Axes.
// Complexity: O(1).
func (ad *Adapter) unpackR2(t tensor.R2, a *dense.Array, i int) error {
	var (
		r, c, row, col int
		v              float64
		err            error
	)
	for r = tensor.MinIndex; r <= tensor.MaxIndex; r++ {
		for c = tensor.MinIndex; c <= tensor.MaxIndex; c++ {
			if row, col, err = tensor.R2Axes(r, c); err != nil {
				return err
			}
			if v, err = t.At(r, c); err != nil {
				return err
			}
			if v, err = ad.admit(v); err != nil {
				return err
			}
			if err = a.Set(v, row, col, i); err != nil {
				return err
			}
		}
	}

	return nil
}

// packR2 reads fiber i of a (3, 3, N) array into an R2 through tensor.R2Axes.
func (ad *Adapter) packR2(a *dense.Array, i int) (tensor.R2, error) {
	var (
		t              tensor.R2
		r, c, row, col int
		v              float64
		err            error
	)
	for r = tensor.MinIndex; r <= tensor.MaxIndex; r++ {
		for c = tensor.MinIndex; c <= tensor.MaxIndex; c++ {
			if row, col, err = tensor.R2Axes(r, c); err != nil {
				return t, err
			}
			if v, err = a.At(row, col, i); err != nil {
				return t, err
			}
			if v, err = ad.admit(v); err != nil {
				return t, err
			}
			if err = t.Set(r, c, v); err != nil {
				return t, err
			}
		}
	}

	return t, nil
}
