// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// R1 is a rank-1 tensor (vector) in R3.
// The component array is fixed at 3; only its content is mutable.
// The zero value is the zero vector and is ready to use.
type R1 struct {
	c [Dim]float64 // c[R1Axis(k)] holds component k
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = R1{}

// NewR1 builds a vector from its three Cartesian components (x1, x2, x3).
func NewR1(x1, x2, x3 float64) R1 {
	return R1{c: [Dim]float64{x1, x2, x3}}
}

// At returns component k (1-based) or ErrIndex.
// Complexity: O(1).
func (u R1) At(k int) (float64, error) {
	ax, err := R1Axis(k)
	if err != nil {
		return 0, fmt.Errorf("R1.At: %w", err)
	}

	return u.c[ax], nil
}

// Set stores v into component k (1-based).
// On ErrIndex the receiver is left untouched.
// Complexity: O(1).
func (u *R1) Set(k int, v float64) error {
	ax, err := R1Axis(k)
	if err != nil {
		return fmt.Errorf("R1.Set: %w", err)
	}
	u.c[ax] = v

	return nil
}

// Components returns the components in axis order (component 1 first).
// The returned array is a copy.
func (u R1) Components() [Dim]float64 { return u.c }

// Equal reports exact component-wise equality (NaN never equals NaN).
func (u R1) Equal(v R1) bool { return u.c == v.c }

// Zero sets every component to zero.
func (u *R1) Zero() { u.c = [Dim]float64{} }

// Add adds v to the receiver in place.
func (u *R1) Add(v R1) {
	for ax := range u.c {
		u.c[ax] += v.c[ax]
	}
}

// Sub subtracts v from the receiver in place.
func (u *R1) Sub(v R1) {
	for ax := range u.c {
		u.c[ax] -= v.c[ax]
	}
}

// Scale multiplies every component by a in place.
func (u *R1) Scale(a float64) {
	for ax := range u.c {
		u.c[ax] *= a
	}
}

// Div divides every component by a in place.
// a == 0 returns ErrDivisionByZero and leaves the receiver untouched.
func (u *R1) Div(a float64) error {
	if a == 0 {
		return fmt.Errorf("R1.Div: %w", ErrDivisionByZero)
	}
	for ax := range u.c {
		u.c[ax] /= a
	}

	return nil
}

// ToR3 converts the vector into gonum's r3.Vec.
func (u R1) ToR3() r3.Vec {
	return r3.Vec{X: u.c[0], Y: u.c[1], Z: u.c[2]}
}

// R1FromR3 converts a gonum r3.Vec into an R1.
func R1FromR3(v r3.Vec) R1 {
	return NewR1(v.X, v.Y, v.Z)
}

// String renders the vector as "( x1, x2, x3 )".
func (u R1) String() string {
	return fmt.Sprintf("( %g, %g, %g )", u.c[0], u.c[1], u.c[2])
}
