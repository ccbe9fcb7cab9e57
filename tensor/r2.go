// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// R2 is a rank-2 tensor in R3 with 3×3 components.
//   - c[row][col] holds component (row+1, col+1); see R2Axes.
//   - The zero value is the zero tensor.
type R2 struct {
	c [Dim][Dim]float64
}

var _ fmt.Stringer = R2{}

// NewR2 builds a tensor from its nine components enumerated row-major:
// (1,1),(1,2),(1,3),(2,1),...,(3,3).
func NewR2(
	t11, t12, t13,
	t21, t22, t23,
	t31, t32, t33 float64,
) R2 {
	return R2{c: [Dim][Dim]float64{
		{t11, t12, t13},
		{t21, t22, t23},
		{t31, t32, t33},
	}}
}

// Identity returns the rank-2 identity tensor δij.
func Identity() R2 {
	return NewR2(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
}

// At returns component (i,j), both 1-based.
// Implementation:
//   - Stage 1: translate (i,j) through R2Axes (validates both).
//   - Stage 2: load from the component array.
//
// Errors:
//   - ErrIndex when i or j is outside 1..3.
//
// Complexity:
//   - Time O(1), Space O(1).
func (t R2) At(i, j int) (float64, error) {
	row, col, err := R2Axes(i, j)
	if err != nil {
		return 0, fmt.Errorf("R2.At: %w", err)
	}

	return t.c[row][col], nil
}

// Set stores v into component (i,j), both 1-based.
// On ErrIndex the receiver is left untouched.
func (t *R2) Set(i, j int, v float64) error {
	row, col, err := R2Axes(i, j)
	if err != nil {
		return fmt.Errorf("R2.Set: %w", err)
	}
	t.c[row][col] = v

	return nil
}

// Components returns a copy of the 3×3 component array, indexed by axis
// position (row-1, col-1).
func (t R2) Components() [Dim][Dim]float64 { return t.c }

// Equal reports exact component-wise equality over all nine components.
func (t R2) Equal(u R2) bool { return t.c == u.c }

// Zero sets every component to zero.
func (t *R2) Zero() { t.c = [Dim][Dim]float64{} }

// Add adds u to the receiver in place.
func (t *R2) Add(u R2) {
	for row := range t.c {
		for col := range t.c[row] {
			t.c[row][col] += u.c[row][col]
		}
	}
}

// Sub subtracts u from the receiver in place.
func (t *R2) Sub(u R2) {
	for row := range t.c {
		for col := range t.c[row] {
			t.c[row][col] -= u.c[row][col]
		}
	}
}

// Scale multiplies every component by a in place.
func (t *R2) Scale(a float64) {
	for row := range t.c {
		for col := range t.c[row] {
			t.c[row][col] *= a
		}
	}
}

// Div divides every component by a in place; a == 0 is rejected.
func (t *R2) Div(a float64) error {
	if a == 0 {
		return fmt.Errorf("R2.Div: %w", ErrDivisionByZero)
	}
	for row := range t.c {
		for col := range t.c[row] {
			t.c[row][col] /= a
		}
	}

	return nil
}

// ToMat converts the tensor into a freshly allocated gonum r3.Mat.
func (t R2) ToMat() *r3.Mat {
	return r3.NewMat([]float64{
		t.c[0][0], t.c[0][1], t.c[0][2],
		t.c[1][0], t.c[1][1], t.c[1][2],
		t.c[2][0], t.c[2][1], t.c[2][2],
	})
}

// R2FromMat copies a gonum r3.Mat into an R2.
func R2FromMat(m *r3.Mat) R2 {
	var t R2
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			t.c[row][col] = m.At(row, col)
		}
	}

	return t
}

// String renders three comma-separated rows, one per line.
func (t R2) String() string {
	var b strings.Builder
	for row := 0; row < Dim; row++ {
		if row > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, " %g, %g, %g", t.c[row][0], t.c[row][1], t.c[row][2])
	}

	return b.String()
}
