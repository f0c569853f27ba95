// SPDX-License-Identifier: MIT

package alg

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvalg/scalar"
)

// Matrix4 is a 4×4 matrix, commonly used for linear transformations in 3D
// space. Element mRC sits at row R, column C (both 1-based).
// Nothing is enforced about the values; a zero determinant simply means the
// matrix has no inverse.
type Matrix4[T scalar.Float] struct {
	m11, m12, m13, m14 T
	m21, m22, m23, m24 T
	m31, m32, m33, m34 T
	m41, m42, m43, m44 T
}

// NewMatrix4 constructs a matrix from its elements in row-major order.
func NewMatrix4[T scalar.Float](
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 T,
) Matrix4[T] {
	return Matrix4[T]{
		m11: m11, m12: m12, m13: m13, m14: m14,
		m21: m21, m22: m22, m23: m23, m24: m24,
		m31: m31, m32: m32, m33: m33, m34: m34,
		m41: m41, m42: m42, m43: m43, m44: m44,
	}
}

// Matrix4FromArray builds a matrix from 16 row-major elements.
func Matrix4FromArray[T scalar.Float](e [16]T) Matrix4[T] {
	return NewMatrix4(
		e[0], e[1], e[2], e[3],
		e[4], e[5], e[6], e[7],
		e[8], e[9], e[10], e[11],
		e[12], e[13], e[14], e[15],
	)
}

// Array returns the 16 elements in row-major order.
func (a Matrix4[T]) Array() [16]T {
	return [16]T{
		a.m11, a.m12, a.m13, a.m14,
		a.m21, a.m22, a.m23, a.m24,
		a.m31, a.m32, a.m33, a.m34,
		a.m41, a.m42, a.m43, a.m44,
	}
}

// At returns the element at 1-based (row, col).
// Panics if either index is outside 1..4.
func (a Matrix4[T]) At(row, col int) T {
	if row < 1 || row > 4 || col < 1 || col > 4 {
		panic(fmt.Sprintf("alg: Matrix4.At(%d, %d): index out of range", row, col))
	}
	e := a.Array()
	return e[(row-1)*4+(col-1)]
}

// Transpose returns aᵀ.
func (a Matrix4[T]) Transpose() Matrix4[T] {
	return NewMatrix4(
		a.m11, a.m21, a.m31, a.m41,
		a.m12, a.m22, a.m32, a.m42,
		a.m13, a.m23, a.m33, a.m43,
		a.m14, a.m24, a.m34, a.m44,
	)
}

// Add returns a + b element-wise.
func (a Matrix4[T]) Add(b Matrix4[T]) Matrix4[T] {
	x, y := a.Array(), b.Array()
	for i := range x {
		x[i] += y[i]
	}
	return Matrix4FromArray(x)
}

// Sub returns a - b element-wise.
func (a Matrix4[T]) Sub(b Matrix4[T]) Matrix4[T] {
	x, y := a.Array(), b.Array()
	for i := range x {
		x[i] -= y[i]
	}
	return Matrix4FromArray(x)
}

// Neg returns -a element-wise.
func (a Matrix4[T]) Neg() Matrix4[T] {
	x := a.Array()
	for i := range x {
		x[i] = -x[i]
	}
	return Matrix4FromArray(x)
}

// Mul returns the matrix product a·b. Operand order matters.
func (a Matrix4[T]) Mul(b Matrix4[T]) Matrix4[T] {
	x, y := a.Array(), b.Array()
	var out [16]T
	var i, j, k int
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			var sum T
			for k = 0; k < 4; k++ {
				sum += x[4*i+k] * y[4*k+j]
			}
			out[4*i+j] = sum
		}
	}
	return Matrix4FromArray(out)
}

// Div returns a·Inv(b). A singular b yields Inf/NaN elements.
func (a Matrix4[T]) Div(b Matrix4[T]) Matrix4[T] {
	return a.Mul(b.Inv())
}

// Det returns the determinant as the 24-term Leibniz expansion: one element
// from every row and every column per product, 12 even and 12 odd
// permutations. Zero exactly when a is singular.
func (a Matrix4[T]) Det() T {
	return a.m11*a.m22*a.m33*a.m44 +
		a.m11*a.m23*a.m34*a.m42 +
		a.m11*a.m24*a.m32*a.m43 +
		a.m12*a.m21*a.m34*a.m43 +
		a.m12*a.m23*a.m31*a.m44 +
		a.m12*a.m24*a.m33*a.m41 +
		a.m13*a.m21*a.m32*a.m44 +
		a.m13*a.m22*a.m34*a.m41 +
		a.m13*a.m24*a.m31*a.m42 +
		a.m14*a.m21*a.m33*a.m42 +
		a.m14*a.m22*a.m31*a.m43 +
		a.m14*a.m23*a.m32*a.m41 -
		a.m11*a.m22*a.m34*a.m43 -
		a.m11*a.m23*a.m32*a.m44 -
		a.m11*a.m24*a.m33*a.m42 -
		a.m12*a.m21*a.m33*a.m44 -
		a.m12*a.m23*a.m34*a.m41 -
		a.m12*a.m24*a.m31*a.m43 -
		a.m13*a.m21*a.m34*a.m42 -
		a.m13*a.m22*a.m31*a.m44 -
		a.m13*a.m24*a.m32*a.m41 -
		a.m14*a.m21*a.m32*a.m43 -
		a.m14*a.m22*a.m33*a.m41 -
		a.m14*a.m23*a.m31*a.m42
}

// Inv returns the inverse as the adjugate (16 cofactors, each a signed sum
// of six products over the complementary 3×3 minor) divided by Det.
// A singular a yields Inf/NaN elements; nothing is trapped.
func (a Matrix4[T]) Inv() Matrix4[T] {
	det := a.Det()
	return Matrix4[T]{
		m11: (a.m22*a.m33*a.m44 +
			a.m23*a.m34*a.m42 +
			a.m24*a.m32*a.m43 -
			a.m22*a.m34*a.m43 -
			a.m23*a.m32*a.m44 -
			a.m24*a.m33*a.m42) / det,
		m12: (a.m12*a.m34*a.m43 +
			a.m13*a.m32*a.m44 +
			a.m14*a.m33*a.m42 -
			a.m12*a.m33*a.m44 -
			a.m13*a.m34*a.m42 -
			a.m14*a.m32*a.m43) / det,
		m13: (a.m12*a.m23*a.m44 +
			a.m13*a.m24*a.m42 +
			a.m14*a.m22*a.m43 -
			a.m12*a.m24*a.m43 -
			a.m13*a.m22*a.m44 -
			a.m14*a.m23*a.m42) / det,
		m14: (a.m12*a.m24*a.m33 +
			a.m13*a.m22*a.m34 +
			a.m14*a.m23*a.m32 -
			a.m12*a.m23*a.m34 -
			a.m13*a.m24*a.m32 -
			a.m14*a.m22*a.m33) / det,
		m21: (a.m21*a.m34*a.m43 +
			a.m23*a.m31*a.m44 +
			a.m24*a.m33*a.m41 -
			a.m21*a.m33*a.m44 -
			a.m23*a.m34*a.m41 -
			a.m24*a.m31*a.m43) / det,
		m22: (a.m11*a.m33*a.m44 +
			a.m13*a.m34*a.m41 +
			a.m14*a.m31*a.m43 -
			a.m11*a.m34*a.m43 -
			a.m13*a.m31*a.m44 -
			a.m14*a.m33*a.m41) / det,
		m23: (a.m11*a.m24*a.m43 +
			a.m13*a.m21*a.m44 +
			a.m14*a.m23*a.m41 -
			a.m11*a.m23*a.m44 -
			a.m13*a.m24*a.m41 -
			a.m14*a.m21*a.m43) / det,
		m24: (a.m11*a.m23*a.m34 +
			a.m13*a.m24*a.m31 +
			a.m14*a.m21*a.m33 -
			a.m11*a.m24*a.m33 -
			a.m13*a.m21*a.m34 -
			a.m14*a.m23*a.m31) / det,
		m31: (a.m21*a.m32*a.m44 +
			a.m22*a.m34*a.m41 +
			a.m24*a.m31*a.m42 -
			a.m21*a.m34*a.m42 -
			a.m22*a.m31*a.m44 -
			a.m24*a.m32*a.m41) / det,
		m32: (a.m11*a.m34*a.m42 +
			a.m12*a.m31*a.m44 +
			a.m14*a.m32*a.m41 -
			a.m11*a.m32*a.m44 -
			a.m12*a.m34*a.m41 -
			a.m14*a.m31*a.m42) / det,
		m33: (a.m11*a.m22*a.m44 +
			a.m12*a.m24*a.m41 +
			a.m14*a.m21*a.m42 -
			a.m11*a.m24*a.m42 -
			a.m12*a.m21*a.m44 -
			a.m14*a.m22*a.m41) / det,
		m34: (a.m11*a.m24*a.m32 +
			a.m12*a.m21*a.m34 +
			a.m14*a.m22*a.m31 -
			a.m11*a.m22*a.m34 -
			a.m12*a.m24*a.m31 -
			a.m14*a.m21*a.m32) / det,
		m41: (a.m21*a.m33*a.m42 +
			a.m22*a.m31*a.m43 +
			a.m23*a.m32*a.m41 -
			a.m21*a.m32*a.m43 -
			a.m22*a.m33*a.m41 -
			a.m23*a.m31*a.m42) / det,
		m42: (a.m11*a.m32*a.m43 +
			a.m12*a.m33*a.m41 +
			a.m13*a.m31*a.m42 -
			a.m11*a.m33*a.m42 -
			a.m12*a.m31*a.m43 -
			a.m13*a.m32*a.m41) / det,
		m43: (a.m11*a.m23*a.m42 +
			a.m12*a.m21*a.m43 +
			a.m13*a.m22*a.m41 -
			a.m11*a.m22*a.m43 -
			a.m12*a.m23*a.m41 -
			a.m13*a.m21*a.m42) / det,
		m44: (a.m11*a.m22*a.m33 +
			a.m12*a.m23*a.m31 +
			a.m13*a.m21*a.m32 -
			a.m11*a.m23*a.m32 -
			a.m12*a.m21*a.m33 -
			a.m13*a.m22*a.m31) / det,
	}
}

// One returns the identity matrix.
func (Matrix4[T]) One() Matrix4[T] {
	return Matrix4[T]{m11: 1, m22: 1, m33: 1, m44: 1}
}

// Zero returns the zero matrix.
func (Matrix4[T]) Zero() Matrix4[T] { return Matrix4[T]{} }

// Scale returns diag(k, k, k, k).
func (Matrix4[T]) Scale(k T) Matrix4[T] {
	return Matrix4[T]{m11: k, m22: k, m33: k, m44: k}
}

// CloseEps reports whether all 16 element pairs are within eps.
func (a Matrix4[T]) CloseEps(b Matrix4[T], eps float64) bool {
	x, y := a.Array(), b.Array()
	for i := range x {
		if !scalar.CloseEps(x[i], y[i], eps) {
			return false
		}
	}
	return true
}

func (a Matrix4[T]) String() string {
	var sb strings.Builder
	e := a.Array()
	for r := 0; r < 4; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "[%v %v %v %v]", e[4*r], e[4*r+1], e[4*r+2], e[4*r+3])
	}
	return sb.String()
}
