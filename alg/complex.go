// SPDX-License-Identifier: MIT

package alg

import (
	"fmt"

	"github.com/katalvlaran/lvalg/scalar"
)

// Complex is x0 + x1·i, commonly used for rotations in 2D.
type Complex[T scalar.Float] struct {
	x0 T // real
	x1 T // imaginary
}

// NewComplex constructs x0 + x1·i.
func NewComplex[T scalar.Float](x0, x1 T) Complex[T] {
	return Complex[T]{x0: x0, x1: x1}
}

// Real returns the real part.
func (a Complex[T]) Real() T { return a.x0 }

// Imag returns the imaginary part.
func (a Complex[T]) Imag() T { return a.x1 }

// Conj returns the conjugate x0 - x1·i.
func (a Complex[T]) Conj() Complex[T] {
	return Complex[T]{x0: a.x0, x1: -a.x1}
}

// Add returns a + b.
func (a Complex[T]) Add(b Complex[T]) Complex[T] {
	return Complex[T]{x0: a.x0 + b.x0, x1: a.x1 + b.x1}
}

// Sub returns a - b.
func (a Complex[T]) Sub(b Complex[T]) Complex[T] {
	return Complex[T]{x0: a.x0 - b.x0, x1: a.x1 - b.x1}
}

// Mul returns a·b.
func (a Complex[T]) Mul(b Complex[T]) Complex[T] {
	return Complex[T]{
		x0: a.x0*b.x0 - a.x1*b.x1,
		x1: a.x0*b.x1 + a.x1*b.x0,
	}
}

// Div returns a·conj(b)/|b|². b = 0 yields NaN.
func (a Complex[T]) Div(b Complex[T]) Complex[T] {
	len2 := b.x0*b.x0 + b.x1*b.x1
	return Complex[T]{
		x0: (a.x0*b.x0 + a.x1*b.x1) / len2,
		x1: (a.x1*b.x0 - a.x0*b.x1) / len2,
	}
}

// Neg returns -a.
func (a Complex[T]) Neg() Complex[T] {
	return Complex[T]{x0: -a.x0, x1: -a.x1}
}

// Inv returns conj(a)/|a|².
func (a Complex[T]) Inv() Complex[T] {
	len2 := a.x0*a.x0 + a.x1*a.x1
	return Complex[T]{
		x0: a.x0 / len2,
		x1: -a.x1 / len2,
	}
}

// Det returns the squared modulus x0² + x1².
func (a Complex[T]) Det() T { return a.x0*a.x0 + a.x1*a.x1 }

// NormSq returns x0² + x1².
func (a Complex[T]) NormSq() T { return a.x0*a.x0 + a.x1*a.x1 }

// One returns 1 + 0i.
func (Complex[T]) One() Complex[T] { return Complex[T]{x0: 1} }

// Zero returns 0 + 0i.
func (Complex[T]) Zero() Complex[T] { return Complex[T]{} }

// Scale returns k + 0i.
func (Complex[T]) Scale(k T) Complex[T] { return Complex[T]{x0: k} }

// CloseEps reports whether both parts are within eps.
func (a Complex[T]) CloseEps(b Complex[T], eps float64) bool {
	return scalar.CloseEps(a.x0, b.x0, eps) &&
		scalar.CloseEps(a.x1, b.x1, eps)
}

func (a Complex[T]) String() string {
	return fmt.Sprintf("(%v + %vi)", a.x0, a.x1)
}
