// SPDX-License-Identifier: MIT

package alg

import (
	"fmt"

	"github.com/katalvlaran/lvalg/scalar"
)

// Dual2 is a dual number x0 + x1·ε with ε² = 0, commonly used for
// forward-mode automatic differentiation.
type Dual2[T scalar.Float] struct {
	x0 T // real part
	x1 T // dual (infinitesimal) part
}

// NewDual2 constructs x0 + x1·ε.
func NewDual2[T scalar.Float](x0, x1 T) Dual2[T] {
	return Dual2[T]{x0: x0, x1: x1}
}

// Real returns the real part.
func (a Dual2[T]) Real() T { return a.x0 }

// Dual returns the infinitesimal part.
func (a Dual2[T]) Dual() T { return a.x1 }

// Add returns a + b.
func (a Dual2[T]) Add(b Dual2[T]) Dual2[T] {
	return Dual2[T]{x0: a.x0 + b.x0, x1: a.x1 + b.x1}
}

// Sub returns a - b.
func (a Dual2[T]) Sub(b Dual2[T]) Dual2[T] {
	return Dual2[T]{x0: a.x0 - b.x0, x1: a.x1 - b.x1}
}

// Mul returns a·b with the ε² term dropped.
func (a Dual2[T]) Mul(b Dual2[T]) Dual2[T] {
	return Dual2[T]{
		x0: a.x0 * b.x0,
		x1: a.x0*b.x1 + a.x1*b.x0,
	}
}

// Div returns a / b. A zero real part in b yields Inf/NaN.
func (a Dual2[T]) Div(b Dual2[T]) Dual2[T] {
	b2 := b.x0 * b.x0
	return Dual2[T]{
		x0: a.x0 / b.x0,
		x1: (a.x1*b.x0 - a.x0*b.x1) / b2,
	}
}

// Neg returns -a.
func (a Dual2[T]) Neg() Dual2[T] {
	return Dual2[T]{x0: -a.x0, x1: -a.x1}
}

// Inv returns 1/a = 1/x0 - (x1/x0²)·ε.
func (a Dual2[T]) Inv() Dual2[T] {
	b2 := a.x0 * a.x0
	return Dual2[T]{
		x0: scalar.Inv(a.x0),
		x1: -a.x1 / b2,
	}
}

// Det returns x0².
func (a Dual2[T]) Det() T { return a.x0 * a.x0 }

// NormSq returns x0². The infinitesimal part carries no magnitude.
func (a Dual2[T]) NormSq() T { return a.x0 * a.x0 }

// One returns 1 + 0ε.
func (Dual2[T]) One() Dual2[T] { return Dual2[T]{x0: 1} }

// Zero returns 0 + 0ε.
func (Dual2[T]) Zero() Dual2[T] { return Dual2[T]{} }

// Scale returns k + 0ε.
func (Dual2[T]) Scale(k T) Dual2[T] { return Dual2[T]{x0: k} }

// CloseEps reports whether both parts are within eps.
func (a Dual2[T]) CloseEps(b Dual2[T], eps float64) bool {
	return scalar.CloseEps(a.x0, b.x0, eps) &&
		scalar.CloseEps(a.x1, b.x1, eps)
}

func (a Dual2[T]) String() string {
	return fmt.Sprintf("(%v + %vε)", a.x0, a.x1)
}
