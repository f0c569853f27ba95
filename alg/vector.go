// SPDX-License-Identifier: MIT

package alg

import (
	"fmt"

	"github.com/katalvlaran/lvalg/scalar"
)

// Vector is an ordered list of integers or floats with element-wise
// arithmetic. Its length is fixed at construction. Integer elements follow
// Go's integer rules: Div and Inv truncate toward zero and panic on a zero
// divisor.
//
// Mismatch policy:
//   - Add/Sub/Mul/Div on vectors of different lengths return an empty vector.
//   - CloseEps on vectors of different lengths panics (ErrLengthMismatch).
//   - NormSq on an empty vector panics (ErrEmptyVector).
//
// VecAdd, VecSub, VecMul, VecDiv, VecNormSq and VecCloseEps report the same
// conditions as errors.
type Vector[T scalar.Number] struct {
	x []T
}

// NewVector copies xs into a new vector.
func NewVector[T scalar.Number](xs ...T) Vector[T] {
	return Vector[T]{x: append([]T(nil), xs...)}
}

// Len returns the number of elements.
func (v Vector[T]) Len() int { return len(v.x) }

// At returns element i. Panics if i is out of range.
func (v Vector[T]) At(i int) T { return v.x[i] }

// Slice returns a copy of the elements.
func (v Vector[T]) Slice() []T { return append([]T(nil), v.x...) }

// zip applies f pairwise; the empty vector is returned on length mismatch.
func (v Vector[T]) zip(w Vector[T], f func(a, b T) T) Vector[T] {
	if len(v.x) != len(w.x) {
		return Vector[T]{}
	}
	out := make([]T, len(v.x))
	for i := range v.x {
		out[i] = f(v.x[i], w.x[i])
	}
	return Vector[T]{x: out}
}

// mapEach applies f to every element.
func (v Vector[T]) mapEach(f func(a T) T) Vector[T] {
	out := make([]T, len(v.x))
	for i, a := range v.x {
		out[i] = f(a)
	}
	return Vector[T]{x: out}
}

// Add returns v + w element-wise, or the empty vector if lengths differ.
func (v Vector[T]) Add(w Vector[T]) Vector[T] {
	return v.zip(w, func(a, b T) T { return a + b })
}

// Sub returns v - w element-wise, or the empty vector if lengths differ.
func (v Vector[T]) Sub(w Vector[T]) Vector[T] {
	return v.zip(w, func(a, b T) T { return a - b })
}

// Mul returns v * w element-wise, or the empty vector if lengths differ.
func (v Vector[T]) Mul(w Vector[T]) Vector[T] {
	return v.zip(w, func(a, b T) T { return a * b })
}

// Div returns v / w element-wise, or the empty vector if lengths differ.
func (v Vector[T]) Div(w Vector[T]) Vector[T] {
	return v.zip(w, func(a, b T) T { return a / b })
}

// Neg returns -v element-wise.
func (v Vector[T]) Neg() Vector[T] {
	return v.mapEach(func(a T) T { return -a })
}

// Inv returns the element-wise reciprocal. Integer elements truncate, so
// only ±1 survive as non-zero.
func (v Vector[T]) Inv() Vector[T] {
	return v.mapEach(scalar.Inv[T])
}

// NormSq folds the elements as x0 + x1² + x2² + ... + xn².
// The first element enters the sum as-is, not squared.
// Panics on an empty vector.
func (v Vector[T]) NormSq() T {
	if len(v.x) == 0 {
		panic(algErrorf(opNormSq, ErrEmptyVector))
	}
	res := v.x[0]
	for _, a := range v.x[1:] {
		res += a * a
	}
	return res
}

// CloseEps reports whether every element pair is within eps.
// Panics if the lengths differ.
func (v Vector[T]) CloseEps(w Vector[T], eps float64) bool {
	ok, err := VecCloseEps(v, w, eps)
	if err != nil {
		panic(err)
	}
	return ok
}

func (v Vector[T]) String() string {
	return fmt.Sprint(v.x)
}

// checkLen returns a tagged ErrLengthMismatch when v and w differ in length.
func checkLen[T scalar.Number](tag string, v, w Vector[T]) error {
	if len(v.x) != len(w.x) {
		return algErrorf(tag, fmt.Errorf("%d != %d: %w", len(v.x), len(w.x), ErrLengthMismatch))
	}
	return nil
}

// VecAdd returns v + w, or ErrLengthMismatch.
func VecAdd[T scalar.Number](v, w Vector[T]) (Vector[T], error) {
	if err := checkLen(opAdd, v, w); err != nil {
		return Vector[T]{}, err
	}
	return v.Add(w), nil
}

// VecSub returns v - w, or ErrLengthMismatch.
func VecSub[T scalar.Number](v, w Vector[T]) (Vector[T], error) {
	if err := checkLen(opSub, v, w); err != nil {
		return Vector[T]{}, err
	}
	return v.Sub(w), nil
}

// VecMul returns v * w element-wise, or ErrLengthMismatch.
func VecMul[T scalar.Number](v, w Vector[T]) (Vector[T], error) {
	if err := checkLen(opMul, v, w); err != nil {
		return Vector[T]{}, err
	}
	return v.Mul(w), nil
}

// VecDiv returns v / w element-wise, or ErrLengthMismatch.
func VecDiv[T scalar.Number](v, w Vector[T]) (Vector[T], error) {
	if err := checkLen(opDiv, v, w); err != nil {
		return Vector[T]{}, err
	}
	return v.Div(w), nil
}

// VecNormSq returns v.NormSq(), or ErrEmptyVector.
func VecNormSq[T scalar.Number](v Vector[T]) (T, error) {
	if len(v.x) == 0 {
		return 0, algErrorf(opNormSq, ErrEmptyVector)
	}
	return v.NormSq(), nil
}

// VecCloseEps reports whether every element pair is within eps, or
// ErrLengthMismatch.
func VecCloseEps[T scalar.Number](v, w Vector[T], eps float64) (bool, error) {
	if err := checkLen(opCloseEps, v, w); err != nil {
		return false, err
	}
	for i := range v.x {
		if !scalar.CloseEps(v.x[i], w.x[i], eps) {
			return false, nil
		}
	}
	return true, nil
}
