// SPDX-License-Identifier: MIT

package alg

import (
	"fmt"

	"github.com/katalvlaran/lvalg/scalar"
)

// Quaternion is x·i + y·j + z·k + w, commonly used for rotations in 3D.
// The scalar part w comes after the vector part in every constructor and
// accessor. Unit norm is a usage convention and is not enforced.
type Quaternion[T scalar.Float] struct {
	x, y, z T // vector part
	w       T // scalar part
}

// NewQuaternion constructs x·i + y·j + z·k + w.
func NewQuaternion[T scalar.Float](x, y, z, w T) Quaternion[T] {
	return Quaternion[T]{x: x, y: y, z: z, w: w}
}

// X returns the i component.
func (q Quaternion[T]) X() T { return q.x }

// Y returns the j component.
func (q Quaternion[T]) Y() T { return q.y }

// Z returns the k component.
func (q Quaternion[T]) Z() T { return q.z }

// W returns the scalar component.
func (q Quaternion[T]) W() T { return q.w }

// Conj returns -x·i - y·j - z·k + w.
func (q Quaternion[T]) Conj() Quaternion[T] {
	return Quaternion[T]{x: -q.x, y: -q.y, z: -q.z, w: q.w}
}

// Add returns a + b.
func (a Quaternion[T]) Add(b Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		x: a.x + b.x,
		y: a.y + b.y,
		z: a.z + b.z,
		w: a.w + b.w,
	}
}

// Sub returns a - b.
func (a Quaternion[T]) Sub(b Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		x: a.x - b.x,
		y: a.y - b.y,
		z: a.z - b.z,
		w: a.w - b.w,
	}
}

// Mul returns the Hamilton product a·b. Operand order matters.
func (a Quaternion[T]) Mul(b Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		x: a.w*b.x - a.z*b.y + a.y*b.z + a.x*b.w,
		y: a.z*b.x + a.w*b.y - a.x*b.z + a.y*b.w,
		z: a.x*b.y - a.y*b.x + a.w*b.z + a.z*b.w,
		w: a.w*b.w - a.x*b.x - a.y*b.y - a.z*b.z,
	}
}

// Div returns a·conj(b)/|b|², i.e. a·Inv(b) in closed form.
func (a Quaternion[T]) Div(b Quaternion[T]) Quaternion[T] {
	len2 := b.x*b.x + b.y*b.y + b.z*b.z + b.w*b.w
	return Quaternion[T]{
		x: (a.z*b.y - a.w*b.x - a.y*b.z + a.x*b.w) / len2,
		y: (a.x*b.z - a.z*b.x - a.w*b.y + a.y*b.w) / len2,
		z: (a.y*b.x - a.x*b.y - a.w*b.z + a.z*b.w) / len2,
		w: (a.w*b.w + a.x*b.x + a.y*b.y + a.z*b.z) / len2,
	}
}

// Neg returns -q.
func (q Quaternion[T]) Neg() Quaternion[T] {
	return Quaternion[T]{x: -q.x, y: -q.y, z: -q.z, w: -q.w}
}

// Inv returns conj(q)/|q|². The zero quaternion yields NaN components.
func (q Quaternion[T]) Inv() Quaternion[T] {
	len2 := q.x*q.x + q.y*q.y + q.z*q.z + q.w*q.w
	return Quaternion[T]{
		x: -q.x / len2,
		y: -q.y / len2,
		z: -q.z / len2,
		w: q.w / len2,
	}
}

// NormSq returns x² + y² + z² + w².
func (q Quaternion[T]) NormSq() T {
	return q.x*q.x + q.y*q.y + q.z*q.z + q.w*q.w
}

// One returns the identity rotation (0, 0, 0, 1).
func (Quaternion[T]) One() Quaternion[T] { return Quaternion[T]{w: 1} }

// Zero returns (0, 0, 0, 0).
func (Quaternion[T]) Zero() Quaternion[T] { return Quaternion[T]{} }

// Scale returns (0, 0, 0, k).
func (Quaternion[T]) Scale(k T) Quaternion[T] { return Quaternion[T]{w: k} }

// CloseEps reports whether all four components are within eps.
func (a Quaternion[T]) CloseEps(b Quaternion[T], eps float64) bool {
	return scalar.CloseEps(a.x, b.x, eps) &&
		scalar.CloseEps(a.y, b.y, eps) &&
		scalar.CloseEps(a.z, b.z, eps) &&
		scalar.CloseEps(a.w, b.w, eps)
}

func (q Quaternion[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v; %v)", q.x, q.y, q.z, q.w)
}
