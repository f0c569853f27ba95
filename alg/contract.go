// SPDX-License-Identifier: MIT
// Package alg: capability interfaces and their generic front doors.
//
// Each interface names exactly one operation. They exist to be used as
// type-parameter bounds; nothing in this package switches on dynamic types.

package alg

// NormSquarer computes the squared norm (sum of squared components).
type NormSquarer[R any] interface {
	NormSq() R
}

// Determinant computes a value that is zero exactly when the receiver is
// not invertible.
type Determinant[R any] interface {
	Det() R
}

// Inverter computes the multiplicative inverse.
type Inverter[R any] interface {
	Inv() R
}

// EpsComparer checks approximate equality with a caller-supplied tolerance.
type EpsComparer[A any] interface {
	CloseEps(other A, eps float64) bool
}

// Scaler builds the element that scales by k under multiplication.
// The receiver is not read; the zero value is enough.
type Scaler[T, A any] interface {
	Scale(k T) A
}

// Identity provides the multiplicative and additive identities.
// The receiver is not read; the zero value is enough.
type Identity[A any] interface {
	One() A
	Zero() A
}

// NormSq returns a.NormSq().
func NormSq[A NormSquarer[R], R any](a A) R { return a.NormSq() }

// Det returns a.Det().
func Det[A Determinant[R], R any](a A) R { return a.Det() }

// Inv returns a.Inv().
func Inv[A Inverter[R], R any](a A) R { return a.Inv() }

// CloseEps reports whether a and b are within eps component-wise.
func CloseEps[A EpsComparer[A]](a, b A, eps float64) bool { return a.CloseEps(b, eps) }

// Close is CloseEps with the tolerance taken from opts (DefaultEpsilon
// when none is given).
func Close[A EpsComparer[A]](a, b A, opts ...Option) bool {
	return a.CloseEps(b, NewOptions(opts...).Epsilon())
}

// Scale returns the A that scales by k, e.g. Scale[Matrix4[float64]](2.0)
// is the diagonal matrix diag(2, 2, 2, 2).
func Scale[A Scaler[T, A], T any](k T) A {
	var a A
	return a.Scale(k)
}

// One returns the multiplicative identity of A.
func One[A Identity[A]]() A {
	var a A
	return a.One()
}

// Zero returns the additive identity of A.
func Zero[A Identity[A]]() A {
	var a A
	return a.Zero()
}
