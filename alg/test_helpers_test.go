// SPDX-License-Identifier: MIT
// Package alg_test contains shared fixtures and generic law checkers.
//
// Purpose:
//   - Keep fixtures deterministic (fixed seeds, exact-integer matrices).
//   - Check the algebraic laws once, generically, for every type.

package alg_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvalg/alg"
	"github.com/stretchr/testify/require"
)

// lawEps bounds rounding noise in law checks on random operands.
const lawEps = 1e-9

// ring is the operation set shared by the fixed-shape algebras.
type ring[A any] interface {
	Add(A) A
	Sub(A) A
	Mul(A) A
	Div(A) A
	Neg() A
	Inv() A
	alg.Identity[A]
	alg.EpsComparer[A]
}

// checkRingLaws asserts identity, double negation and a - a = 0 for a.
func checkRingLaws[A ring[A]](t *testing.T, a A) {
	t.Helper()
	zero, one := alg.Zero[A](), alg.One[A]()

	require.True(t, a.Add(zero).CloseEps(a, 0), "a + 0 must equal a: %v", a)
	require.True(t, a.Mul(one).CloseEps(a, 0), "a * 1 must equal a: %v", a)
	require.True(t, one.Mul(a).CloseEps(a, 0), "1 * a must equal a: %v", a)
	require.True(t, a.Neg().Neg().CloseEps(a, 0), "-(-a) must equal a: %v", a)
	require.True(t, a.Sub(a).CloseEps(zero, 0), "a - a must equal 0: %v", a)
	require.True(t, a.Add(a.Neg()).CloseEps(zero, 0), "a + (-a) must equal 0: %v", a)
}

// checkInverseLaws asserts Inv(Inv(a)) ≈ a, a/a ≈ 1 and a*Inv(a) ≈ 1.
func checkInverseLaws[A ring[A]](t *testing.T, a A, eps float64) {
	t.Helper()
	one := alg.One[A]()

	require.True(t, a.Inv().Inv().CloseEps(a, eps), "Inv(Inv(a)) must be ≈ a: %v", a)
	require.True(t, a.Div(a).CloseEps(one, eps), "a / a must be ≈ 1: %v", a.Div(a))
	require.True(t, a.Mul(a.Inv()).CloseEps(one, eps), "a * Inv(a) must be ≈ 1: %v", a.Mul(a.Inv()))
}

// primes4 is the 16-prime fixture with 51 in the last slot.
func primes4() alg.Matrix4[float64] {
	return alg.NewMatrix4(
		2.0, 3, 5, 7,
		11, 13, 17, 19,
		23, 29, 31, 37,
		41, 43, 47, 51,
	)
}

// diag4 returns diag(a, b, c, d).
func diag4(a, b, c, d float64) alg.Matrix4[float64] {
	return alg.NewMatrix4(
		a, 0, 0, 0,
		0, b, 0, 0,
		0, 0, c, 0,
		0, 0, 0, d,
	)
}

// randomWellConditioned returns a seeded U(-1,1) matrix with 4 added to the
// diagonal, which keeps it strictly diagonally dominant (never singular).
func randomWellConditioned(rng *rand.Rand) alg.Matrix4[float64] {
	var e [16]float64
	for i := range e {
		e[i] = rng.Float64()*2 - 1
	}
	for i := 0; i < 4; i++ {
		e[5*i] += 4
	}
	return alg.Matrix4FromArray(e)
}

// randomQuaternion returns a seeded quaternion kept away from zero.
func randomQuaternion(rng *rand.Rand) alg.Quaternion[float64] {
	return alg.NewQuaternion(
		rng.Float64()*2-1,
		rng.Float64()*2-1,
		rng.Float64()*2-1,
		rng.Float64()+1,
	)
}

// recoverError runs f and returns the error it panicked with, or nil.
func recoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}
