// SPDX-License-Identifier: MIT
package alg_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvalg/alg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector_Elementwise(t *testing.T) {
	t.Parallel()

	a := alg.NewVector(1.0, 2, 4)
	b := alg.NewVector(2.0, 8, 1)

	tests := []struct {
		name string
		got  alg.Vector[float64]
		want []float64
	}{
		{"add", a.Add(b), []float64{3, 10, 5}},
		{"sub", a.Sub(b), []float64{-1, -6, 3}},
		{"mul", a.Mul(b), []float64{2, 16, 4}},
		{"div", a.Div(b), []float64{0.5, 0.25, 4}},
		{"neg", a.Neg(), []float64{-1, -2, -4}},
		{"inv", alg.Inv(a), []float64{1, 0.5, 0.25}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.got.Slice())
		})
	}
}

// TestVector_LengthMismatch pins the historical behavior: arithmetic yields
// an empty vector, CloseEps panics.
func TestVector_LengthMismatch(t *testing.T) {
	t.Parallel()

	a := alg.NewVector(1.0, 2, 3)
	b := alg.NewVector(1.0, 2)

	for name, got := range map[string]alg.Vector[float64]{
		"add": a.Add(b),
		"sub": a.Sub(b),
		"mul": a.Mul(b),
		"div": b.Div(a),
	} {
		assert.Equal(t, 0, got.Len(), name)
	}

	err := recoverError(func() {
		alg.CloseEps(alg.NewVector(1.0), alg.NewVector(1.0, 2), 0.1)
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, alg.ErrLengthMismatch), "got %v", err)
}

// TestVector_Strict covers the error-returning variants.
func TestVector_Strict(t *testing.T) {
	t.Parallel()

	a := alg.NewVector(1.0, 2, 3)
	b := alg.NewVector(1.0, 2)

	ops := map[string]func(v, w alg.Vector[float64]) (alg.Vector[float64], error){
		"Add": alg.VecAdd[float64],
		"Sub": alg.VecSub[float64],
		"Mul": alg.VecMul[float64],
		"Div": alg.VecDiv[float64],
	}
	for name, op := range ops {
		_, err := op(a, b)
		require.ErrorIs(t, err, alg.ErrLengthMismatch, name)
		assert.Contains(t, err.Error(), name+": 3 != 2", name)

		got, err := op(a, a)
		require.NoError(t, err, name)
		assert.Equal(t, 3, got.Len(), name)
	}

	_, err := alg.VecCloseEps(a, b, 0)
	require.ErrorIs(t, err, alg.ErrLengthMismatch)

	ok, err := alg.VecCloseEps(a, alg.NewVector(1.0, 2, 3.25), 0.25)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = alg.VecNormSq(alg.NewVector[float64]())
	require.ErrorIs(t, err, alg.ErrEmptyVector)

	n, err := alg.VecNormSq(a)
	require.NoError(t, err)
	assert.Equal(t, 14.0, n)
}

// TestVector_NormSq pins the fold: the first element is added unsquared.
func TestVector_NormSq(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 14.0, alg.NormSq(alg.NewVector(1.0, 2, 3)))
	assert.Equal(t, 5.0, alg.NormSq(alg.NewVector(5.0)))
	assert.Equal(t, 22.0, alg.NormSq(alg.NewVector(-3.0, 4, 3)))

	err := recoverError(func() { alg.NewVector[float64]().NormSq() })
	require.ErrorIs(t, err, alg.ErrEmptyVector)
}

func TestVector_Empty(t *testing.T) {
	t.Parallel()

	e := alg.NewVector[float64]()
	assert.Equal(t, 0, e.Neg().Len())
	assert.Equal(t, 0, e.Inv().Len())
	assert.Equal(t, 0, e.Add(e).Len())
	assert.True(t, e.CloseEps(e, 0))
}

func TestVector_CloseEps(t *testing.T) {
	t.Parallel()

	a := alg.NewVector(1.0, 2, 3)
	assert.True(t, alg.CloseEps(a, alg.NewVector(1.0, 2, 3), 0))
	assert.False(t, alg.CloseEps(a, alg.NewVector(1.0, 2, 3.5), 0.25))
	assert.True(t, alg.CloseEps(a, alg.NewVector(1.0, 2, 3.5), 0.5))
}

// TestVector_NoAliasing checks that values never share storage with callers.
func TestVector_NoAliasing(t *testing.T) {
	t.Parallel()

	src := []float64{1, 2, 3}
	v := alg.NewVector(src...)
	src[0] = 99
	assert.Equal(t, 1.0, v.At(0))

	out := v.Slice()
	out[1] = 99
	assert.Equal(t, 2.0, v.At(1))

	w := v.Neg()
	assert.Equal(t, 1.0, v.At(0))
	assert.Equal(t, -1.0, w.At(0))
}

func TestVector_InvZero(t *testing.T) {
	t.Parallel()

	inv := alg.NewVector(0.0, 2).Inv()
	assert.True(t, math.IsInf(inv.At(0), 1))
	assert.Equal(t, 0.5, inv.At(1))
}

func TestVector_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[1 2 3]", alg.NewVector(1.0, 2, 3).String())
}

// TestVector_Integers runs element-wise arithmetic over integer elements.
func TestVector_Integers(t *testing.T) {
	t.Parallel()

	a := alg.NewVector(1, 2, 3)
	b := alg.NewVector(3, 2, 1)

	tests := []struct {
		name string
		got  alg.Vector[int]
		want []int
	}{
		{"add", a.Add(b), []int{4, 4, 4}},
		{"sub", a.Sub(b), []int{-2, 0, 2}},
		{"mul", a.Mul(b), []int{3, 4, 3}},
		{"div truncates", b.Div(a), []int{3, 1, 0}},
		{"neg", a.Neg(), []int{-1, -2, -3}},
		{"inv truncates", alg.Inv(alg.NewVector(1, -1, 2)), []int{1, -1, 0}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.got.Slice())
		})
	}

	assert.Equal(t, 14, alg.NormSq(a))
	assert.Equal(t, 0, a.Add(alg.NewVector(1, 2)).Len())
	assert.True(t, alg.CloseEps(a, alg.NewVector(1, 2, 4), 1))
	assert.False(t, alg.CloseEps(a, alg.NewVector(1, 2, 4), 0.99))
}

// TestVector_Unsigned checks that closeness does not wrap on unsigned
// elements when the left operand is smaller.
func TestVector_Unsigned(t *testing.T) {
	t.Parallel()

	a := alg.NewVector[uint8](1, 200)
	b := alg.NewVector[uint8](3, 199)

	assert.True(t, alg.CloseEps(a, b, 2))
	assert.False(t, alg.CloseEps(a, b, 1))
	assert.Equal(t, []uint8{4, 143}, a.Add(b).Slice())
}
