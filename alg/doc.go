// SPDX-License-Identifier: MIT
// Package alg implements small fixed-shape algebras over a generic scalar.
//
// Types:
//
//	Dual2[T]       real + infinitesimal part; forward-mode differentiation
//	Complex[T]     real + imaginary part; rotations in 2D
//	Quaternion[T]  vector part (x, y, z) + scalar part w; rotations in 3D
//	Matrix4[T]     4×4 matrix, elements m11..m44; linear maps in 3D space
//	Vector[T]      variable-length sequence with element-wise arithmetic,
//	               integer or float elements
//
// Every value is immutable: operations return a new value and never touch
// their operands, so values may be shared freely between goroutines.
//
// Operation table (x = provided, - = not defined for the type):
//
//	            Add Sub Mul Div Neg Inv Det NormSq One Zero Scale CloseEps
//	Dual2        x   x   x   x   x   x   x    x     x   x    x      x
//	Complex      x   x   x   x   x   x   x    x     x   x    x      x
//	Quaternion   x   x   x   x   x   x   -    x     x   x    x      x
//	Matrix4      x   x   x   x   x   x   x    -     x   x    x      x
//	Vector       x   x   x   x   x   x   -    x     -   -    -      x
//
// Capabilities are small interfaces (NormSquarer, Determinant, Inverter,
// EpsComparer, Scaler, Identity) used purely as generic bounds; the
// front-door functions NormSq, Det, Inv, CloseEps, Scale, One and Zero
// accept any type that carries the capability, including scalar.F32 and
// scalar.F64.
//
// Numeric policy:
//
//   - Failure modes follow IEEE-754. Inverting a zero Dual2/Complex/Quaternion
//     or a singular Matrix4 yields Inf/NaN components; nothing is trapped.
//   - Approximate equality is a conjunction of per-component scalar
//     |a-b| <= eps checks (see scalar.CloseEps).
//   - Vector keeps its historical mismatch behavior: element-wise arithmetic on
//     vectors of different lengths returns an empty vector, while CloseEps
//     panics. VecAdd, VecSub, VecMul, VecDiv, VecNormSq and VecCloseEps report
//     ErrLengthMismatch / ErrEmptyVector as errors instead.
//
// Usage:
//
//	a := alg.NewQuaternion(1.0, 2, 3, 4)
//	b := alg.NewQuaternion(4.0, 3, 2, 1)
//	c := a.Mul(b)                       // (12, 24, 6, -12)
//	ok := alg.Close(alg.Inv(alg.Inv(a)), a, alg.WithEpsilon(1e-9))
package alg
