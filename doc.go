// Package lvalg is a small generic algebra toolkit: dual numbers, complex
// numbers, quaternions, 4×4 matrices and variable-length vectors over
// float32 or float64, all sharing one operation contract.
//
// 🚀 What is in the box?
//
//	• scalar/ — the numeric backend: Float bound, reciprocal, epsilon checks
//	• alg/    — Dual2, Complex, Quaternion, Matrix4, Vector + capability
//	            interfaces (NormSq, Det, Inv, CloseEps, Scale, One, Zero)
//
// ✨ Why lvalg?
//
//   - Immutable values: every operation returns a new value, so sharing
//     across goroutines needs no locks
//   - Static generics: capabilities are type-parameter bounds, no
//     reflection or type switches at call sites
//   - Closed-form kernels: the 4×4 determinant and inverse are explicit
//     cofactor expansions, no pivoting and no iteration
//   - Pure Go – no cgo, no hidden deps
//
// Quick example:
//
//	a := alg.NewMatrix4(
//		2.0, 3, 5, 7,
//		11, 13, 17, 19,
//		23, 29, 31, 37,
//		41, 43, 47, 51,
//	)
//	back := alg.Inv(alg.Inv(a))
//	fmt.Println(alg.CloseEps(back, a, 1e-4)) // true
//
//	go get github.com/katalvlaran/lvalg
package lvalg
