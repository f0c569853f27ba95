// SPDX-License-Identifier: MIT
// Package scalar is the numeric backend every composite type in alg
// delegates to.
//
// It provides:
//
//   - Float: constraints.Float, the bound of Dual2, Complex, Quaternion and
//     Matrix4.
//   - Number: constraints.Integer | constraints.Float, the element bound of
//     Vector.
//   - Inv: the reciprocal 1/x with plain IEEE-754 semantics (no trapping).
//   - CloseEps: |a-b| <= eps, evaluated in the precision of the operands.
//   - F32/F64: named scalars that satisfy the alg capability interfaces, so a
//     plain number can be handed to the same generic front doors as a
//     Quaternion or a Matrix4.
//
// Division by zero is never reported as an error: for floats Inv(0) is
// +Inf, and Inv(-0) is -Inf. Integer Inv truncates and panics on zero, as
// Go's integer division does. Callers that need a guard check the operand
// first.
package scalar
