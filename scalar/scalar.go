// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Float is the scalar bound for the fixed-shape algebras.
type Float interface {
	constraints.Float
}

// Number is the element bound for element-wise containers: any integer or
// floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Inv returns the reciprocal 1/x. For floats, zero yields ±Inf per
// IEEE-754. For integers the quotient truncates toward zero (Inv(2) == 0)
// and Inv(0) panics with the runtime's integer divide error.
func Inv[T Number](x T) T {
	return 1 / x
}

// Abs returns |x|. NaN stays NaN. Unsigned values are returned unchanged.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// CloseEps reports whether |a-b| <= eps.
// The difference is taken in T and eps is converted to T, so float32
// operands are compared at float32 precision. eps = 0 is exact equality.
// A NaN on either side is never close. For integers the conversion
// truncates eps, which is equivalent since |a-b| is whole; the larger
// operand is subtracted from so unsigned types never wrap.
func CloseEps[T Number](a, b T, eps float64) bool {
	d := a - b
	if a < b {
		d = b - a
	}
	return d <= T(eps)
}

// F32 is a float32 that implements the capability methods.
type F32 float32

// Inv returns 1/x.
func (x F32) Inv() F32 { return Inv(x) }

// NormSq returns x*x.
func (x F32) NormSq() F32 { return x * x }

// CloseEps reports whether |x-o| <= eps.
func (x F32) CloseEps(o F32, eps float64) bool { return CloseEps(x, o, eps) }

// String formats x like a float32.
func (x F32) String() string { return fmt.Sprint(float32(x)) }

// F64 is a float64 that implements the capability methods.
type F64 float64

// Inv returns 1/x.
func (x F64) Inv() F64 { return Inv(x) }

// NormSq returns x*x.
func (x F64) NormSq() F64 { return x * x }

// CloseEps reports whether |x-o| <= eps.
func (x F64) CloseEps(o F64, eps float64) bool { return CloseEps(x, o, eps) }

// String formats x like a float64.
func (x F64) String() string { return fmt.Sprint(float64(x)) }
