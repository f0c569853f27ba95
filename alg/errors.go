// SPDX-License-Identifier: MIT
// Package alg: sentinel error set.
// Only conditions that the numeric policy does not absorb get a sentinel;
// everything else follows IEEE-754 and returns a value.

package alg

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates that two vectors of different lengths were
	// combined element-wise or compared.
	ErrLengthMismatch = errors.New("alg: vector length mismatch")

	// ErrEmptyVector indicates that an operation needing at least one element
	// (NormSq) was applied to an empty vector.
	ErrEmptyVector = errors.New("alg: empty vector")
)

// Operation tags used when wrapping sentinels.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opDiv      = "Div"
	opNormSq   = "NormSq"
	opCloseEps = "CloseEps"
)

// algErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func algErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
