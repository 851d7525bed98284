// SPDX-License-Identifier: MIT
// Package matrix: centralized fail-fast validators.
// Every exported kernel calls the relevant validator(s) before touching
// data, so the kernels themselves stay branch-light. After a validator has
// passed, interface At/Set errors are not expected and may be discarded.

package matrix

import "fmt"

// validatorErrorf decorates a sentinel with the operation tag that raised it.
func validatorErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// ValidateNotNil rejects a nil Matrix value.
func ValidateNotNil(op string, m Matrix) error {
	if m == nil {
		return validatorErrorf(op, ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape requires a and b to have identical dimensions.
func ValidateSameShape(op string, a, b Matrix) error {
	if err := ValidateNotNil(op, a); err != nil {
		return err
	}
	if err := ValidateNotNil(op, b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf(op, ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare requires m to be square (and non-nil).
func ValidateSquare(op string, m Matrix) error {
	if err := ValidateNotNil(op, m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf(op, ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible requires a.Cols == b.Rows.
func ValidateMulCompatible(op string, a, b Matrix) error {
	if err := ValidateNotNil(op, a); err != nil {
		return err
	}
	if err := ValidateNotNil(op, b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(op, ErrDimensionMismatch)
	}

	return nil
}

// ValidateAugmentCompatible requires a and b to share a row count.
func ValidateAugmentCompatible(op string, a, b Matrix) error {
	if err := ValidateNotNil(op, a); err != nil {
		return err
	}
	if err := ValidateNotNil(op, b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf(op, ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen requires len(v) == m.Cols for a MatVec product.
func ValidateVecLen(op string, m Matrix, n int) error {
	if err := ValidateNotNil(op, m); err != nil {
		return err
	}
	if m.Cols() != n {
		return validatorErrorf(op, ErrDimensionMismatch)
	}

	return nil
}

// ValidateRowIndex requires 0 <= i < m.Rows.
func ValidateRowIndex(op string, m Matrix, i int) error {
	if err := ValidateNotNil(op, m); err != nil {
		return err
	}
	if i < 0 || i >= m.Rows() {
		return validatorErrorf(op, ErrOutOfRange)
	}

	return nil
}
