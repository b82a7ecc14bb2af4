// SPDX-License-Identifier: MIT
// Package: boolmatrix
//
// Purpose:
//  - Provide a single source of truth for shape/nil checks.
//  - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).

package boolmatrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *BoolMatrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil.
// Complexity: O(1).
func ValidateSameShape(a, b *BoolMatrix) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrShapeMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrShapeMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols). Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare(m *BoolMatrix) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNotSquare)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b *BoolMatrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquarePair – Composite: BinarySameShape → Square(a).
// This is the precondition of a square Boolean product.
//
// Errors: ErrNilMatrix, ErrShapeMismatch, ErrNotSquare.
// Complexity: O(1).
func ValidateSquarePair(a, b *BoolMatrix) error {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return validatorErrorf("ValidateSquarePair", err)
	}
	if err := ValidateSquare(a); err != nil {
		return validatorErrorf("ValidateSquarePair", err)
	}

	return nil
}
