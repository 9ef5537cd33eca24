package pok

import "errors"

var (
	// ErrStatementShape is returned when a Statement and Witness tree
	// don't have matching shapes (mismatched Kind, missing child, an Or
	// witness with neither side populated, and so on).
	ErrStatementShape = errors.New("pok: statement and witness shapes do not match")

	// ErrMalformedProof is returned by Unmarshal when proof bytes are
	// truncated, have trailing bytes, or contain a non-canonical point
	// encoding. Verify does not return it: a Proof whose tree shape does
	// not match the Statement simply fails verification.
	ErrMalformedProof = errors.New("pok: proof shape does not match statement")
)
