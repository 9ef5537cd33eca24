package amf

import "errors"

var (
	// ErrRNG is reserved for random-scalar sampling failure. Keygen and
	// Frank keep an error return for this rather than panicking, but
	// go-ristretto's Scalar.Rand has no error-returning path of its own
	// to propagate, so in the current implementation neither ever
	// actually produces it.
	ErrRNG = errors.New("amf: random scalar generation failed")

	// ErrMalformedSignature signals that a Signature's bytes did not
	// decode to a well-formed point/proof tree.
	ErrMalformedSignature = errors.New("amf: malformed signature encoding")
)
