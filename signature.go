package amf

import (
	"fmt"

	"github.com/MixinNetwork/amf/pok"
	"github.com/bwesterb/go-ristretto"
)

// Signature is the output of Frank: the four public auxiliary group
// elements spec.md's §4.2/§6 fix (A, B, J, R), plus a compound PoK proof
// over them. See DESIGN.md's "amf package" section for the algebra they
// satisfy.
type Signature struct {
	A, B, J, R *ristretto.Point
	Proof      *pok.Proof
}

// MarshalBinary serializes a signature as four canonical 32-byte point
// encodings (A, B, J, R) followed by the PoK proof's own fixed pre-order
// encoding.
func (sig Signature) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, 4*32)
	for _, p := range []*ristretto.Point{sig.A, sig.B, sig.J, sig.R} {
		out = append(out, p.Bytes()...)
	}
	proofBytes, err := marshalProof(sig.Proof)
	if err != nil {
		return nil, err
	}
	return append(out, proofBytes...), nil
}

// UnmarshalBinary is the inverse of MarshalBinary. It rejects truncated
// input and non-canonical point encodings rather than silently accepting
// them, per SPEC_FULL.md's strict-decode requirement.
func (sig *Signature) UnmarshalBinary(data []byte) error {
	if len(data) < 4*32 {
		return ErrMalformedSignature
	}
	points := make([]*ristretto.Point, 4)
	for i := range points {
		var p ristretto.Point
		var buf [32]byte
		copy(buf[:], data[i*32:(i+1)*32])
		if ok := p.SetBytes(&buf); !ok {
			return ErrMalformedSignature
		}
		points[i] = &p
	}
	proof, err := unmarshalProof(data[4*32:])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedSignature, err)
	}

	sig.A, sig.B, sig.J, sig.R = points[0], points[1], points[2], points[3]
	sig.Proof = proof
	return nil
}
