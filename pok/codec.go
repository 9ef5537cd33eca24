package pok

import (
	"github.com/bwesterb/go-ristretto"
)

// Marshal serializes proof in a fixed pre-order traversal, node by node:
// an Or node writes its left challenge and then its two children, an And
// node writes its two children, and a leaf writes its commitment point(s)
// followed by its response scalar. The traversal order is implied
// by proof's own shape, so Marshal needs no accompanying Statement.
func Marshal(proof *Proof) ([]byte, error) {
	var out []byte
	appendProofBytes(proof, &out)
	return out, nil
}

func appendProofBytes(proof *Proof, out *[]byte) {
	switch proof.Kind {
	case KindDLog:
		*out = append(*out, proof.Commit1.Bytes()...)
		*out = append(*out, proof.Response.Bytes()...)
	case KindDLogEq:
		*out = append(*out, proof.Commit1.Bytes()...)
		*out = append(*out, proof.Commit2.Bytes()...)
		*out = append(*out, proof.Response.Bytes()...)
	case KindAnd:
		appendProofBytes(proof.Left, out)
		appendProofBytes(proof.Right, out)
	case KindOr:
		*out = append(*out, proof.ChallengeLeft.Bytes()...)
		appendProofBytes(proof.Left, out)
		appendProofBytes(proof.Right, out)
	}
}

// Unmarshal decodes a Proof whose tree shape matches shape (a Statement
// built only for its Kind tree; its Base/Target points are irrelevant to
// decoding and may be nil). It rejects truncated input and non-canonical
// point encodings, per spec.md's strict-decode requirement. Scalars are
// accepted as raw little-endian bytes without a canonical-range check,
// matching go-ristretto's own Scalar.SetBytes semantics.
func Unmarshal(shape *Statement, data []byte) (*Proof, error) {
	proof, rest, err := readProof(shape, data)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, ErrMalformedProof
	}
	return proof, nil
}

func readProof(shape *Statement, data []byte) (*Proof, []byte, error) {
	switch shape.Kind {
	case KindDLog:
		commit, data, err := readPoint(data)
		if err != nil {
			return nil, nil, err
		}
		response, data, err := readScalar(data)
		if err != nil {
			return nil, nil, err
		}
		return &Proof{Kind: KindDLog, Commit1: commit, Response: response}, data, nil

	case KindDLogEq:
		commit1, data, err := readPoint(data)
		if err != nil {
			return nil, nil, err
		}
		commit2, data, err := readPoint(data)
		if err != nil {
			return nil, nil, err
		}
		response, data, err := readScalar(data)
		if err != nil {
			return nil, nil, err
		}
		return &Proof{Kind: KindDLogEq, Commit1: commit1, Commit2: commit2, Response: response}, data, nil

	case KindAnd:
		left, data, err := readProof(shape.Left, data)
		if err != nil {
			return nil, nil, err
		}
		right, data, err := readProof(shape.Right, data)
		if err != nil {
			return nil, nil, err
		}
		return &Proof{Kind: KindAnd, Left: left, Right: right}, data, nil

	case KindOr:
		challengeLeft, data, err := readScalar(data)
		if err != nil {
			return nil, nil, err
		}
		left, data, err := readProof(shape.Left, data)
		if err != nil {
			return nil, nil, err
		}
		right, data, err := readProof(shape.Right, data)
		if err != nil {
			return nil, nil, err
		}
		return &Proof{Kind: KindOr, ChallengeLeft: challengeLeft, Left: left, Right: right}, data, nil
	}
	return nil, nil, ErrMalformedProof
}

func readPoint(data []byte) (*ristretto.Point, []byte, error) {
	if len(data) < 32 {
		return nil, nil, ErrMalformedProof
	}
	var buf [32]byte
	copy(buf[:], data[:32])
	var p ristretto.Point
	if ok := p.SetBytes(&buf); !ok {
		return nil, nil, ErrMalformedProof
	}
	return &p, data[32:], nil
}

func readScalar(data []byte) (*ristretto.Scalar, []byte, error) {
	if len(data) < 32 {
		return nil, nil, ErrMalformedProof
	}
	var buf [32]byte
	copy(buf[:], data[:32])
	var s ristretto.Scalar
	s.SetBytes(&buf)
	return &s, data[32:], nil
}
