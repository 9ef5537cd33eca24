package pok

import (
	"github.com/bwesterb/go-ristretto"
	"github.com/gtank/merlin"
)

// domainTag names this transcript construction so it can never collide
// with a transcript built for an unrelated protocol, even one that also
// happens to use merlin.
const domainTag = "AMF-v1 PoK"

func newTranscript(context []byte) *merlin.Transcript {
	t := merlin.NewTranscript(domainTag)
	t.AppendMessage([]byte("context"), context)
	return t
}

func appendPoint(label string, p *ristretto.Point, t *merlin.Transcript) {
	t.AppendMessage([]byte(label), p.Bytes())
}

// appendStatement binds the transcript to the public statement being
// proven: every base and target point, in a fixed pre-order walk. It never
// touches a Witness or a challenge scalar.
func appendStatement(t *merlin.Transcript, stmt *Statement) {
	switch stmt.Kind {
	case KindDLog:
		t.AppendMessage([]byte("node"), []byte("dlog"))
		appendPoint("base1", stmt.Base1, t)
		appendPoint("target1", stmt.Target1, t)
	case KindDLogEq:
		t.AppendMessage([]byte("node"), []byte("dlogeq"))
		appendPoint("base1", stmt.Base1, t)
		appendPoint("target1", stmt.Target1, t)
		appendPoint("base2", stmt.Base2, t)
		appendPoint("target2", stmt.Target2, t)
	case KindAnd:
		t.AppendMessage([]byte("node"), []byte("and"))
		appendStatement(t, stmt.Left)
		appendStatement(t, stmt.Right)
	case KindOr:
		t.AppendMessage([]byte("node"), []byte("or"))
		appendStatement(t, stmt.Left)
		appendStatement(t, stmt.Right)
	}
}

// appendProofCommitments walks a Proof in the same pre-order as
// appendStatement, feeding in only the prover's first-move commitments.
// Challenge and response scalars never enter the transcript: the whole
// point of Fiat-Shamir here is that the challenge is derived FROM these
// commitments, not fed back into them.
func appendProofCommitments(t *merlin.Transcript, proof *Proof) {
	switch proof.Kind {
	case KindDLog:
		appendPoint("commit1", proof.Commit1, t)
	case KindDLogEq:
		appendPoint("commit1", proof.Commit1, t)
		appendPoint("commit2", proof.Commit2, t)
	case KindAnd, KindOr:
		appendProofCommitments(t, proof.Left)
		appendProofCommitments(t, proof.Right)
	}
}

func deriveChallenge(t *merlin.Transcript) *ristretto.Scalar {
	data := t.ExtractBytes([]byte("challenge"), 64)
	var buf [64]byte
	copy(buf[:], data)
	var c ristretto.Scalar
	return c.SetReduced(&buf)
}
