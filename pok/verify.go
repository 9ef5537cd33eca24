package pok

import (
	"bytes"

	"github.com/bwesterb/go-ristretto"
)

// Verify checks proof against stmt under the same context used by Prove.
// It recomputes the Fiat-Shamir challenge from stmt and the proof's
// commitments, then walks the tree checking every leaf equation and every
// Or node's challenge split. All checks run to completion; Verify does
// not short-circuit on the first failing branch, so a bad Or branch can't
// be distinguished by timing from a bad top-level statement.
func Verify(stmt *Statement, proof *Proof, context []byte) bool {
	if !shapesMatch(stmt, proof) {
		return false
	}

	t := newTranscript(context)
	appendStatement(t, stmt)
	appendProofCommitments(t, proof)
	challenge := deriveChallenge(t)

	return checkNode(stmt, proof, challenge)
}

func shapesMatch(stmt *Statement, proof *Proof) bool {
	if stmt == nil || proof == nil || stmt.Kind != proof.Kind {
		return false
	}
	switch stmt.Kind {
	case KindDLog:
		return proof.Commit1 != nil && proof.Response != nil
	case KindDLogEq:
		return proof.Commit1 != nil && proof.Commit2 != nil && proof.Response != nil
	case KindAnd:
		return shapesMatch(stmt.Left, proof.Left) && shapesMatch(stmt.Right, proof.Right)
	case KindOr:
		return proof.ChallengeLeft != nil &&
			shapesMatch(stmt.Left, proof.Left) && shapesMatch(stmt.Right, proof.Right)
	}
	return false
}

func checkNode(stmt *Statement, proof *Proof, challenge *ristretto.Scalar) bool {
	switch stmt.Kind {
	case KindDLog:
		return checkSchnorr(stmt.Base1, stmt.Target1, proof.Commit1, proof.Response, challenge)

	case KindDLogEq:
		ok1 := checkSchnorr(stmt.Base1, stmt.Target1, proof.Commit1, proof.Response, challenge)
		ok2 := checkSchnorr(stmt.Base2, stmt.Target2, proof.Commit2, proof.Response, challenge)
		return ok1 && ok2

	case KindAnd:
		okLeft := checkNode(stmt.Left, proof.Left, challenge)
		okRight := checkNode(stmt.Right, proof.Right, challenge)
		return okLeft && okRight

	case KindOr:
		var rightChallenge ristretto.Scalar
		rightChallenge.Sub(challenge, proof.ChallengeLeft)
		okLeft := checkNode(stmt.Left, proof.Left, proof.ChallengeLeft)
		okRight := checkNode(stmt.Right, proof.Right, &rightChallenge)
		return okLeft && okRight
	}
	return false
}

// checkSchnorr verifies base^response == commit + target^challenge.
func checkSchnorr(base, target, commit *ristretto.Point, response, challenge *ristretto.Scalar) bool {
	var lhs ristretto.Point
	lhs.ScalarMult(base, response)

	var rhs, scaledTarget ristretto.Point
	scaledTarget.ScalarMult(target, challenge)
	rhs.Add(commit, &scaledTarget)

	return bytes.Equal(lhs.Bytes(), rhs.Bytes())
}
