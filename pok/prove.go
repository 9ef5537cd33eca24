package pok

import "github.com/bwesterb/go-ristretto"

// Prove builds a non-interactive proof that wit satisfies stmt, binding
// the Fiat-Shamir challenge to context (typically a domain-separated
// encoding of whatever the statement's points mean to the caller).
//
// Construction is two-phase: build walks the statement/witness tree,
// producing first-move commitments (sampling fresh randomness at every
// leaf, and at every Or node simulating the one branch not actually
// known), together with a finish closure that fills in responses once
// the global challenge is known. That challenge is derived by hashing
// the statement and all commitments, then finish is invoked once at the
// root.
func Prove(stmt *Statement, wit *Witness, context []byte) (*Proof, error) {
	proof, finish, err := build(stmt, wit)
	if err != nil {
		return nil, err
	}

	t := newTranscript(context)
	appendStatement(t, stmt)
	appendProofCommitments(t, proof)
	challenge := deriveChallenge(t)

	if err := finish(challenge); err != nil {
		return nil, err
	}
	return proof, nil
}

// build produces a Proof's commitments and a finish closure that, given
// the eventual global challenge, fills in responses (and, for Or nodes
// whose honest branch is on the left, the deferred left challenge).
func build(stmt *Statement, wit *Witness) (*Proof, func(*ristretto.Scalar) error, error) {
	switch stmt.Kind {
	case KindDLog:
		if wit == nil || wit.Secret == nil {
			return nil, nil, ErrStatementShape
		}
		var r ristretto.Scalar
		r.Rand()
		var commit ristretto.Point
		commit.ScalarMult(stmt.Base1, &r)

		proof := &Proof{Kind: KindDLog, Commit1: &commit}
		finish := func(c *ristretto.Scalar) error {
			var z ristretto.Scalar
			z.Mul(c, wit.Secret)
			z.Add(&r, &z)
			proof.Response = &z
			return nil
		}
		return proof, finish, nil

	case KindDLogEq:
		if wit == nil || wit.Secret == nil {
			return nil, nil, ErrStatementShape
		}
		var r ristretto.Scalar
		r.Rand()
		var commit1, commit2 ristretto.Point
		commit1.ScalarMult(stmt.Base1, &r)
		commit2.ScalarMult(stmt.Base2, &r)

		proof := &Proof{Kind: KindDLogEq, Commit1: &commit1, Commit2: &commit2}
		finish := func(c *ristretto.Scalar) error {
			var z ristretto.Scalar
			z.Mul(c, wit.Secret)
			z.Add(&r, &z)
			proof.Response = &z
			return nil
		}
		return proof, finish, nil

	case KindAnd:
		if wit == nil {
			return nil, nil, ErrStatementShape
		}
		leftProof, leftFinish, err := build(stmt.Left, wit.Left)
		if err != nil {
			return nil, nil, err
		}
		rightProof, rightFinish, err := build(stmt.Right, wit.Right)
		if err != nil {
			return nil, nil, err
		}
		proof := &Proof{Kind: KindAnd, Left: leftProof, Right: rightProof}
		finish := func(c *ristretto.Scalar) error {
			if err := leftFinish(c); err != nil {
				return err
			}
			return rightFinish(c)
		}
		return proof, finish, nil

	case KindOr:
		if wit == nil || wit.Side == Neither {
			return nil, nil, ErrStatementShape
		}
		switch wit.Side {
		case LeftSide:
			var simChallenge ristretto.Scalar
			simChallenge.Rand()
			rightProof := simulate(stmt.Right, &simChallenge)

			leftProof, leftFinish, err := build(stmt.Left, wit.Left)
			if err != nil {
				return nil, nil, err
			}

			proof := &Proof{Kind: KindOr, Left: leftProof, Right: rightProof}
			finish := func(c *ristretto.Scalar) error {
				var leftChallenge ristretto.Scalar
				leftChallenge.Sub(c, &simChallenge)
				proof.ChallengeLeft = &leftChallenge
				return leftFinish(&leftChallenge)
			}
			return proof, finish, nil

		case RightSide:
			var simChallenge ristretto.Scalar
			simChallenge.Rand()
			leftProof := simulate(stmt.Left, &simChallenge)

			rightProof, rightFinish, err := build(stmt.Right, wit.Right)
			if err != nil {
				return nil, nil, err
			}

			proof := &Proof{Kind: KindOr, Left: leftProof, Right: rightProof, ChallengeLeft: &simChallenge}
			finish := func(c *ristretto.Scalar) error {
				var rightChallenge ristretto.Scalar
				rightChallenge.Sub(c, &simChallenge)
				return rightFinish(&rightChallenge)
			}
			return proof, finish, nil
		}
	}
	return nil, nil, ErrStatementShape
}

// simulate produces a fully-resolved, verification-equation-satisfying
// Proof subtree for stmt under a challenge chosen before the real
// transcript challenge exists. It is how an Or node proves a branch
// without knowing its witness: the response is sampled at random and the
// commitment is solved for algebraically, rather than the other way
// round. It recurses through nested And/Or so an entire non-witnessed
// subtree, not just a single leaf, can be simulated.
func simulate(stmt *Statement, challenge *ristretto.Scalar) *Proof {
	switch stmt.Kind {
	case KindDLog:
		var z ristretto.Scalar
		z.Rand()
		var zBase, cTarget, commit ristretto.Point
		zBase.ScalarMult(stmt.Base1, &z)
		cTarget.ScalarMult(stmt.Target1, challenge)
		commit.Sub(&zBase, &cTarget)
		return &Proof{Kind: KindDLog, Commit1: &commit, Response: &z}

	case KindDLogEq:
		var z ristretto.Scalar
		z.Rand()
		var zBase1, cTarget1, commit1 ristretto.Point
		zBase1.ScalarMult(stmt.Base1, &z)
		cTarget1.ScalarMult(stmt.Target1, challenge)
		commit1.Sub(&zBase1, &cTarget1)

		var zBase2, cTarget2, commit2 ristretto.Point
		zBase2.ScalarMult(stmt.Base2, &z)
		cTarget2.ScalarMult(stmt.Target2, challenge)
		commit2.Sub(&zBase2, &cTarget2)

		return &Proof{Kind: KindDLogEq, Commit1: &commit1, Commit2: &commit2, Response: &z}

	case KindAnd:
		return &Proof{
			Kind:  KindAnd,
			Left:  simulate(stmt.Left, challenge),
			Right: simulate(stmt.Right, challenge),
		}

	case KindOr:
		var leftChallenge ristretto.Scalar
		leftChallenge.Rand()
		var rightChallenge ristretto.Scalar
		rightChallenge.Sub(challenge, &leftChallenge)
		return &Proof{
			Kind:          KindOr,
			Left:          simulate(stmt.Left, &leftChallenge),
			Right:         simulate(stmt.Right, &rightChallenge),
			ChallengeLeft: &leftChallenge,
		}
	}
	return nil
}
