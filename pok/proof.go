package pok

import "github.com/bwesterb/go-ristretto"

// Proof mirrors the shape of the Statement it was built against. Leaves
// carry a Sigma-protocol commitment and response; And nodes carry both
// children under the same, implicitly shared challenge; Or nodes store
// the left child's challenge explicitly, with the right child's challenge
// recoverable as parent-challenge minus ChallengeLeft.
type Proof struct {
	Kind Kind

	// DLog / DLogEq leaves.
	Commit1  *ristretto.Point
	Commit2  *ristretto.Point // DLogEq only
	Response *ristretto.Scalar

	// And / Or combinators.
	Left, Right   *Proof
	ChallengeLeft *ristretto.Scalar // Or only
}
