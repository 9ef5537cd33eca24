// Package pok implements a small Sigma-protocol engine over the Ristretto
// group: single discrete-log and discrete-log-equality leaves, composed
// with AND and OR combinators, and made non-interactive with Fiat-Shamir
// via a merlin transcript.
//
// A Statement describes the relation being proven; it contains only public
// values (bases and targets), never secrets. Leaves are proven with a
// Witness built separately, and carried through And/Or the same shape as
// the Statement tree.
package pok

import "github.com/bwesterb/go-ristretto"

// Kind identifies the shape of a Statement node.
type Kind int

const (
	KindDLog Kind = iota
	KindDLogEq
	KindAnd
	KindOr
)

// Statement is a node in a Sigma-protocol statement tree. Leaves assert
// knowledge of a scalar x such that Target = Base^x (DLog), or of a single
// shared scalar x such that Target1 = Base1^x and Target2 = Base2^x
// (DLogEq). And requires both children hold; Or requires at least one does,
// without revealing which.
type Statement struct {
	Kind Kind

	// DLog / DLogEq leaves.
	Base1, Target1 *ristretto.Point
	Base2, Target2 *ristretto.Point // DLogEq only

	// And / Or combinators.
	Left, Right *Statement
}

// DLog builds a leaf statement: knowledge of x with target = base^x.
func DLog(base, target *ristretto.Point) *Statement {
	return &Statement{Kind: KindDLog, Base1: base, Target1: target}
}

// DLogEq builds a leaf statement: knowledge of a single x with
// target1 = base1^x and target2 = base2^x.
func DLogEq(base1, target1, base2, target2 *ristretto.Point) *Statement {
	return &Statement{
		Kind:    KindDLogEq,
		Base1:   base1,
		Target1: target1,
		Base2:   base2,
		Target2: target2,
	}
}

// AndOf builds a conjunction: both left and right must hold.
func AndOf(left, right *Statement) *Statement {
	return &Statement{Kind: KindAnd, Left: left, Right: right}
}

// OrOf builds a disjunction: at least one of left or right must hold, and
// the proof does not reveal which.
func OrOf(left, right *Statement) *Statement {
	return &Statement{Kind: KindOr, Left: left, Right: right}
}
