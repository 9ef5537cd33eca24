package pok

import "github.com/bwesterb/go-ristretto"

// WitnessSide selects which child of an Or a Witness actually knows. The
// other child is proven by simulation.
type WitnessSide int

const (
	Neither WitnessSide = iota
	LeftSide
	RightSide
)

// Witness mirrors the shape of the Statement it proves, carrying the
// secret scalar at DLog/DLogEq leaves and, at Or nodes, which side is
// actually known.
type Witness struct {
	// DLog / DLogEq leaves.
	Secret *ristretto.Scalar

	// And: both sides required.
	Left, Right *Witness

	// Or: only the known side is populated; Side says which.
	Side WitnessSide
}

// LeafWitness builds a witness for a DLog or DLogEq leaf.
func LeafWitness(secret *ristretto.Scalar) *Witness {
	return &Witness{Secret: secret}
}

// AndWitness builds a witness for an And statement from its two children.
func AndWitness(left, right *Witness) *Witness {
	return &Witness{Left: left, Right: right}
}

// OrWitnessLeft builds a witness for an Or statement where the left child
// is the one actually known.
func OrWitnessLeft(left *Witness) *Witness {
	return &Witness{Side: LeftSide, Left: left}
}

// OrWitnessRight builds a witness for an Or statement where the right
// child is the one actually known.
func OrWitnessRight(right *Witness) *Witness {
	return &Witness{Side: RightSide, Right: right}
}
