package pok

import (
	"testing"

	"github.com/bwesterb/go-ristretto"
	"github.com/stretchr/testify/assert"
)

func TestOrProveVerifyLeftKnown(t *testing.T) {
	assert := assert.New(t)

	base1, base2 := randBase(), randBase()
	var x, unknownY ristretto.Scalar
	x.Rand()
	unknownY.Rand()
	var target1, target2 ristretto.Point
	target1.ScalarMult(base1, &x)
	target2.ScalarMult(base2, &unknownY) // prover has no witness for this branch

	stmt := OrOf(DLog(base1, &target1), DLog(base2, &target2))
	proof, err := Prove(stmt, OrWitnessLeft(LeafWitness(&x)), []byte("test-or"))
	assert.NoError(err)
	assert.True(Verify(stmt, proof, []byte("test-or")))
}

func TestOrProveVerifyRightKnown(t *testing.T) {
	assert := assert.New(t)

	base1, base2 := randBase(), randBase()
	var unknownX, y ristretto.Scalar
	unknownX.Rand()
	y.Rand()
	var target1, target2 ristretto.Point
	target1.ScalarMult(base1, &unknownX)
	target2.ScalarMult(base2, &y)

	stmt := OrOf(DLog(base1, &target1), DLog(base2, &target2))
	proof, err := Prove(stmt, OrWitnessRight(LeafWitness(&y)), []byte("test-or"))
	assert.NoError(err)
	assert.True(Verify(stmt, proof, []byte("test-or")))
}

func TestOrRejectsWhenNeitherBranchHolds(t *testing.T) {
	assert := assert.New(t)

	base1, base2 := randBase(), randBase()
	var x, claimedX ristretto.Scalar
	x.Rand()
	claimedX.Rand() // not actually the discrete log of target1

	var target1, target2 ristretto.Point
	target1.ScalarMult(base1, &x)
	target2.ScalarMult(base2, &x) // also not base2^claimedX in general

	stmt := OrOf(DLog(base1, &target1), DLog(base2, &target2))
	proof, err := Prove(stmt, OrWitnessLeft(LeafWitness(&claimedX)), []byte("test-or"))
	assert.NoError(err)
	assert.False(Verify(stmt, proof, []byte("test-or")))
}

func TestOrDoesNotRevealWhichSideIsKnown(t *testing.T) {
	assert := assert.New(t)

	base1, base2 := randBase(), randBase()
	var x, y ristretto.Scalar
	x.Rand()
	y.Rand()
	var target1, target2 ristretto.Point
	target1.ScalarMult(base1, &x)
	target2.ScalarMult(base2, &y)

	stmt := OrOf(DLog(base1, &target1), DLog(base2, &target2))

	left, err := Prove(stmt, OrWitnessLeft(LeafWitness(&x)), []byte("test-or-hide"))
	assert.NoError(err)
	right, err := Prove(stmt, OrWitnessRight(LeafWitness(&y)), []byte("test-or-hide"))
	assert.NoError(err)

	assert.True(Verify(stmt, left, []byte("test-or-hide")))
	assert.True(Verify(stmt, right, []byte("test-or-hide")))
	// Both proofs are valid regardless of which side the prover actually
	// knew; nothing here lets a verifier tell them apart structurally.
	assert.Equal(left.Kind, right.Kind)
}

func TestOrOfAndBranchNests(t *testing.T) {
	assert := assert.New(t)

	base1, base2, base3 := randBase(), randBase(), randBase()
	var x, y, z, unknown ristretto.Scalar
	x.Rand()
	y.Rand()
	z.Rand()
	unknown.Rand()

	var target1, target2, target3 ristretto.Point
	target1.ScalarMult(base1, &x)
	target2.ScalarMult(base2, &y)
	target3.ScalarMult(base3, &unknown)

	andStmt := AndOf(DLog(base1, &target1), DLog(base2, &target2))
	stmt := OrOf(andStmt, DLog(base3, &target3))

	andWit := AndWitness(LeafWitness(&x), LeafWitness(&y))
	proof, err := Prove(stmt, OrWitnessLeft(andWit), []byte("test-or-and"))
	assert.NoError(err)
	assert.True(Verify(stmt, proof, []byte("test-or-and")))
}
