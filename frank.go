package amf

import (
	"github.com/MixinNetwork/amf/pok"
	"github.com/bwesterb/go-ristretto"
)

// Frank produces a franking signature binding message to skS's public
// key, verifiable by the holder of pkR's secret (Verify) and, on report,
// by the holder of pkJ's secret (Judge). See DESIGN.md for the algebra.
func Frank(skS Keypair, pkS, pkR, pkJ PublicKey, message []byte) (Signature, error) {
	var alpha, beta ristretto.Scalar
	alpha.Rand()
	beta.Rand()

	var a, b, j, r ristretto.Point
	a.ScalarMultBase(&alpha)
	b.ScalarMult(pkJ, &alpha)
	j.ScalarMultBase(&beta)
	r.ScalarMult(pkR, &beta)

	sig := Signature{A: &a, B: &b, J: &j, R: &r}

	stmt := buildStatement(pkS, pkJ, sig)
	wit := pok.AndWitness(
		pok.OrWitnessLeft(pok.LeafWitness(skS.Secret)),
		pok.OrWitnessLeft(pok.LeafWitness(&alpha)),
	)

	proof, err := pok.Prove(stmt, wit, message)
	if err != nil {
		return Signature{}, err
	}
	sig.Proof = proof
	return sig, nil
}
