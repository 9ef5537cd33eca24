package amf

import (
	"bytes"

	"github.com/MixinNetwork/amf/pok"
	"github.com/bwesterb/go-ristretto"
)

// Judge checks sig against message on behalf of the judge holding skJ,
// on a user-initiated report. It runs the same shared compound PoK
// verification Verify runs, and additionally checks the (A,B) binding
// using skJ — symmetric to Verify's skR·J check, but via skJ·A: B must
// equal skJ·A.
func Judge(skJ Keypair, pkS, pkR, pkJ PublicKey, message []byte, sig Signature) bool {
	var expectedB ristretto.Point
	expectedB.ScalarMult(sig.A, skJ.Secret)
	bOK := bytes.Equal(expectedB.Bytes(), sig.B.Bytes())

	stmt := buildStatement(pkS, pkJ, sig)
	proofOK := pok.Verify(stmt, sig.Proof, message)

	return bOK && proofOK
}
