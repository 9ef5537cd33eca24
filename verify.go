package amf

import (
	"bytes"

	"github.com/MixinNetwork/amf/pok"
	"github.com/bwesterb/go-ristretto"
)

// Verify checks sig against message on behalf of the recipient holding
// skR. It runs the shared compound PoK verification (identical to what
// Judge runs) and additionally checks the R-binding term using skR,
// which only the recipient can do: R must equal skR·J.
func Verify(skR Keypair, pkS, pkR, pkJ PublicKey, message []byte, sig Signature) bool {
	var expectedR ristretto.Point
	expectedR.ScalarMult(sig.J, skR.Secret)
	rOK := bytes.Equal(expectedR.Bytes(), sig.R.Bytes())

	stmt := buildStatement(pkS, pkJ, sig)
	proofOK := pok.Verify(stmt, sig.Proof, message)

	return rOK && proofOK
}
