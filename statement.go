package amf

import (
	"github.com/MixinNetwork/amf/pok"
)

// buildStatement constructs the one compound statement AMF is built
// around, cross-checked against the reference implementation's
// AMFSPoK::new (the AMF paper's Fig. 5):
//
//	And(
//	  Or( DLog(g, pkS),        DLog(g, B) ),
//	  Or( DLogEq(pkJ,B; g,A),  DLog(g, R) ),
//	)
//
// Frank, Verify, and Judge all call this with the same arguments so the
// tree fed to pok.Prove and the tree fed to pok.Verify can never drift
// apart by a stray base/target swap; see DESIGN.md.
func buildStatement(pkS, pkJ PublicKey, sig Signature) *pok.Statement {
	left := pok.OrOf(
		pok.DLog(g(), pkS),
		pok.DLog(g(), sig.B),
	)
	right := pok.OrOf(
		pok.DLogEq(pkJ, sig.B, g(), sig.A),
		pok.DLog(g(), sig.R),
	)
	return pok.AndOf(left, right)
}

// statementShape returns a Statement with the same Kind tree as
// buildStatement's output but no real points, for use only as a decode
// template by Unmarshal: proof sizes are fixed once the shape is fixed,
// and the shape never depends on the actual A/B/J/R/pkS/pkJ values.
func statementShape() *pok.Statement {
	dlogLeaf := pok.DLog(nil, nil)
	dlogEqLeaf := pok.DLogEq(nil, nil, nil, nil)
	return pok.AndOf(
		pok.OrOf(dlogLeaf, dlogLeaf),
		pok.OrOf(dlogEqLeaf, dlogLeaf),
	)
}

func marshalProof(proof *pok.Proof) ([]byte, error) {
	return pok.Marshal(proof)
}

func unmarshalProof(data []byte) (*pok.Proof, error) {
	return pok.Unmarshal(statementShape(), data)
}
