package amf

import (
	"github.com/bwesterb/go-ristretto"
	"golang.org/x/crypto/sha3"
)

// GeneratorsChain is a deterministic, domain-separated stream of group
// elements derived from a label via SHAKE256, the same construction the
// teacher used to derive Bulletproof G/H vectors. AMF reuses it for a
// single purpose: deriving the independent generator h (see keys.go).
type GeneratorsChain struct {
	sha3.ShakeHash
}

func NewGeneratorsChain(label []byte) *GeneratorsChain {
	h := sha3.NewShake256()
	h.Write([]byte("GeneratorsChain"))
	h.Write(label)
	return &GeneratorsChain{h}
}

func (c *GeneratorsChain) Next() *ristretto.Point {
	var data [64]byte
	c.Read(data[:])
	return pointFromUniformBytes(data[:])
}

func pointFromUniformBytes(key []byte) *ristretto.Point {
	var r1Bytes, r2Bytes [32]byte
	copy(r1Bytes[:], key[:32])
	copy(r2Bytes[:], key[32:])
	var r, r1, r2 ristretto.Point
	return r.Add(r1.SetElligator(&r1Bytes), r2.SetElligator(&r2Bytes))
}
