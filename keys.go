package amf

import (
	"sync"

	"github.com/bwesterb/go-ristretto"
)

// Role identifies which of the three AMF parties a keypair belongs to.
// Keygen does not otherwise treat the three roles differently: all three
// use the same group and the same key shape.
type Role int

const (
	RoleSender Role = iota
	RoleRecipient
	RoleJudge
)

// PublicKey is a single canonical Ristretto point encoding.
type PublicKey = *ristretto.Point

// Keypair is a secret scalar and its corresponding public point, g^secret.
type Keypair struct {
	Secret SecretKey
	Public PublicKey
}

// Keygen samples a fresh keypair for role. role is not used: the
// returned keypair has the same distribution for all three roles.
func Keygen(role Role) (Keypair, error) {
	var secret ristretto.Scalar
	secret.Rand()

	var public ristretto.Point
	public.ScalarMultBase(&secret)

	return Keypair{Secret: &secret, Public: &public}, nil
}

var (
	generatorsOnce sync.Once
	baseGenerator  ristretto.Point
	auxGenerator   ristretto.Point
)

// g is the group's standard base point.
func g() *ristretto.Point {
	initGenerators()
	return &baseGenerator
}

// h is a second generator with unknown discrete log relative to g,
// derived deterministically via a domain-separated SHAKE256 stream
// (generators.go's GeneratorsChain).
func h() *ristretto.Point {
	initGenerators()
	return &auxGenerator
}

func initGenerators() {
	generatorsOnce.Do(func() {
		baseGenerator.SetBase()
		chain := NewGeneratorsChain([]byte("AMF-v1 independent generator h"))
		auxGenerator = *chain.Next()
	})
}
