package amf

import (
	"encoding/hex"

	"github.com/btcsuite/btcutil/base58"
	"github.com/bwesterb/go-ristretto"
)

// PublicKeyHex renders a public key's canonical encoding as lowercase
// hex. Debug/display only; the wire format stays the raw canonical bytes
// produced by Bytes()/MarshalPublicKey.
func PublicKeyHex(pk PublicKey) string {
	return hex.EncodeToString(pk.Bytes())
}

// PublicKeyFromHex parses a hex-encoded public key produced by
// PublicKeyHex. It rejects non-canonical encodings.
func PublicKeyFromHex(s string) (PublicKey, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, ErrMalformedSignature
	}
	var buf [32]byte
	if len(data) != 32 {
		return nil, ErrMalformedSignature
	}
	copy(buf[:], data)
	var p ristretto.Point
	if ok := p.SetBytes(&buf); !ok {
		return nil, ErrMalformedSignature
	}
	return &p, nil
}

// PublicKeyBase58 renders a public key as a base58 string, adapted from
// account.go's B58Code address encoding. Debug/display only.
func PublicKeyBase58(pk PublicKey) string {
	return base58.Encode(pk.Bytes())
}

// SecretKey is a canonical scalar encoding: a keypair's private half.
type SecretKey = *ristretto.Scalar

// MarshalPublicKey and MarshalSecretKey/UnmarshalSecretKey give PublicKey
// and SecretKey the same canonical encode/decode pair Signature gets,
// without attaching methods directly to them: both are aliases of
// go-ristretto's own Point/Scalar types, which this module cannot attach
// new methods to. PublicKeyHex/PublicKeyFromHex above already establish
// the package-level-function convention for this boundary.
func MarshalPublicKey(pk PublicKey) []byte {
	return pk.Bytes()
}

func UnmarshalPublicKey(data []byte) (PublicKey, error) {
	if len(data) != 32 {
		return nil, ErrMalformedSignature
	}
	var buf [32]byte
	copy(buf[:], data)
	var p ristretto.Point
	if ok := p.SetBytes(&buf); !ok {
		return nil, ErrMalformedSignature
	}
	return &p, nil
}

func MarshalSecretKey(sk SecretKey) []byte {
	return sk.Bytes()
}

func UnmarshalSecretKey(data []byte) (SecretKey, error) {
	if len(data) != 32 {
		return nil, ErrMalformedSignature
	}
	var buf [32]byte
	copy(buf[:], data)
	var s ristretto.Scalar
	s.SetBytes(&buf)
	return &s, nil
}
