package amf

import "github.com/dchest/blake2b"

const messageFingerprintDomainTag = "AMF-v1 message fingerprint"

// MessageFingerprint returns a short, domain-separated digest of message,
// adapted from utils.go's ConfirmationNumberFromSecret. It is a debug/log
// correlation convenience — something a caller can print or index
// alongside a Signature without handling the full message body — and is
// never itself fed into Frank/Verify/Judge's Fiat-Shamir transcript.
func MessageFingerprint(message []byte) []byte {
	hash := blake2b.New256()
	hash.Write([]byte(messageFingerprintDomainTag))
	hash.Write(message)
	return hash.Sum(nil)
}
