package amf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageFingerprintIsStableAndSensitiveToInput(t *testing.T) {
	assert := assert.New(t)

	a := MessageFingerprint([]byte("hello"))
	b := MessageFingerprint([]byte("hello"))
	c := MessageFingerprint([]byte("hellp"))

	assert.Equal(a, b)
	assert.NotEqual(a, c)
	assert.Len(a, 32)
}
