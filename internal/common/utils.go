package common

import (
	"crypto/rand"
	"math/big"
)

// WipeByteArray overwrites b with zeros. A nil slice is ignored.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// GenerateTemporaryPassword returns a TemporaryPasswordLength long string
// whose characters are drawn uniformly from TemporaryPasswordCharset.
func GenerateTemporaryPassword() (string, error) {
	return randomString(TemporaryPasswordLength, TemporaryPasswordCharset)
}

func randomString(length int, charset string) (string, error) {
	max := big.NewInt(int64(len(charset)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = charset[n.Int64()]
	}
	return string(out), nil
}
