package security

import (
	"crypto/rand"
	"errors"
)

var (
	ErrInvalidTokenLength = errors.New("token length must be positive")
	ErrInvalidAlphabet    = errors.New("alphabet must hold between 2 and 256 distinct bytes")
)

// RandomToken draws length bytes from alphabet using crypto/rand. Bytes that
// would skew the distribution are rejected and redrawn.
func RandomToken(length int, alphabet string) (string, error) {
	if length <= 0 {
		return "", ErrInvalidTokenLength
	}
	size := len(alphabet)
	if size < 2 || size > 256 {
		return "", ErrInvalidAlphabet
	}

	// Largest multiple of size that fits in a byte.
	ceiling := 256 - 256%size
	token := make([]byte, 0, length)
	buffer := make([]byte, length+length/2)
	for len(token) < length {
		if _, err := rand.Read(buffer); err != nil {
			return "", err
		}
		for _, value := range buffer {
			if int(value) >= ceiling {
				continue
			}
			token = append(token, alphabet[int(value)%size])
			if len(token) == length {
				break
			}
		}
	}
	return string(token), nil
}
