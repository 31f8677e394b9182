package api

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	sealedCookieVersion = "v1"
	sealedCookieLabel   = "mlimi.sealed-cookie." + sealedCookieVersion
)

var (
	errSealedCookieInvalid   = errors.New("sealed cookie invalid")
	errSealedCookiePurpose   = errors.New("sealed cookie purpose is required")
	errSealedCookieNoSecrets = errors.New("sealed cookie secret is required")
)

// secureCookieCodec encrypts cookie values with AES-256-GCM. The purpose is
// bound as additional data so a value sealed for one cookie cannot be
// replayed into another.
type secureCookieCodec struct {
	aead cipher.AEAD
}

func newSecureCookieCodec(secret []byte) (*secureCookieCodec, error) {
	if len(secret) == 0 {
		return nil, errSealedCookieNoSecrets
	}

	key := sha256.Sum256(append([]byte(sealedCookieLabel), secret...))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("sealed cookie cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("sealed cookie gcm: %w", err)
	}
	return &secureCookieCodec{aead: aead}, nil
}

func (codec *secureCookieCodec) seal(purpose string, plaintext []byte) (string, error) {
	aad, err := sealedCookieAAD(purpose)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, codec.aead.NonceSize(), codec.aead.NonceSize()+len(plaintext)+codec.aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("sealed cookie nonce: %w", err)
	}
	payload := codec.aead.Seal(nonce, nonce, plaintext, aad)
	return sealedCookieVersion + "." + base64.RawURLEncoding.EncodeToString(payload), nil
}

func (codec *secureCookieCodec) open(purpose string, value string) ([]byte, error) {
	aad, err := sealedCookieAAD(purpose)
	if err != nil {
		return nil, err
	}

	version, encoded, found := strings.Cut(strings.TrimSpace(value), ".")
	if !found || version != sealedCookieVersion || encoded == "" {
		return nil, errSealedCookieInvalid
	}
	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil || len(payload) <= codec.aead.NonceSize() {
		return nil, errSealedCookieInvalid
	}

	nonceSize := codec.aead.NonceSize()
	plaintext, err := codec.aead.Open(nil, payload[:nonceSize], payload[nonceSize:], aad)
	if err != nil {
		return nil, errSealedCookieInvalid
	}
	return plaintext, nil
}

func sealedCookieAAD(purpose string) ([]byte, error) {
	purpose = strings.TrimSpace(purpose)
	if purpose == "" {
		return nil, errSealedCookiePurpose
	}
	return []byte(sealedCookieLabel + "/" + purpose), nil
}
