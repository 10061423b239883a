package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var (
	ErrEmptySealKey       = errors.New("empty seal key")
	ErrSealedDataTooShort = errors.New("sealed data too short")
	ErrUnsealFailed       = errors.New("unable to open sealed data")
)

// Sealer encrypts and authenticates medical records at rest
type Sealer struct {
	key [32]byte
}

// NewSealer derives a secretbox key from the configured secret
func NewSealer(secret string) (*Sealer, error) {
	if secret == "" {
		return nil, ErrEmptySealKey
	}
	return &Sealer{key: sha256.Sum256([]byte(secret))}, nil
}

// Seal returns the nonce followed by the sealed message
func (s *Sealer) Seal(message []byte) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, err
	}
	return secretbox.Seal(nonce[:], message, &nonce, &s.key), nil
}

func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < nonceSize+secretbox.Overhead {
		return nil, ErrSealedDataTooShort
	}

	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])
	message, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &s.key)
	if !ok {
		return nil, ErrUnsealFailed
	}
	return message, nil
}
