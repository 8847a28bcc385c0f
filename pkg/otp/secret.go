package otp

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
)

// DefaultSecretSize is the raw key length in bytes (160 bits).
const DefaultSecretSize = 20

// SecretGenerator produces base32 secrets from a cryptographically secure
// random source. It is safe for concurrent use; reads from the source are
// serialized.
type SecretGenerator struct {
	mu     sync.Mutex
	source io.Reader
}

// NewSecretGenerator returns a generator reading from source. The caller is
// responsible for source being a CSPRNG. If source is nil crypto/rand.Reader
// is used.
func NewSecretGenerator(source io.Reader) *SecretGenerator {
	if source == nil {
		source = rand.Reader
	}
	return &SecretGenerator{source: source}
}

var defaultGenerator = NewSecretGenerator(nil)

// GenerateSecret generates a cryptographically random secret key of length
// bytes from crypto/rand and returns it base32-encoded without padding.
func GenerateSecret(length int) (string, error) {
	return defaultGenerator.Generate(length)
}

// Generate reads length random bytes and returns their base32 encoding.
// A failing or short read returns ErrInsecureRandomUnavailable.
func (g *SecretGenerator) Generate(length int) (string, error) {
	key, err := g.GenerateKey(length)
	if err != nil {
		return "", err
	}
	return EncodeSecret(key), nil
}

// GenerateKey is like Generate but returns the raw key.
func (g *SecretGenerator) GenerateKey(length int) ([]byte, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: secret length must be at least 1 byte, got %d", ErrInvalidConfig, length)
	}
	if g == nil || g.source == nil {
		return nil, ErrInsecureRandomUnavailable
	}

	key := make([]byte, length)
	g.mu.Lock()
	_, err := io.ReadFull(g.source, key)
	g.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInsecureRandomUnavailable, err)
	}
	return key, nil
}
