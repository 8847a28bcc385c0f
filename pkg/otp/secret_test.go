package otp

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy source closed")
}

// TestGenerateSecret tests secret generation from crypto/rand
func TestGenerateSecret(t *testing.T) {
	secret, err := GenerateSecret(DefaultSecretSize)
	if err != nil {
		t.Fatalf("failed to generate secret: %v", err)
	}

	// 20 bytes encode to 32 characters without padding
	if len(secret) != 32 {
		t.Errorf("expected 32 character secret, got %d", len(secret))
	}

	for _, c := range secret {
		if !((c >= 'A' && c <= 'Z') || (c >= '2' && c <= '7')) {
			t.Errorf("invalid character in secret: %c", c)
		}
	}

	key, err := DecodeSecret(secret)
	if err != nil {
		t.Fatalf("generated secret does not decode: %v", err)
	}
	if len(key) != DefaultSecretSize {
		t.Errorf("expected %d byte key, got %d", DefaultSecretSize, len(key))
	}

	secret2, err := GenerateSecret(DefaultSecretSize)
	if err != nil {
		t.Fatalf("failed to generate second secret: %v", err)
	}
	if secret == secret2 {
		t.Error("generated secrets should be different")
	}
}

// TestGenerateSecretLength tests length validation
func TestGenerateSecretLength(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantLen int
		wantErr error
	}{
		{name: "one byte", length: 1, wantLen: 2},
		{name: "ten bytes", length: 10, wantLen: 16},
		{name: "sixty four bytes", length: 64, wantLen: 103},
		{name: "zero", length: 0, wantErr: ErrInvalidConfig},
		{name: "negative", length: -1, wantErr: ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret, err := GenerateSecret(tt.length)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(secret) != tt.wantLen {
				t.Errorf("expected %d characters, got %d", tt.wantLen, len(secret))
			}
		})
	}
}

// TestSecretGeneratorSource tests an injected random source
func TestSecretGeneratorSource(t *testing.T) {
	src := bytes.NewReader([]byte("12345678901234567890"))
	g := NewSecretGenerator(src)

	secret, err := g.Generate(20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret != "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ" {
		t.Errorf("unexpected secret %q", secret)
	}
}

// TestSecretGeneratorFailure tests that read failures never fall back to a weaker source
func TestSecretGeneratorFailure(t *testing.T) {
	tests := []struct {
		name string
		gen  *SecretGenerator
	}{
		{name: "failing reader", gen: NewSecretGenerator(failingReader{})},
		{name: "short read", gen: NewSecretGenerator(strings.NewReader("short"))},
		{name: "exhausted reader", gen: NewSecretGenerator(io.LimitReader(strings.NewReader(""), 0))},
		{name: "nil generator", gen: nil},
		{name: "zero value generator", gen: &SecretGenerator{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret, err := tt.gen.Generate(20)
			if !errors.Is(err, ErrInsecureRandomUnavailable) {
				t.Fatalf("expected ErrInsecureRandomUnavailable, got %v", err)
			}
			if secret != "" {
				t.Errorf("expected empty secret on failure, got %q", secret)
			}
		})
	}
}

// TestSecretGeneratorConcurrent tests concurrent use of a shared generator
func TestSecretGeneratorConcurrent(t *testing.T) {
	g := NewSecretGenerator(nil)

	var wg sync.WaitGroup
	secrets := make([]string, 32)
	for i := range secrets {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := g.Generate(DefaultSecretSize)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			secrets[i] = s
		}(i)
	}
	wg.Wait()

	seen := make(map[string]struct{}, len(secrets))
	for _, s := range secrets {
		if _, ok := seen[s]; ok {
			t.Errorf("duplicate secret %q", s)
		}
		seen[s] = struct{}{}
	}
}
