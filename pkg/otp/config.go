package otp

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"
)

// Algorithm represents the hash algorithm used for OTP generation.
type Algorithm string

const (
	// AlgorithmSHA1 uses SHA1 hash algorithm.
	AlgorithmSHA1 Algorithm = "SHA1"
	// AlgorithmSHA256 uses SHA256 hash algorithm.
	AlgorithmSHA256 Algorithm = "SHA256"
	// AlgorithmSHA512 uses SHA512 hash algorithm.
	AlgorithmSHA512 Algorithm = "SHA512"
)

const (
	// DefaultPeriod is the TOTP time step in seconds.
	DefaultPeriod uint = 30
	// DefaultDigits is the length of a generated code.
	DefaultDigits = 6
	// DefaultAlgorithm is the HMAC hash used when none is configured.
	DefaultAlgorithm = AlgorithmSHA1
	// DefaultWindow is the number of periods accepted on either side of now.
	DefaultWindow uint = 1

	// MaxDigits is the longest code whose modulus still fits the 31-bit
	// truncated value.
	MaxDigits = 9
)

// hashFunc returns the constructor for the algorithm.
func (a Algorithm) hashFunc() (func() hash.Hash, error) {
	switch a {
	case AlgorithmSHA1:
		return sha1.New, nil
	case AlgorithmSHA256:
		return sha256.New, nil
	case AlgorithmSHA512:
		return sha512.New, nil
	}
	return nil, fmt.Errorf("%w: algorithm must be SHA1, SHA256, or SHA512", ErrInvalidConfig)
}

// ParseAlgorithm maps a case-insensitive name such as "sha256" to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(strings.ToUpper(strings.TrimSpace(name)))
	if _, err := a.hashFunc(); err != nil {
		return "", err
	}
	return a, nil
}

// Config holds the TOTP parameters shared by generation and verification.
// Zero values select the defaults.
type Config struct {
	// Period specifies the time step in seconds.
	// Default: 30
	Period uint
	// Digits specifies the number of digits in the code (1 through 9).
	// Default: 6
	Digits int
	// Algorithm specifies the hash algorithm to use.
	// Default: SHA1
	Algorithm Algorithm
}

// DefaultConfig returns the configuration used by common authenticator apps.
func DefaultConfig() Config {
	return Config{
		Period:    DefaultPeriod,
		Digits:    DefaultDigits,
		Algorithm: DefaultAlgorithm,
	}
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.Period == 0 {
		c.Period = DefaultPeriod
	}
	if c.Digits == 0 {
		c.Digits = DefaultDigits
	}
	if c.Algorithm == "" {
		c.Algorithm = DefaultAlgorithm
	}
	return c
}

// Validate checks that the configuration, after defaults are applied, is
// within range.
func (c Config) Validate() error {
	c = c.withDefaults()
	if err := validateDigits(c.Digits); err != nil {
		return err
	}
	if _, err := c.Algorithm.hashFunc(); err != nil {
		return err
	}
	return nil
}

func validateDigits(digits int) error {
	if digits < 1 || digits > MaxDigits {
		return fmt.Errorf("%w: digits must be between 1 and %d, got %d", ErrInvalidConfig, MaxDigits, digits)
	}
	return nil
}

// resolve applies defaults and validates in one step.
func (c Config) resolve() (Config, error) {
	c = c.withDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
