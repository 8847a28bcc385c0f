package otp

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// AuthenticatorConfig holds OTP authenticator configuration.
type AuthenticatorConfig struct {
	// Type specifies the OTP type (TOTP or HOTP).
	// Default: TOTP
	Type Type
	// Secret is the base32-encoded shared secret key (required).
	Secret string
	// Issuer is the name of the issuing organization (e.g., "MyApp").
	Issuer string
	// AccountName is the account identifier (e.g., "user@example.com").
	AccountName string
	// Counter specifies the counter value checked by Authenticate for HOTP.
	Counter uint64
	// Window is the number of periods (TOTP) accepted on either side of now,
	// or the number of counters (HOTP) accepted ahead of the expected one.
	// Nil selects DefaultWindow; zero means exact match only.
	Window *uint
	// Config holds period, digits and algorithm.
	Config Config
}

// validate checks that the configuration is valid and returns the decoded key.
func (c AuthenticatorConfig) validate() ([]byte, error) {
	if c.Type != TypeTOTP && c.Type != TypeHOTP {
		return nil, fmt.Errorf("%w: type must be 'totp' or 'hotp'", ErrInvalidConfig)
	}

	if strings.TrimSpace(c.Secret) == "" {
		return nil, fmt.Errorf("%w: secret must not be empty", ErrInvalidConfig)
	}

	key, err := DecodeSecret(c.Secret)
	if err != nil {
		return nil, err
	}
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	if err := c.Config.Validate(); err != nil {
		return nil, err
	}
	return key, nil
}

// Authenticator validates OTP codes for one enrolled secret.
// It holds no mutable state and is safe for concurrent use.
type Authenticator struct {
	cfg    AuthenticatorConfig
	key    []byte
	window uint
}

// NewAuthenticator creates a new OTP authenticator.
// The configuration is validated and an error is returned if invalid.
func NewAuthenticator(cfg AuthenticatorConfig) (*Authenticator, error) {
	if cfg.Type == "" {
		cfg.Type = TypeTOTP
	}
	key, err := cfg.validate()
	if err != nil {
		return nil, err
	}

	cfg.Config = cfg.Config.withDefaults()
	cfg.Secret = strings.ToUpper(cfg.Secret)

	window := DefaultWindow
	if cfg.Window != nil {
		window = *cfg.Window
	}

	return &Authenticator{cfg: cfg, key: key, window: window}, nil
}

// Authenticate validates a code.
// For TOTP, it validates against at with window tolerance.
// For HOTP, it validates against the configured counter value.
func (a *Authenticator) Authenticate(ctx context.Context, code string, at time.Time) error {
	if a == nil {
		return ErrNilAuthenticator
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: code must not be empty", ErrInvalidCode)
	}

	if a.cfg.Type == TypeTOTP {
		ok, err := VerifyWindow(a.cfg.Secret, code, at, a.cfg.Config, a.window)
		if err != nil {
			return fmt.Errorf("%w: validation failed: %w", ErrInvalidCode, err)
		}
		if !ok {
			return ErrInvalidCode
		}
		return nil
	}

	if _, err := a.matchCounter(code, a.cfg.Counter, 0); err != nil {
		return err
	}
	return nil
}

// ValidateCounter validates an HOTP code starting at counter and looking
// ahead by the configured window. It returns the counter to store for the
// next validation, one past the counter that matched.
func (a *Authenticator) ValidateCounter(ctx context.Context, code string, counter uint64) (uint64, error) {
	if a == nil {
		return 0, ErrNilAuthenticator
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if a.cfg.Type != TypeHOTP {
		return 0, fmt.Errorf("%w: ValidateCounter is only valid for HOTP", ErrInvalidConfig)
	}
	if strings.TrimSpace(code) == "" {
		return 0, fmt.Errorf("%w: code must not be empty", ErrInvalidCode)
	}

	matched, err := a.matchCounter(code, counter, a.window)
	if err != nil {
		return 0, err
	}
	return matched + 1, nil
}

// matchCounter compares code against counter..counter+lookahead.
func (a *Authenticator) matchCounter(code string, counter uint64, lookahead uint) (uint64, error) {
	_, hi := counterRange(counter, lookahead)
	for c := counter; ; c++ {
		want, err := GenerateHOTP(a.key, c, a.cfg.Config.Digits, a.cfg.Config.Algorithm)
		if err != nil {
			return 0, err
		}
		if constantTimeEqual(want, code) {
			return c, nil
		}
		if c == hi {
			return 0, ErrInvalidCode
		}
	}
}

// Generate returns the TOTP code for at.
func (a *Authenticator) Generate(at time.Time) (string, error) {
	if a == nil {
		return "", ErrNilAuthenticator
	}
	if a.cfg.Type != TypeTOTP {
		return "", fmt.Errorf("%w: Generate is only valid for TOTP", ErrInvalidConfig)
	}
	counter, err := Counter(at, a.cfg.Config.Period)
	if err != nil {
		return "", err
	}
	return GenerateHOTP(a.key, counter, a.cfg.Config.Digits, a.cfg.Config.Algorithm)
}

// GenerateCounter returns the HOTP code for counter.
func (a *Authenticator) GenerateCounter(counter uint64) (string, error) {
	if a == nil {
		return "", ErrNilAuthenticator
	}
	return GenerateHOTP(a.key, counter, a.cfg.Config.Digits, a.cfg.Config.Algorithm)
}

// ProvisioningURI returns the otpauth:// URI for QR code generation.
// HOTP URIs carry the configured counter.
func (a *Authenticator) ProvisioningURI() string {
	if a == nil {
		return ""
	}
	uri := enrollmentURI(a.cfg.Type, a.cfg.AccountName, a.cfg.Secret, a.cfg.Issuer)
	if a.cfg.Type == TypeHOTP {
		return uri + configParams(a.cfg.Config, false) + fmt.Sprintf("&counter=%d", a.cfg.Counter)
	}
	return uri + configParams(a.cfg.Config, true)
}
