package otp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	pqotp "github.com/pquerna/otp"
)

// Type represents the OTP algorithm type.
type Type string

const (
	// TypeTOTP represents Time-based OTP (RFC 6238).
	TypeTOTP Type = "totp"
	// TypeHOTP represents Counter-based OTP (RFC 4226).
	TypeHOTP Type = "hotp"
)

// Enrollment is the content of an otpauth:// URI.
type Enrollment struct {
	Type        Type
	Issuer      string
	AccountName string
	// Secret is the base32 secret, upper-cased.
	Secret string
	Config Config
}

// BuildEnrollmentURI returns the otpauth:// URI that authenticator apps scan
// to enroll a TOTP secret:
//
//	otpauth://totp/{issuer}:{label}?secret={secret}&issuer={issuer}
//
// Issuer and label are percent-encoded as URI components. The secret is
// base32 and is written as is.
func BuildEnrollmentURI(label, secret, issuer string) string {
	return enrollmentURI(TypeTOTP, label, secret, issuer)
}

func enrollmentURI(typ Type, label, secret, issuer string) string {
	enc := escapeComponent(issuer)
	return "otpauth://" + string(typ) + "/" + enc + ":" + escapeComponent(label) +
		"?secret=" + secret + "&issuer=" + enc
}

// BuildEnrollmentURIConfig is like BuildEnrollmentURI but appends algorithm,
// digits and period parameters for every value that differs from the
// defaults. With the default configuration the result is identical to
// BuildEnrollmentURI.
func BuildEnrollmentURIConfig(label, secret, issuer string, cfg Config) string {
	return BuildEnrollmentURI(label, secret, issuer) + configParams(cfg, true)
}

// configParams renders the non-default parameters of cfg as "&k=v" pairs.
func configParams(cfg Config, withPeriod bool) string {
	cfg = cfg.withDefaults()

	var b strings.Builder
	if cfg.Algorithm != DefaultAlgorithm {
		b.WriteString("&algorithm=" + string(cfg.Algorithm))
	}
	if cfg.Digits != DefaultDigits {
		b.WriteString("&digits=" + strconv.Itoa(cfg.Digits))
	}
	if withPeriod && cfg.Period != DefaultPeriod {
		b.WriteString("&period=" + strconv.FormatUint(uint64(cfg.Period), 10))
	}
	return b.String()
}

// ParseEnrollmentURI parses an otpauth:// URI. The secret must decode as
// base32 and the parameters must form a valid Config.
func ParseEnrollmentURI(uri string) (*Enrollment, error) {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "otpauth" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURI, uri)
	}
	key, err := pqotp.NewKeyFromURL(uri)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}

	typ := Type(strings.ToLower(key.Type()))
	if typ != TypeTOTP && typ != TypeHOTP {
		return nil, fmt.Errorf("%w: unsupported type %q", ErrInvalidURI, key.Type())
	}

	secret := strings.ToUpper(key.Secret())
	if secret == "" {
		return nil, fmt.Errorf("%w: missing secret", ErrInvalidURI)
	}
	if _, err := DecodeSecret(secret); err != nil {
		return nil, err
	}

	cfg := Config{Digits: DefaultDigits, Period: DefaultPeriod, Algorithm: DefaultAlgorithm}
	q := u.Query()
	if v := q.Get("algorithm"); v != "" {
		if cfg.Algorithm, err = ParseAlgorithm(v); err != nil {
			return nil, err
		}
	}
	if v := q.Get("digits"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: digits %q", ErrInvalidConfig, v)
		}
		if err := validateDigits(d); err != nil {
			return nil, err
		}
		cfg.Digits = d
	}
	if v := q.Get("period"); v != "" {
		p, err := strconv.ParseUint(v, 10, strconv.IntSize)
		if err != nil || p == 0 {
			return nil, fmt.Errorf("%w: period %q", ErrInvalidConfig, v)
		}
		cfg.Period = uint(p)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Enrollment{
		Type:        typ,
		Issuer:      key.Issuer(),
		AccountName: key.AccountName(),
		Secret:      secret,
		Config:      cfg,
	}, nil
}

// escapeComponent percent-encodes every byte of s except ASCII letters,
// digits and the marks - _ . ! ~ * ' ( ). Spaces become %20.
func escapeComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldKeep(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func shouldKeep(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
