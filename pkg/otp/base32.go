package otp

import (
	"encoding/base32"
	"fmt"
)

// secretEncoding is the RFC 4648 standard alphabet without padding.
var secretEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// EncodeSecret returns the unpadded, uppercase base32 text for a raw key.
func EncodeSecret(key []byte) string {
	return secretEncoding.EncodeToString(key)
}

// DecodeSecret returns the raw key for base32 text. Input is case-insensitive.
// Any character outside A-Z and 2-7, including '=' and whitespace, is rejected
// with ErrInvalidEncoding. Trailing bits that do not complete a byte are
// dropped, so every input length is accepted.
func DecodeSecret(secret string) ([]byte, error) {
	key := make([]byte, 0, len(secret)*5/8)

	var buf uint32
	var bits uint
	for i := 0; i < len(secret); i++ {
		v, ok := base32Value(secret[i])
		if !ok {
			return nil, fmt.Errorf("%w: illegal character %q at offset %d", ErrInvalidEncoding, secret[i], i)
		}
		buf = buf<<5 | uint32(v)
		bits += 5
		if bits >= 8 {
			bits -= 8
			key = append(key, byte(buf>>bits))
			buf &= 1<<bits - 1
		}
	}
	return key, nil
}

func base32Value(c byte) (byte, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return c - 'A', true
	case c >= 'a' && c <= 'z':
		return c - 'a', true
	case c >= '2' && c <= '7':
		return c - '2' + 26, true
	}
	return 0, false
}
