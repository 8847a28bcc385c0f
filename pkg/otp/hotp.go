package otp

import (
	"crypto/hmac"
	"encoding/binary"
	"strconv"
	"strings"
)

// powers of ten indexed by digit count.
var pow10 = [MaxDigits + 1]uint32{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000}

// GenerateHOTP computes the RFC 4226 code for key at counter.
//
// The counter is serialized as 8 big-endian bytes and signed with HMAC using
// alg. Four bytes starting at the offset given by the low nibble of the last
// MAC byte are read big-endian, the sign bit is cleared, and the result is
// reduced modulo 10^digits and zero padded to digits characters.
func GenerateHOTP(key []byte, counter uint64, digits int, alg Algorithm) (string, error) {
	if len(key) == 0 {
		return "", ErrEmptyKey
	}
	if err := validateDigits(digits); err != nil {
		return "", err
	}
	newHash, err := alg.hashFunc()
	if err != nil {
		return "", err
	}

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(newHash, key)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	truncated := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff

	return formatCode(truncated%pow10[digits], digits), nil
}

func formatCode(code uint32, digits int) string {
	s := strconv.FormatUint(uint64(code), 10)
	if len(s) < digits {
		s = strings.Repeat("0", digits-len(s)) + s
	}
	return s
}
