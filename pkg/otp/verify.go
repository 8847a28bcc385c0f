package otp

import (
	"crypto/subtle"
	"math"
	"time"
)

// Verify reports whether token is valid for secret at the given time,
// accepting DefaultWindow periods of clock skew on either side.
func Verify(secret, token string, at time.Time, cfg Config) (bool, error) {
	return VerifyWindow(secret, token, at, cfg, DefaultWindow)
}

// VerifyWindow reports whether token matches any counter in
// [now-window, now+window]. A window of 0 accepts only the current step.
// Malformed secrets and configurations are returned as errors; a token that
// simply does not match yields false and a nil error.
func VerifyWindow(secret, token string, at time.Time, cfg Config, window uint) (bool, error) {
	_, ok, err := VerifyCounter(secret, token, at, cfg, window)
	return ok, err
}

// VerifyCounter is like VerifyWindow but also returns the counter that
// matched. Callers that must reject replays should persist the returned
// counter and refuse any later token whose counter is not greater.
//
// Every candidate in the window is computed and compared in constant time,
// so the running time does not depend on which candidate matched.
func VerifyCounter(secret, token string, at time.Time, cfg Config, window uint) (uint64, bool, error) {
	cfg, err := cfg.resolve()
	if err != nil {
		return 0, false, err
	}
	key, err := DecodeSecret(secret)
	if err != nil {
		return 0, false, err
	}
	if len(key) == 0 {
		return 0, false, ErrEmptyKey
	}
	current, err := Counter(at, cfg.Period)
	if err != nil {
		return 0, false, err
	}

	lo, hi := counterRange(current, window)

	var matched uint64
	found := false
	for c := lo; ; c++ {
		code, err := GenerateHOTP(key, c, cfg.Digits, cfg.Algorithm)
		if err != nil {
			return 0, false, err
		}
		if constantTimeEqual(code, token) && !found {
			matched, found = c, true
		}
		if c == hi {
			break
		}
	}
	return matched, found, nil
}

// counterRange clamps current±window to the uint64 range.
func counterRange(current uint64, window uint) (uint64, uint64) {
	w := uint64(window)
	lo := uint64(0)
	if current > w {
		lo = current - w
	}
	hi := uint64(math.MaxUint64)
	if math.MaxUint64-current > w {
		hi = current + w
	}
	return lo, hi
}

// constantTimeEqual compares two codes without short-circuiting on the first
// differing byte. Only the length comparison is early.
func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
