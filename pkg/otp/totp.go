package otp

import (
	"fmt"
	"time"
)

// CurrentCode is a token together with its countdown state.
type CurrentCode struct {
	// Token is the code valid for the step containing the requested time.
	Token string
	// Remaining is the time left in the step, in whole seconds.
	Remaining time.Duration
	// Progress is Remaining divided by the period, in (0, 1].
	Progress float64
}

// Counter returns the time step for at. The time is truncated to whole Unix
// seconds before dividing by period. A zero period selects DefaultPeriod.
func Counter(at time.Time, period uint) (uint64, error) {
	sec := at.Unix()
	if sec < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTimestamp, sec)
	}
	return uint64(sec) / uint64(periodOrDefault(period)), nil
}

// Generate returns the TOTP code for the base32 secret at the given time.
func Generate(secret string, at time.Time, cfg Config) (string, error) {
	cfg, err := cfg.resolve()
	if err != nil {
		return "", err
	}
	key, err := DecodeSecret(secret)
	if err != nil {
		return "", err
	}
	counter, err := Counter(at, cfg.Period)
	if err != nil {
		return "", err
	}
	return GenerateHOTP(key, counter, cfg.Digits, cfg.Algorithm)
}

// RemainingTime returns how long the code for at stays valid. At an exact
// step boundary the full period remains, never zero.
func RemainingTime(at time.Time, period uint) time.Duration {
	p := int64(periodOrDefault(period))
	elapsed := at.Unix() % p
	if elapsed < 0 {
		elapsed += p
	}
	return time.Duration(p-elapsed) * time.Second
}

// Progress returns RemainingTime as a fraction of the period, suitable for
// a countdown bar.
func Progress(at time.Time, period uint) float64 {
	p := periodOrDefault(period)
	return RemainingTime(at, p).Seconds() / float64(p)
}

// Current returns the code for at together with its remaining lifetime.
func Current(secret string, at time.Time, cfg Config) (CurrentCode, error) {
	cfg = cfg.withDefaults()
	token, err := Generate(secret, at, cfg)
	if err != nil {
		return CurrentCode{}, err
	}
	return CurrentCode{
		Token:     token,
		Remaining: RemainingTime(at, cfg.Period),
		Progress:  Progress(at, cfg.Period),
	}, nil
}

func periodOrDefault(period uint) uint {
	if period == 0 {
		return DefaultPeriod
	}
	return period
}
