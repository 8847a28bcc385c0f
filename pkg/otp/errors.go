package otp

import "errors"

// Errors returned by the package. Callers should compare with errors.Is since
// most are wrapped with additional detail.
var (
	// ErrInvalidEncoding indicates a secret contains characters outside the base32 alphabet.
	ErrInvalidEncoding = errors.New("otp: invalid base32 encoding")

	// ErrInvalidConfig indicates digits, period, algorithm or a length parameter is out of range.
	ErrInvalidConfig = errors.New("otp: invalid configuration")

	// ErrEmptyKey indicates a zero-length raw key.
	ErrEmptyKey = errors.New("otp: empty key")

	// ErrInsecureRandomUnavailable indicates the secure random source failed.
	// Enrollment must stop; there is no weaker fallback.
	ErrInsecureRandomUnavailable = errors.New("otp: secure random source unavailable")

	// ErrInvalidTimestamp indicates a time before the Unix epoch.
	ErrInvalidTimestamp = errors.New("otp: timestamp before unix epoch")

	// ErrInvalidCode indicates the provided OTP code is invalid.
	ErrInvalidCode = errors.New("otp: invalid code")

	// ErrInvalidURI indicates an enrollment URI could not be parsed.
	ErrInvalidURI = errors.New("otp: invalid enrollment uri")

	// ErrNilAuthenticator indicates a nil authenticator was used.
	ErrNilAuthenticator = errors.New("otp: authenticator is nil")
)
