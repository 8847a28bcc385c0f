// Package otp provides TOTP (RFC 6238) and HOTP (RFC 4226) code generation
// and verification.
//
// TOTP (Time-based One-Time Password) generates codes that change every 30 seconds,
// commonly used with authenticator apps like Google Authenticator, Authy, etc.
//
// HOTP (HMAC-based One-Time Password) generates codes based on a counter value,
// used in hardware tokens and some mobile apps.
//
// Every function takes the time explicitly. Nothing in the package reads the
// system clock, so results are reproducible and callers decide which clock
// to trust.
//
// # Enrollment
//
// Generate a secret and the URI an authenticator app scans:
//
//	secret, err := otp.GenerateSecret(otp.DefaultSecretSize)
//	if err != nil {
//	    log.Fatal(err) // no secure random source, do not enroll
//	}
//	uri := otp.BuildEnrollmentURI("user@example.com", secret, "MyApp")
//	// Render uri as a QR code
//
// # Verification
//
//	ok, err := otp.Verify(secret, code, time.Now(), otp.Config{})
//	if err != nil {
//	    log.Printf("bad secret or config: %v", err)
//	}
//
// Verify accepts one period of clock skew on either side. Use VerifyWindow to
// choose another window, including 0 for an exact match.
//
// # Replay
//
// A code stays valid for the whole window. The package keeps no state, so it
// cannot tell whether a code was already used. Callers that need single use
// should call VerifyCounter, store the returned counter with the account,
// and reject any later code whose counter is not strictly greater.
//
// # Hash Algorithms
//
// The package supports multiple hash algorithms:
//   - AlgorithmSHA1 (default, widely supported)
//   - AlgorithmSHA256
//   - AlgorithmSHA512
//
// Note that not all authenticator apps support SHA256 and SHA512.
//
// # Thread Safety
//
// All functions and the Authenticator type are safe for concurrent use.
// SecretGenerator serializes access to its random source.
package otp
