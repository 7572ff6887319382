package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiresWithin reports whether a JWT access token expires within d.
// Tokens that are not JWTs or carry no "exp" claim are reported as not expiring;
// the backend remains the authority on rejecting them.
func ExpiresWithin(accessToken string, d time.Duration) bool {
	return expiresWithin(accessToken, d, time.Now())
}

func expiresWithin(accessToken string, d time.Duration, now time.Time) bool {
	exp, ok := jwtExpiry(accessToken)
	if !ok {
		return false
	}
	return !exp.After(now.Add(d))
}

// jwtExpiry reads the "exp" claim without verifying the signature; the
// signature is checked by the backend, the client only needs the deadline.
func jwtExpiry(accessToken string) (time.Time, bool) {
	if accessToken == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
