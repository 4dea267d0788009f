// Package token issues and decodes the signed bearer tokens used for API
// authentication.
//
// Tokens are compact HS256 JWTs carrying a subject and an expiry. They are
// self-contained: validity is determined purely by signature and expiry at
// decode time, with no server-side state and no revocation list.
package token

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Decode failure kinds. Expired and Malformed both mean the credential is
// unusable; callers typically translate all three to the same 401 outcome.
var (
	// ErrInvalidSignature indicates the MAC did not verify under the server secret.
	ErrInvalidSignature = errors.New("token: invalid signature")
	// ErrMalformed indicates the token structure could not be parsed, or the
	// decoded payload carries no subject.
	ErrMalformed = errors.New("token: malformed")
	// ErrExpired indicates the token expiry has passed.
	ErrExpired = errors.New("token: expired")
)

// Claims is the token payload: subject plus the registered time claims.
type Claims struct {
	gojwt.RegisteredClaims
}

// Service issues and decodes signed tokens.
type Service struct {
	cfg Config
}

// NewService creates a token service from configuration.
func NewService(cfg Config) (*Service, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service{cfg: cfg}, nil
}

// Issue creates a signed token for the subject using the configured TTL.
// It returns the token string and its expiry time.
func (s *Service) Issue(subject string) (string, time.Time, error) {
	return s.IssueWithTTL(subject, s.cfg.TTL())
}

// IssueWithTTL creates a signed token for the subject expiring after ttl.
// A negative ttl produces an already-expired token, which decode rejects.
func (s *Service) IssueWithTTL(subject string, ttl time.Duration) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, fmt.Errorf("%w: empty subject", ErrMalformed)
	}

	expiresAt := time.Now().UTC().Add(ttl)
	claims := &Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: gojwt.NewNumericDate(expiresAt),
			IssuedAt:  gojwt.NewNumericDate(time.Now().UTC()),
		},
	}

	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("token: sign: %w", err)
	}
	return signed, expiresAt, nil
}

// Decode verifies and parses a token string. It fails with
// ErrInvalidSignature, ErrExpired, or ErrMalformed; on success the returned
// claims carry a non-empty subject.
func (s *Service) Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := gojwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, translateParseError(err)
	}
	if !parsed.Valid {
		return nil, ErrMalformed
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: empty subject", ErrMalformed)
	}
	return claims, nil
}

func (s *Service) keyFunc(t *gojwt.Token) (interface{}, error) {
	if t.Method.Alg() != gojwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("token: unexpected signing method: %s", t.Method.Alg())
	}
	return []byte(s.cfg.Secret), nil
}

// translateParseError maps golang-jwt failures onto the package's stable
// failure kinds.
func translateParseError(err error) error {
	switch {
	case errors.Is(err, gojwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	case errors.Is(err, gojwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}
