package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is our interface for anything that can sign access tokens.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// Verifier validates a token string and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed      = errors.New("jwtx: malformed token")
	ErrInvalidSig     = errors.New("jwtx: invalid signature")
	ErrExpired        = errors.New("jwtx: token expired")
	ErrIssuer         = errors.New("jwtx: issuer mismatch")
	ErrMissingSubject = errors.New("jwtx: missing subject")
)

// HS256 signs and verifies tokens with a single process-wide symmetric
// secret. One struct implements both sides because the key is shared.
type HS256 struct {
	secret []byte
	issuer string
}

// NewHS256 creates a signer/verifier from the shared secret. The issuer is
// stamped on issued tokens and enforced on verification when non-empty.
func NewHS256(secret []byte, issuer string) (*HS256, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwtx: empty HS256 secret")
	}
	return &HS256{secret: secret, issuer: issuer}, nil
}

func (h *HS256) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign takes your claims and turns them into a signed compact JWT string.
func (h *HS256) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(h.secret)
}

// Verify validates the token string and returns its parsed Claims. Failures
// are reported through the typed sentinel errors above so callers can branch
// without string matching.
func (h *HS256) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return time.Now().UTC() }),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		default:
			return Claims{}, ErrMalformed
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrMalformed
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}
	if claims.Subject == "" {
		return Claims{}, ErrMissingSubject
	}

	return *claims, nil
}
