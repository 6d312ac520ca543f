// Package tokenx signs and verifies the bearer tokens that carry the acting
// member's identity and role into the planner. Minting happens outside the
// core (an association portal, a CLI, a test); the planner only needs to
// verify what it is handed.
package tokenx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("tokenx: invalid token")
	ErrExpiredToken = errors.New("tokenx: token expired")
)

// Claims are the registered claims plus the member's association role.
type Claims struct {
	Role string `json:"role"`

	jwt.RegisteredClaims
}

// Signer mints and verifies HS256 tokens with a shared secret.
type Signer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

// Sign returns a signed token identifying the member and role.
func (s *Signer) Sign(memberEmail, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   memberEmail,
			Issuer:    s.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

// Verify parses raw and returns its claims if the signature, issuer and
// expiry all check out.
func (s *Signer) Verify(raw string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return s.Secret, nil
		},
		jwt.WithIssuer(s.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpiredToken
		}
		return Claims{}, ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}
