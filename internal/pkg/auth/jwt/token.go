/*
Package jwt issues and verifies the signed session tokens handed to clients
on login and logout.
*/
package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	// LoginExpiration is the lifetime of a token minted on login.
	LoginExpiration = 24 * time.Hour

	// LogoutExpiration is the lifetime of the null-subject token minted on logout.
	// Expiry is encoded in whole seconds, so the token is expired at once or
	// within the current second.
	LogoutExpiration = 10 * time.Millisecond

	// TokenIssuer identifies the issuer of the token.
	TokenIssuer = "ysocial-server"
)

// ErrMissingSecret is a configuration error: tokens cannot be signed without a secret.
var ErrMissingSecret = errors.New("jwt: signing secret is not configured")

// Issuer signs and verifies HS256 tokens with one server-held secret.
type Issuer struct {
	secret []byte
	now    func() time.Time
}

// NewIssuer returns an Issuer for secret. An empty secret is a fatal
// misconfiguration and yields ErrMissingSecret.
func NewIssuer(secret string) (*Issuer, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &Issuer{secret: []byte(secret), now: time.Now}, nil
}

// Issue creates and signs a token for userID (nil for no subject) valid for ttl.
func (i *Issuer) Issue(userID *string, ttl time.Duration) (string, error) {
	now := i.now()

	payload := &Payload{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(ttl).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    TokenIssuer,
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)

	return token.SignedString(i.secret)
}

// Parse parses and validates a token string, rejecting foreign signing
// methods, bad signatures and expired tokens.
func (i *Issuer) Parse(tokenString string) (*Payload, error) {
	claims := &Payload{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	return claims, nil
}
