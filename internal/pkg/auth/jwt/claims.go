package jwt

import "github.com/golang-jwt/jwt"

// Payload defines the claims carried by ysocial session tokens.
type Payload struct {
	// StandardClaims supplies exp, iat and iss at the top level of the token.
	jwt.StandardClaims

	// UserID is the authenticated user's identifier. It is null in the
	// acknowledgement token returned by logout.
	UserID *string `json:"id"`
}

// Subject returns the user id and whether the token names a user at all.
func (p *Payload) Subject() (string, bool) {
	if p == nil || p.UserID == nil {
		return "", false
	}
	return *p.UserID, true
}
