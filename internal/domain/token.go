package domain

import "time"

// TokenClaims are the fields encoded inside a signed token. A token is
// valid only while its signature verifies against the current signing
// secret and ExpiresAt has not passed.
type TokenClaims struct {
	Subject   string
	Roles     []string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
