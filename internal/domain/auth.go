package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the closed set of access levels a token can carry. Keeping
// it a distinct type makes an unknown role a construction-time problem
// instead of a runtime string check.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// AdminSubject is the fixed token subject used for the configured
// admin account, which has no user record.
const AdminSubject = "admin"

// AccessClaims is the JWT payload. Role travels in the "typ" claim
// alongside the registered claims.
type AccessClaims struct {
	jwt.RegisteredClaims
	// TokenID shadows the registered jti claim, which is omitempty, so
	// the field is always serialized even while unused.
	TokenID string `json:"jti"`
	Role    Role   `json:"typ"`
}

// LoginRequest carries user credentials for both login endpoints
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries a freshly minted access token
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ValidUntil  time.Time `json:"valid_until"`
}
