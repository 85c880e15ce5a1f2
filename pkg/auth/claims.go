package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity and tenant scope of an authenticated caller.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string   `json:"user_id"`
	TenantID string   `json:"tenant_id"`
	Roles    []string `json:"roles"`
}

// HasRole checks whether the claims include the given role.
func (c Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Role constants used across the admin panel services.
const (
	RoleAdmin      = "admin"
	RoleAccountant = "accountant"
	RoleStudent    = "student"
)
