package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims issued by the user-management service.
type Claims struct {
	jwt.RegisteredClaims
	Email    string   `json:"email"`
	Document string   `json:"document"`
	Roles    []string `json:"roles"`
}

// HasRole checks if the claims include the specified role.
func (c Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Role constants shared with the user-management service.
const (
	RoleAdmin   = "admin"
	RoleAdvisor = "asesor"
	RoleClient  = "cliente"
)
