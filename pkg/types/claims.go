package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/staffing-go/internal/domain/owner"
)

// Claims is the JWT payload issued by the identity service.
type Claims struct {
	OwnerID  string     `json:"owner_id"`
	Role     owner.Kind `json:"role"`
	Username string     `json:"username,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) Principal() owner.Principal {
	return owner.Principal{Kind: c.Role, ID: c.OwnerID}
}
