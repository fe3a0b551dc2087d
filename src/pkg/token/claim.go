package token

import "github.com/golang-jwt/jwt/v5"

const (
	RoleOwner  = "owner"
	RoleDriver = "driver"
)

type Metadata struct {
	UserID   string `json:"user_id"`
	OwnerID  string `json:"owner_id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type Claim struct {
	Metadata Metadata `json:"metadata"`
	jwt.RegisteredClaims
}
