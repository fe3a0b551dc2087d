package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// Generate signs an access token for the given identity.
func Generate(v *viper.Viper, metadata Metadata) (string, error) {
	ttl := v.GetInt("jwt.ttl_hour")
	if ttl <= 0 {
		ttl = 24
	}

	claims := Claim{
		Metadata: metadata,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    v.GetString("app.name"),
			Subject:   metadata.UserID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(ttl) * time.Hour)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(v.GetString("jwt.secret")))
}

// Verify parses and validates a bearer token, returning its metadata.
func Verify(v *viper.Viper, tokenString string) (*Metadata, error) {
	claim := new(Claim)
	parsed, err := jwt.ParseWithClaims(tokenString, claim, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(v.GetString("jwt.secret")), nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return &claim.Metadata, nil
}
