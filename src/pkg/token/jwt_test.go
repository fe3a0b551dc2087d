package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testViper() *viper.Viper {
	v := viper.New()
	v.Set("app.name", "FLEET_SERVICE_TEST")
	v.Set("jwt.secret", "unit-test-secret")
	v.Set("jwt.ttl_hour", 1)
	return v
}

func TestGenerateAndVerify(t *testing.T) {
	v := testViper()

	signed, err := Generate(v, Metadata{
		UserID:   "driver-1",
		OwnerID:  "owner-1",
		FullName: "Ramesh",
		Role:     RoleDriver,
	})
	require.NoError(t, err)

	meta, err := Verify(v, signed)
	require.NoError(t, err)
	assert.Equal(t, "driver-1", meta.UserID)
	assert.Equal(t, "owner-1", meta.OwnerID)
	assert.Equal(t, RoleDriver, meta.Role)
}

func TestVerifyRejectsExpired(t *testing.T) {
	v := testViper()

	claims := Claim{
		Metadata: Metadata{UserID: "driver-1", Role: RoleDriver},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(v.GetString("jwt.secret")))
	require.NoError(t, err)

	_, err = Verify(v, signed)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	v := testViper()
	signed, err := Generate(v, Metadata{UserID: "owner-1", Role: RoleOwner})
	require.NoError(t, err)

	other := testViper()
	other.Set("jwt.secret", "some-other-secret")
	_, err = Verify(other, signed)
	assert.Error(t, err)
}
