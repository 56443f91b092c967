package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticator_IssueAndParse(t *testing.T) {
	a := NewAuthenticator("secret", "jobs-api", time.Hour)

	token, err := a.IssueToken("admin", true)
	require.NoError(t, err)

	claims, err := a.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "jobs-api", claims.Issuer)
}

func TestAuthenticator_RequireAdmin(t *testing.T) {
	a := NewAuthenticator("secret", "jobs-api", time.Hour)

	adminToken, err := a.IssueToken("admin", true)
	require.NoError(t, err)
	userToken, err := a.IssueToken("u1", false)
	require.NoError(t, err)

	claims, err := a.RequireAdmin(adminToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)

	_, err = a.RequireAdmin(userToken)
	assert.ErrorIs(t, err, ErrNotAdmin)
}

func TestAuthenticator_ParseToken_Rejects(t *testing.T) {
	a := NewAuthenticator("secret", "jobs-api", time.Hour)

	otherSecret, err := NewAuthenticator("other", "jobs-api", time.Hour).IssueToken("admin", true)
	require.NoError(t, err)

	otherIssuer, err := NewAuthenticator("secret", "someone-else", time.Hour).IssueToken("admin", true)
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Username: "admin",
		IsAdmin:  true,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "jobs-api",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{IsAdmin: true}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "wrong secret", token: otherSecret},
		{name: "wrong issuer", token: otherIssuer},
		{name: "expired", token: expired},
		{name: "unsigned", token: none},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := a.ParseToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestNewAuthenticator_DefaultTTL(t *testing.T) {
	a := NewAuthenticator("secret", "jobs-api", 0)

	token, err := a.IssueToken("admin", true)
	require.NoError(t, err)

	claims, err := a.ParseToken(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}
