package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "42"}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func TestCredential_JSONRoundTrip(t *testing.T) {
	cred := Credential{username: "aldous", token: "jwt-token-value"}

	b, err := json.Marshal(cred)
	require.NoError(t, err)

	var restored Credential
	require.NoError(t, json.Unmarshal(b, &restored))

	assert.Equal(t, cred, restored)
}

func TestCredential_StringRedactsToken(t *testing.T) {
	cred := Credential{username: "aldous", token: "top-secret"}

	assert.NotContains(t, cred.String(), "top-secret")
	assert.Contains(t, cred.String(), "aldous")
}

func TestCredential_Expired(t *testing.T) {
	now := time.Now()

	expired := Credential{token: signedToken(t, now.Add(-time.Hour))}
	assert.True(t, expired.Expired(now))

	valid := Credential{token: signedToken(t, now.Add(time.Hour))}
	assert.False(t, valid.Expired(now))

	noClaim := Credential{token: signedToken(t, time.Time{})}
	assert.False(t, noClaim.Expired(now))

	notAJWT := Credential{token: "opaque"}
	assert.False(t, notAJWT.Expired(now))
}

func TestAuthHeader(t *testing.T) {
	assert.Empty(t, AuthHeader(nil))

	cred := Credential{username: "aldous", token: "abc"}
	headers := AuthHeader(&cred)
	require.Len(t, headers, 1)
	assert.Equal(t, "Authorization", headers[0].Key)
	assert.Equal(t, "Token abc", headers[0].Value)
}
