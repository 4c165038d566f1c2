package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrecahu/desafio-pitang-api/internal/model"
)

func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", 15*time.Minute)

	token, err := svc.Issue(model.User{Login: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestTokenService_ZeroTTLExpiresImmediately(t *testing.T) {
	// Expiry is exclusive of now: a ttl=0 token is never valid.
	svc := NewTokenService("test-secret", 0)

	token, err := svc.Issue(model.User{Login: "alice"})
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestTokenService_VerifyFailuresAreOpaque(t *testing.T) {
	svc := NewTokenService("test-secret", 15*time.Minute)
	other := NewTokenService("other-secret", 15*time.Minute)

	validToken, err := svc.Issue(model.User{Login: "alice"})
	require.NoError(t, err)

	foreignToken, err := other.Issue(model.User{Login: "alice"})
	require.NoError(t, err)

	wrongIssuer := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "someone-else",
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
	})
	wrongIssuerToken, err := wrongIssuer.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:  tokenIssuer,
		Subject: "alice",
	})
	noExpiryToken, err := noExpiry.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"bad signature", foreignToken},
		{"wrong issuer", wrongIssuerToken},
		{"missing expiry", noExpiryToken},
		{"malformed", "not-a-token"},
		{"tampered", validToken + "x"},
		{"empty", ""},
	}

	var messages []string
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			subject, err := svc.Verify(tc.token)
			require.Error(t, err)
			assert.Empty(t, subject)
			messages = append(messages, err.Error())
		})
	}

	// Every failure mode reports the same error so callers get no oracle.
	for _, msg := range messages {
		assert.Equal(t, messages[0], msg)
	}
}

func TestTokenService_ExtractBearer(t *testing.T) {
	svc := NewTokenService("test-secret", 15*time.Minute)

	tests := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{"standard", "Bearer abc.def.ghi", "abc.def.ghi", true},
		{"lowercase scheme", "bearer abc", "abc", true},
		{"surrounding whitespace", "  Bearer abc  ", "abc", true},
		{"missing header", "", "", false},
		{"no scheme", "abc.def.ghi", "", false},
		{"scheme only", "Bearer ", "", false},
		{"wrong scheme", "Basic abc", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			token, ok := svc.ExtractBearer(tc.header)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.token, token)
		})
	}
}
