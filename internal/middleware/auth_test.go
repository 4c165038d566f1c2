package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andrecahu/desafio-pitang-api/internal/model"
	"github.com/andrecahu/desafio-pitang-api/internal/repository"
	"github.com/andrecahu/desafio-pitang-api/internal/service"
	"github.com/andrecahu/desafio-pitang-api/pkg/apierror"
)

var publicRoutes = []PublicRoute{
	{Method: http.MethodPost, Path: "/signin"},
	{Method: http.MethodPost, Path: "/users"},
}

func newTestAuthenticator(users *repository.MockUserStore) (*Authenticator, *service.TokenService) {
	tokens := service.NewTokenService("test-secret", 15*time.Minute)
	return NewAuthenticator(tokens, users, publicRoutes), tokens
}

func TestAuthenticator_AbsentTokenOnProtectedRouteRejects(t *testing.T) {
	users := new(repository.MockUserStore)
	auth, _ := newTestAuthenticator(users)

	handlerInvoked := false
	handler := auth.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerInvoked = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/cars", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.False(t, handlerInvoked, "rejection must short-circuit the handler")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var envelope apierror.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Unauthorized", envelope.Message)
	assert.Equal(t, http.StatusUnauthorized, envelope.Status)
}

func TestAuthenticator_AbsentTokenOnPublicRouteIsAnonymous(t *testing.T) {
	users := new(repository.MockUserStore)
	auth, _ := newTestAuthenticator(users)

	req := httptest.NewRequest(http.MethodPost, "/signin", nil)
	result := auth.Authenticate(req)

	assert.Equal(t, DecisionAnonymous, result.Decision)
}

func TestAuthenticator_InvalidTokenDegradesToAnonymous(t *testing.T) {
	users := new(repository.MockUserStore)
	auth, _ := newTestAuthenticator(users)

	expired := service.NewTokenService("test-secret", 0)
	expiredToken, err := expired.Issue(model.User{Login: "bob"})
	require.NoError(t, err)

	for _, token := range []string{"garbage", expiredToken} {
		req := httptest.NewRequest(http.MethodGet, "/cars", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		result := auth.Authenticate(req)
		assert.Equal(t, DecisionAnonymous, result.Decision)
	}

	// The resolver must never be consulted for a token that fails to verify.
	users.AssertNotCalled(t, "FindByLogin", mock.Anything, mock.Anything)
}

func TestAuthenticator_UnknownSubjectRejects(t *testing.T) {
	users := new(repository.MockUserStore)
	auth, tokens := newTestAuthenticator(users)

	token, err := tokens.Issue(model.User{Login: "ghost"})
	require.NoError(t, err)

	users.On("FindByLogin", mock.Anything, "ghost").
		Return(model.User{}, apierror.New("User not found", http.StatusNotFound))

	req := httptest.NewRequest(http.MethodGet, "/cars", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	result := auth.Authenticate(req)
	assert.Equal(t, DecisionRejected, result.Decision)
	assert.Equal(t, "Unauthorized - invalid session", result.Message)
}

func TestAuthenticator_ValidTokenAttachesIdentity(t *testing.T) {
	users := new(repository.MockUserStore)
	auth, tokens := newTestAuthenticator(users)

	bob := model.User{ID: "user-1", FirstName: "Bob", Login: "bob"}
	token, err := tokens.Issue(bob)
	require.NoError(t, err)

	users.On("FindByLogin", mock.Anything, "bob").Return(bob, nil)

	var attached model.User
	var ok bool
	handler := auth.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attached, ok = IdentityFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/cars", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.True(t, ok)
	assert.Equal(t, "user-1", attached.ID)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIdentityFromContext_AbsentByDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/cars", nil)
	_, ok := IdentityFromContext(req.Context())
	assert.False(t, ok)
}
