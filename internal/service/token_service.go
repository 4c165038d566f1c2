package service

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/andrecahu/desafio-pitang-api/internal/model"
	"github.com/andrecahu/desafio-pitang-api/pkg/apierror"
)

const tokenIssuer = "desafio-pitang-api"

// TokenService issues and verifies the stateless HMAC session tokens. The
// signing secret is loaded once at startup and never rotated while running.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token whose subject is the user's login, expiring at
// now + ttl. A signing failure is a configuration problem and surfaces as an
// opaque authentication error rather than leaking internals.
func (s *TokenService) Issue(user model.User) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   user.Login,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", apierror.New("Authentication error", http.StatusUnauthorized)
	}

	return signed, nil
}

// Verify checks signature, issuer and expiry and recovers the subject.
// Every failure mode collapses into the same opaque error so callers cannot
// distinguish expired from forged tokens.
func (s *TokenService) Verify(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return "", apierror.New("Unauthorized", http.StatusUnauthorized)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", apierror.New("Unauthorized", http.StatusUnauthorized)
	}

	return claims.Subject, nil
}

// ExtractBearer strips the "Bearer " prefix from an Authorization header
// value. Pure string handling, no I/O.
func (s *TokenService) ExtractBearer(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return "", false
	}

	token := strings.TrimSpace(header[7:])
	if token == "" {
		return "", false
	}

	return token, true
}
