package service

import (
	"context"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/andrecahu/desafio-pitang-api/internal/model"
	"github.com/andrecahu/desafio-pitang-api/pkg/apierror"
)

const bcryptCost = 12

// AuthService owns the sign-in path: credential verification against the
// stored bcrypt hash and session token issuance.
type AuthService struct {
	users  UserStore
	tokens *TokenService
}

func NewAuthService(users UserStore, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// SignIn verifies the presented credentials and issues a session token.
// Unknown login and wrong password fail with the same message so the response
// never reveals which check failed. A successful sign-in stamps lastLogin.
func (s *AuthService) SignIn(ctx context.Context, login string, password string) (model.SignInResponse, error) {
	invalid := apierror.New("Invalid login or password", http.StatusUnauthorized)

	user, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		return model.SignInResponse{}, invalid
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.SignInResponse{}, invalid
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return model.SignInResponse{}, err
	}

	// The stamp is best-effort: a failure here must not undo an otherwise
	// successful sign-in.
	if err := s.users.UpdateLastLogin(ctx, user.ID, model.Today()); err != nil {
		slog.Warn("failed to update last login", "login", user.Login, "error", err)
	}

	return model.SignInResponse{FirstName: user.FirstName, Token: token}, nil
}

// HashPassword produces the one-way credential hash stored for a new account.
func HashPassword(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcryptCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}
