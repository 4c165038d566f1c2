package service

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/andrecahu/desafio-pitang-api/internal/model"
	"github.com/andrecahu/desafio-pitang-api/pkg/apierror"
)

// UserService handles account registration, including cars nested in the
// registration payload.
type UserService struct {
	users  UserStore
	cars   *CarService
	tokens *TokenService
}

func NewUserService(users UserStore, cars *CarService, tokens *TokenService) *UserService {
	return &UserService{users: users, cars: cars, tokens: tokens}
}

// Register validates the payload and any nested cars up front, creates the
// account with a hashed password, persists the nested cars owned by the new
// account, and issues the account's first session token.
func (s *UserService) Register(ctx context.Context, req model.RegisterRequest) (model.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return model.RegisterResponse{}, err
	}
	for _, car := range req.Cars {
		if err := car.Validate(); err != nil {
			return model.RegisterResponse{}, err
		}
	}

	exists, err := s.users.ExistsByLogin(ctx, req.Login)
	if err != nil {
		return model.RegisterResponse{}, err
	}
	if exists {
		return model.RegisterResponse{}, apierror.New("Login already exists", http.StatusBadRequest)
	}

	exists, err = s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return model.RegisterResponse{}, err
	}
	if exists {
		return model.RegisterResponse{}, apierror.New("Email already exists", http.StatusBadRequest)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return model.RegisterResponse{}, err
	}

	user := model.User{
		ID:           uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Birthday:     req.Birthday,
		Login:        req.Login,
		PasswordHash: hash,
		Phone:        req.Phone,
		CreatedAt:    model.Today(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return model.RegisterResponse{}, err
	}

	for _, car := range req.Cars {
		if _, err := s.cars.Register(ctx, user.ID, car); err != nil {
			return model.RegisterResponse{}, err
		}
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return model.RegisterResponse{}, err
	}

	return model.RegisterResponse{UserResponse: user.ToResponse(), Token: token}, nil
}
