package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andrecahu/desafio-pitang-api/internal/model"
	"github.com/andrecahu/desafio-pitang-api/internal/repository"
	"github.com/andrecahu/desafio-pitang-api/pkg/apierror"
)

func registerRequest() model.RegisterRequest {
	birthday, _ := time.Parse("2006-01-02", "1990-05-01")
	return model.RegisterRequest{
		FirstName: "Bob",
		LastName:  "Silva",
		Email:     "bob@x.com",
		Birthday:  model.NewDate(birthday),
		Login:     "bob",
		Password:  "pw1",
		Phone:     "81999999999",
	}
}

func newUserService(users *repository.MockUserStore, cars *repository.MockCarStore) (*UserService, *TokenService) {
	tokens := NewTokenService("test-secret", 15*time.Minute)
	return NewUserService(users, NewCarService(cars), tokens), tokens
}

func TestUserService_RegisterSuccess(t *testing.T) {
	users := new(repository.MockUserStore)
	cars := new(repository.MockCarStore)
	svc, tokens := newUserService(users, cars)

	users.On("ExistsByLogin", mock.Anything, "bob").Return(false, nil)
	users.On("ExistsByEmail", mock.Anything, "bob@x.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Login == "bob" && u.PasswordHash != "" && u.PasswordHash != "pw1" && u.ID != ""
	})).Return(nil)

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.Equal(t, "bob", resp.Login)
	assert.Equal(t, "Bob", resp.FirstName)

	subject, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "bob", subject)

	users.AssertExpectations(t)
}

func TestUserService_RegisterWithNestedCars(t *testing.T) {
	users := new(repository.MockUserStore)
	cars := new(repository.MockCarStore)
	svc, _ := newUserService(users, cars)

	year := 2024
	req := registerRequest()
	req.Cars = []model.CarInput{{Year: &year, LicensePlate: "ABC-1234", Model: "X", Color: "red"}}

	users.On("ExistsByLogin", mock.Anything, "bob").Return(false, nil)
	users.On("ExistsByEmail", mock.Anything, "bob@x.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	cars.On("ExistsByLicensePlate", mock.Anything, "ABC-1234").Return(false, nil)
	cars.On("Create", mock.Anything, mock.MatchedBy(func(c model.Car) bool {
		return c.LicensePlate == "ABC-1234" && c.UserID != ""
	})).Return(nil)

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	cars.AssertExpectations(t)
}

func TestUserService_RegisterInvalidNestedCarRejectsBeforeCreate(t *testing.T) {
	users := new(repository.MockUserStore)
	cars := new(repository.MockCarStore)
	svc, _ := newUserService(users, cars)

	req := registerRequest()
	req.Cars = []model.CarInput{{LicensePlate: "ABC-1234", Model: "X", Color: "red"}}

	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)

	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Missing fields", apiErr.Message)

	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_RegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.RegisterRequest)
		message string
	}{
		{"missing first name", func(r *model.RegisterRequest) { r.FirstName = "" }, "Missing fields"},
		{"missing login", func(r *model.RegisterRequest) { r.Login = "" }, "Missing fields"},
		{"missing password", func(r *model.RegisterRequest) { r.Password = "" }, "Missing fields"},
		{"missing birthday", func(r *model.RegisterRequest) { r.Birthday = model.Date{} }, "Missing fields"},
		{"invalid email", func(r *model.RegisterRequest) { r.Email = "not-an-email" }, "Invalid fields"},
		{"invalid phone", func(r *model.RegisterRequest) { r.Phone = "abc" }, "Invalid fields"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			users := new(repository.MockUserStore)
			cars := new(repository.MockCarStore)
			svc, _ := newUserService(users, cars)

			req := registerRequest()
			tc.mutate(&req)

			_, err := svc.Register(context.Background(), req)
			require.Error(t, err)

			var apiErr *apierror.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusBadRequest, apiErr.Status)
			assert.Equal(t, tc.message, apiErr.Message)
		})
	}
}

func TestUserService_RegisterConflicts(t *testing.T) {
	t.Run("duplicate login", func(t *testing.T) {
		users := new(repository.MockUserStore)
		cars := new(repository.MockCarStore)
		svc, _ := newUserService(users, cars)

		users.On("ExistsByLogin", mock.Anything, "bob").Return(true, nil)

		_, err := svc.Register(context.Background(), registerRequest())
		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Login already exists", apiErr.Message)
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	})

	t.Run("duplicate email", func(t *testing.T) {
		users := new(repository.MockUserStore)
		cars := new(repository.MockCarStore)
		svc, _ := newUserService(users, cars)

		users.On("ExistsByLogin", mock.Anything, "bob").Return(false, nil)
		users.On("ExistsByEmail", mock.Anything, "bob@x.com").Return(true, nil)

		_, err := svc.Register(context.Background(), registerRequest())
		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Email already exists", apiErr.Message)
	})
}
