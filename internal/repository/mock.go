package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/andrecahu/desafio-pitang-api/internal/model"
)

// MockUserStore is a testify mock of the service layer's user store.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) FindByLogin(ctx context.Context, login string) (model.User, error) {
	args := m.Called(ctx, login)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	args := m.Called(ctx, login)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStore) Create(ctx context.Context, u model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserStore) UpdateLastLogin(ctx context.Context, userID string, when model.Date) error {
	args := m.Called(ctx, userID, when)
	return args.Error(0)
}

// MockCarStore is a testify mock of the service layer's car store.
type MockCarStore struct {
	mock.Mock
}

func (m *MockCarStore) Create(ctx context.Context, c model.Car) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCarStore) FindByIDAndOwner(ctx context.Context, id string, ownerID string) (model.Car, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(model.Car), args.Error(1)
}

func (m *MockCarStore) ListByOwner(ctx context.Context, ownerID string) ([]model.Car, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Car), args.Error(1)
}

func (m *MockCarStore) Update(ctx context.Context, c model.Car) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCarStore) DeleteByIDAndOwner(ctx context.Context, id string, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *MockCarStore) ExistsByLicensePlate(ctx context.Context, plate string) (bool, error) {
	args := m.Called(ctx, plate)
	return args.Bool(0), args.Error(1)
}
