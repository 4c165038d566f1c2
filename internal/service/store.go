package service

import (
	"context"

	"github.com/andrecahu/desafio-pitang-api/internal/model"
)

// UserStore is the persistence surface the services need for accounts.
// Implemented by repository.UserRepository.
type UserStore interface {
	FindByLogin(ctx context.Context, login string) (model.User, error)
	ExistsByLogin(ctx context.Context, login string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u model.User) error
	UpdateLastLogin(ctx context.Context, userID string, when model.Date) error
}

// CarStore is the persistence surface for vehicle records. Implemented by
// repository.CarRepository.
type CarStore interface {
	Create(ctx context.Context, c model.Car) error
	FindByIDAndOwner(ctx context.Context, id string, ownerID string) (model.Car, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Car, error)
	Update(ctx context.Context, c model.Car) error
	DeleteByIDAndOwner(ctx context.Context, id string, ownerID string) error
	ExistsByLicensePlate(ctx context.Context, plate string) (bool, error)
}
