package service

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/andrecahu/desafio-pitang-api/internal/model"
	"github.com/andrecahu/desafio-pitang-api/pkg/apierror"
)

// CarService implements the ownership-guarded vehicle operations. Every
// id-scoped lookup is owner-scoped in a single query, so a foreign car and a
// missing car are indistinguishable to the caller.
type CarService struct {
	cars CarStore
}

func NewCarService(cars CarStore) *CarService {
	return &CarService{cars: cars}
}

// Register validates and persists a new car owned by ownerID. The plate
// pre-check gives a friendly fast-path error; the database unique constraint
// remains the authoritative guard against concurrent registration.
func (s *CarService) Register(ctx context.Context, ownerID string, in model.CarInput) (model.Car, error) {
	if err := in.Validate(); err != nil {
		return model.Car{}, err
	}

	exists, err := s.cars.ExistsByLicensePlate(ctx, in.LicensePlate)
	if err != nil {
		return model.Car{}, err
	}
	if exists {
		return model.Car{}, apierror.New("License plate already exists", http.StatusBadRequest)
	}

	car := model.Car{
		ID:           uuid.NewString(),
		Year:         *in.Year,
		LicensePlate: in.LicensePlate,
		Model:        in.Model,
		Color:        in.Color,
		UserID:       ownerID,
	}

	if err := s.cars.Create(ctx, car); err != nil {
		return model.Car{}, err
	}

	return car, nil
}

func (s *CarService) ListByOwner(ctx context.Context, ownerID string) ([]model.Car, error) {
	return s.cars.ListByOwner(ctx, ownerID)
}

func (s *CarService) FindByID(ctx context.Context, ownerID string, id string) (model.Car, error) {
	return s.cars.FindByIDAndOwner(ctx, id, ownerID)
}

// Update replaces the car's descriptive fields. Changing the plate re-checks
// global uniqueness; keeping it does not.
func (s *CarService) Update(ctx context.Context, ownerID string, id string, in model.CarInput) (model.Car, error) {
	if err := in.Validate(); err != nil {
		return model.Car{}, err
	}

	current, err := s.cars.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return model.Car{}, err
	}

	if in.LicensePlate != current.LicensePlate {
		exists, err := s.cars.ExistsByLicensePlate(ctx, in.LicensePlate)
		if err != nil {
			return model.Car{}, err
		}
		if exists {
			return model.Car{}, apierror.New("License plate already exists", http.StatusBadRequest)
		}
	}

	updated := model.Car{
		ID:           current.ID,
		Year:         *in.Year,
		LicensePlate: in.LicensePlate,
		Model:        in.Model,
		Color:        in.Color,
		UserID:       ownerID,
	}

	if err := s.cars.Update(ctx, updated); err != nil {
		return model.Car{}, err
	}

	return updated, nil
}

func (s *CarService) Delete(ctx context.Context, ownerID string, id string) error {
	return s.cars.DeleteByIDAndOwner(ctx, id, ownerID)
}
