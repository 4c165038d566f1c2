package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andrecahu/desafio-pitang-api/internal/model"
	"github.com/andrecahu/desafio-pitang-api/pkg/apierror"
)

type CarRepository struct {
	pool *pgxpool.Pool
}

func NewCarRepository(pool *pgxpool.Pool) *CarRepository {
	return &CarRepository{pool: pool}
}

func (r *CarRepository) Create(ctx context.Context, c model.Car) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO cars (car_id, car_year, license_plate, model, color, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Year, c.LicensePlate, c.Model, c.Color, c.UserID)
	if err != nil {
		if conflict, ok := conflictError(err); ok {
			return conflict
		}
		return fmt.Errorf("create car: %w", err)
	}
	return nil
}

// FindByIDAndOwner loads a car scoped to its owner in a single lookup. A car
// that does not exist and a car owned by someone else produce the same
// not-found result, so ownership mismatches never leak existence.
func (r *CarRepository) FindByIDAndOwner(ctx context.Context, id string, ownerID string) (model.Car, error) {
	var c model.Car
	err := r.pool.QueryRow(ctx,
		`SELECT car_id, car_year, license_plate, model, color, user_id
		 FROM cars WHERE car_id = $1 AND user_id = $2`, id, ownerID).
		Scan(&c.ID, &c.Year, &c.LicensePlate, &c.Model, &c.Color, &c.UserID)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Car{}, apierror.New("Car not found", http.StatusNotFound)
	}
	if err != nil {
		return model.Car{}, fmt.Errorf("find car by id and owner: %w", err)
	}
	return c, nil
}

func (r *CarRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Car, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT car_id, car_year, license_plate, model, color, user_id
		 FROM cars WHERE user_id = $1 ORDER BY license_plate`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list cars by owner: %w", err)
	}
	defer rows.Close()

	cars := make([]model.Car, 0)
	for rows.Next() {
		var c model.Car
		if err := rows.Scan(&c.ID, &c.Year, &c.LicensePlate, &c.Model, &c.Color, &c.UserID); err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}

func (r *CarRepository) Update(ctx context.Context, c model.Car) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE cars SET car_year = $3, license_plate = $4, model = $5, color = $6
		 WHERE car_id = $1 AND user_id = $2`,
		c.ID, c.UserID, c.Year, c.LicensePlate, c.Model, c.Color)
	if err != nil {
		if conflict, ok := conflictError(err); ok {
			return conflict
		}
		return fmt.Errorf("update car: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.New("Car not found", http.StatusNotFound)
	}
	return nil
}

func (r *CarRepository) DeleteByIDAndOwner(ctx context.Context, id string, ownerID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM cars WHERE car_id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete car: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.New("Car not found", http.StatusNotFound)
	}
	return nil
}

func (r *CarRepository) ExistsByLicensePlate(ctx context.Context, plate string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM cars WHERE license_plate = $1)`, plate).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check license plate exists: %w", err)
	}
	return exists, nil
}
