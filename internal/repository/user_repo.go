package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andrecahu/desafio-pitang-api/internal/model"
	"github.com/andrecahu/desafio-pitang-api/pkg/apierror"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// FindByLogin resolves a login to its account row. The comparison is exact
// and case-sensitive: login is the token subject and must not resolve fuzzily.
func (r *UserRepository) FindByLogin(ctx context.Context, login string) (model.User, error) {
	var (
		u         model.User
		birthday  time.Time
		createdAt time.Time
		lastLogin *time.Time
	)

	err := r.pool.QueryRow(ctx,
		`SELECT user_id, first_name, last_name, email, birthday, login, password, phone, created_at, last_login
		 FROM users WHERE login = $1`, login).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &birthday, &u.Login,
			&u.PasswordHash, &u.Phone, &createdAt, &lastLogin)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, apierror.New("User not found", http.StatusNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("find user by login: %w", err)
	}

	u.Birthday = model.NewDate(birthday)
	u.CreatedAt = model.NewDate(createdAt)
	if lastLogin != nil {
		d := model.NewDate(*lastLogin)
		u.LastLogin = &d
	}

	return u, nil
}

func (r *UserRepository) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE login = $1)`, login).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check login exists: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) Create(ctx context.Context, u model.User) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (user_id, first_name, last_name, email, birthday, login, password, phone, created_at, last_login)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		u.ID, u.FirstName, u.LastName, u.Email, u.Birthday.Time, u.Login,
		u.PasswordHash, u.Phone, u.CreatedAt.Time, lastLoginValue(u.LastLogin))
	if err != nil {
		if conflict, ok := conflictError(err); ok {
			return conflict
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID string, when model.Date) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET last_login = $2 WHERE user_id = $1`, userID, when.Time)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.New("User not found", http.StatusNotFound)
	}
	return nil
}

func lastLoginValue(d *model.Date) *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}
