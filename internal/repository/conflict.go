package repository

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/andrecahu/desafio-pitang-api/pkg/apierror"
)

const uniqueViolationCode = "23505"

// conflictError maps a unique-constraint violation onto the specific conflict
// message for that constraint. The database constraint is the authoritative
// uniqueness guard; service-layer pre-checks only exist for friendlier
// fast-path errors.
func conflictError(err error) (*apierror.APIError, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return nil, false
	}

	switch pgErr.ConstraintName {
	case "users_login_key":
		return apierror.New("Login already exists", http.StatusBadRequest), true
	case "users_email_key":
		return apierror.New("Email already exists", http.StatusBadRequest), true
	case "cars_license_plate_key":
		return apierror.New("License plate already exists", http.StatusBadRequest), true
	default:
		return apierror.New("Conflict", http.StatusBadRequest), true
	}
}
