package model

import (
	"net/http"
	"regexp"

	"github.com/andrecahu/desafio-pitang-api/pkg/apierror"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_+&*-]+(?:\.[a-zA-Z0-9_+&*-]+)*@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,7}$`)
	phonePattern = regexp.MustCompile(`^(\+\d{1,2}\s?)?\(?\d{2,3}\)?\s?-?\d{4,5}-?\d{4}$|^\d{8,9}$`)
)

// User is the persisted account row. The password hash never leaves the
// service; rendering to clients goes through UserResponse.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Birthday     Date
	Login        string
	PasswordHash string
	Phone        string
	CreatedAt    Date
	LastLogin    *Date
}

// RegisterRequest is the POST /users payload. Cars may be registered inline
// together with the new account.
type RegisterRequest struct {
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Birthday  Date       `json:"birthday"`
	Login     string     `json:"login"`
	Password  string     `json:"password"`
	Phone     string     `json:"phone"`
	Cars      []CarInput `json:"cars"`
}

// Validate applies the account field rules: every field is required, then
// email and phone must match their formats. Nested cars are validated
// separately by the car service.
func (r RegisterRequest) Validate() error {
	if r.FirstName == "" || r.LastName == "" || r.Email == "" || r.Birthday.IsZero() ||
		r.Login == "" || r.Password == "" || r.Phone == "" {
		return apierror.New("Missing fields", http.StatusBadRequest)
	}

	if !emailPattern.MatchString(r.Email) {
		return apierror.New("Invalid fields", http.StatusBadRequest)
	}

	if !phonePattern.MatchString(r.Phone) {
		return apierror.New("Invalid fields", http.StatusBadRequest)
	}

	return nil
}
