package model

import (
	"net/http"
	"regexp"
	"time"

	"github.com/andrecahu/desafio-pitang-api/pkg/apierror"
)

var licensePlatePattern = regexp.MustCompile(`^[A-Z]{3}-\d{4}$`)

// Car is the persisted vehicle row. Ownership is one-directional: the car
// holds its owner's id and nothing more, and the id is never rendered
// outbound.
type Car struct {
	ID           string `json:"id"`
	Year         int    `json:"year"`
	LicensePlate string `json:"licensePlate"`
	Model        string `json:"model"`
	Color        string `json:"color"`
	UserID       string `json:"-"`
}

// CarInput is the create/update payload. Year is a pointer so an absent
// field is distinguishable from year zero.
type CarInput struct {
	Year         *int   `json:"year"`
	LicensePlate string `json:"licensePlate"`
	Model        string `json:"model"`
	Color        string `json:"color"`
}

// Validate applies the vehicle field rules: all fields required, year not in
// the future, plate in the "XXX-1234" format.
func (c CarInput) Validate() error {
	if c.Year == nil || c.LicensePlate == "" || c.Model == "" || c.Color == "" {
		return apierror.New("Missing fields", http.StatusBadRequest)
	}

	if *c.Year > time.Now().Year() {
		return apierror.New("Invalid fields", http.StatusBadRequest)
	}

	if !licensePlatePattern.MatchString(c.LicensePlate) {
		return apierror.New("Invalid fields", http.StatusBadRequest)
	}

	return nil
}
