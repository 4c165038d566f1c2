package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andrecahu/desafio-pitang-api/internal/middleware"
	"github.com/andrecahu/desafio-pitang-api/internal/model"
	"github.com/andrecahu/desafio-pitang-api/internal/service"
	"github.com/andrecahu/desafio-pitang-api/pkg/apierror"
)

type CarHandler struct {
	service *service.CarService
}

func NewCarHandler(service *service.CarService) *CarHandler {
	return &CarHandler{service: service}
}

// identity fetches the authenticated user or writes the 401 envelope. Every
// car route requires an identity; an anonymous request (absent on the
// allow-list, or carrying an invalid token) hard-fails here.
func identity(w http.ResponseWriter, r *http.Request) (model.User, bool) {
	user, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("Unauthorized", http.StatusUnauthorized))
	}
	return user, ok
}

func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	user, ok := identity(w, r)
	if !ok {
		return
	}

	var payload model.CarInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("Invalid fields", http.StatusBadRequest))
		return
	}

	car, err := h.service.Register(r.Context(), user.ID, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, car)
}

func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := identity(w, r)
	if !ok {
		return
	}

	cars, err := h.service.ListByOwner(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cars)
}

func (h *CarHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := identity(w, r)
	if !ok {
		return
	}

	car, err := h.service.FindByID(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, car)
}

func (h *CarHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	user, ok := identity(w, r)
	if !ok {
		return
	}

	var payload model.CarInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("Invalid fields", http.StatusBadRequest))
		return
	}

	car, err := h.service.Update(r.Context(), user.ID, chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, car)
}

func (h *CarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := identity(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
