package handler

import (
	"encoding/json"
	"net/http"

	"github.com/andrecahu/desafio-pitang-api/internal/middleware"
	"github.com/andrecahu/desafio-pitang-api/internal/model"
	"github.com/andrecahu/desafio-pitang-api/internal/service"
	"github.com/andrecahu/desafio-pitang-api/pkg/apierror"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("Invalid fields", http.StatusBadRequest))
		return
	}

	response, err := h.service.Register(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

// Me returns the caller's own account representation.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("Unauthorized", http.StatusUnauthorized))
		return
	}

	writeJSON(w, http.StatusOK, user.ToResponse())
}
