package handler

import (
	"encoding/json"
	"net/http"

	"github.com/andrecahu/desafio-pitang-api/internal/model"
	"github.com/andrecahu/desafio-pitang-api/internal/service"
	"github.com/andrecahu/desafio-pitang-api/pkg/apierror"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("Invalid fields", http.StatusBadRequest))
		return
	}

	response, err := h.service.SignIn(r.Context(), payload.Login, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
