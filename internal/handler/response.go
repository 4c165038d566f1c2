package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/andrecahu/desafio-pitang-api/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError translates any error into the uniform {message, status}
// envelope. Errors that are not APIErrors are unclassified infrastructure
// failures and collapse into an opaque 500.
func writeError(w http.ResponseWriter, err error) {
	body := apierror.New("Unexpected server error", http.StatusInternalServerError)

	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		body = apiErr
	} else {
		slog.Error("unhandled error", "error", err.Error())
	}

	writeJSON(w, body.Status, body)
}
