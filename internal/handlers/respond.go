package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SK-Digital/Note-App/internal/repository"
)

// envelope mirrors the request/response shape of the storage boundary: a
// success flag, an optional failure reason, and an optional payload.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

// writeError maps repository errors onto HTTP statuses: validation failures
// are the client's fault, missing entities are 404, everything else is a
// storage-level failure.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var validationErr *repository.ValidationError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
	case errors.Is(err, repository.ErrNoteNotFound),
		errors.Is(err, repository.ErrFolderNotFound):
		status = http.StatusNotFound
	}

	writeJSON(w, status, envelope{Success: false, Error: err.Error()})
}
