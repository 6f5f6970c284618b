package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SK-Digital/Note-App/internal/contextutil"
	"github.com/SK-Digital/Note-App/internal/repository"
)

// FoldersHandler exposes folder operations to the presentation layer.
type FoldersHandler struct {
	repo *repository.Repository
}

// NewFoldersHandler creates a new FoldersHandler.
func NewFoldersHandler(repo *repository.Repository) *FoldersHandler {
	return &FoldersHandler{repo: repo}
}

// List returns the ordered folder sequence.
func (h *FoldersHandler) List(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, h.repo.Folders())
}

// Create validates the name and persists a new folder.
func (h *FoldersHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Error: "invalid request body"})
		return
	}

	folder, err := h.repo.CreateFolder(ctx, req.Name)
	if err != nil {
		logger.WarnContext(ctx, "failed to create folder", "name", req.Name, "error", err)
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, folder)
}

// Rename changes a folder's name. An empty or unchanged name is a no-op.
func (h *FoldersHandler) Rename(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Error: "invalid request body"})
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.repo.RenameFolder(ctx, id, req.Name); err != nil {
		logger.WarnContext(ctx, "failed to rename folder", "folder_id", id, "error", err)
		writeError(w, err)
		return
	}
	folder, ok := h.repo.Folder(id)
	if !ok {
		writeError(w, repository.ErrFolderNotFound)
		return
	}
	writeData(w, http.StatusOK, folder)
}

// Delete removes a folder and dissociates its notes.
func (h *FoldersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id := chi.URLParam(r, "id")
	if err := h.repo.DeleteFolder(ctx, id); err != nil {
		logger.ErrorContext(ctx, "failed to delete folder", "folder_id", id, "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true})
}
