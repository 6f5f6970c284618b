package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/SK-Digital/Note-App/internal/contextutil"
	"github.com/SK-Digital/Note-App/internal/model"
	"github.com/SK-Digital/Note-App/internal/repository"
)

// NotesHandler exposes note operations to the presentation layer.
type NotesHandler struct {
	repo *repository.Repository
}

// NewNotesHandler creates a new NotesHandler.
func NewNotesHandler(repo *repository.Repository) *NotesHandler {
	return &NotesHandler{repo: repo}
}

// List returns notes from the working set. Query parameters narrow the view:
// folder=<id> selects a folder's notes, folder=none the unassigned list, and
// recent=<n> the n most recently updated notes.
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	if n := r.URL.Query().Get("recent"); n != "" {
		limit, err := strconv.Atoi(n)
		if err != nil || limit < 0 {
			writeJSON(w, http.StatusBadRequest, envelope{Success: false, Error: "recent must be a non-negative integer"})
			return
		}
		writeData(w, http.StatusOK, h.repo.RecentNotes(limit))
		return
	}

	switch folder := r.URL.Query().Get("folder"); folder {
	case "":
		writeData(w, http.StatusOK, h.repo.Notes())
	case "none":
		writeData(w, http.StatusOK, h.repo.UnassignedNotes())
	default:
		writeData(w, http.StatusOK, h.repo.NotesInFolder(folder))
	}
}

// Create allocates a new in-memory note. Nothing is persisted until the
// client saves it.
func (h *NotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req struct {
		FolderID string `json:"folderId"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, envelope{Success: false, Error: "invalid request body"})
			return
		}
	}

	note, err := h.repo.CreateNote(req.FolderID)
	if err != nil {
		logger.WarnContext(ctx, "failed to create note", "folder_id", req.FolderID, "error", err)
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, note)
}

// Save persists the full note sent by the client, keyed by the path id. The
// creation timestamp of an already-known note is preserved.
func (h *NotesHandler) Save(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var note model.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Error: "invalid request body"})
		return
	}
	note.ID = chi.URLParam(r, "id")

	if existing, ok := h.repo.Note(note.ID); ok {
		note.CreatedAt = existing.CreatedAt
	} else if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now().UTC()
	}

	saved, err := h.repo.SaveNote(ctx, note)
	if err != nil {
		logger.ErrorContext(ctx, "failed to save note", "note_id", note.ID, "error", err)
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, saved)
}

// Delete removes a note. Deleting an unknown id succeeds.
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id := chi.URLParam(r, "id")
	if err := h.repo.DeleteNote(ctx, id); err != nil {
		logger.ErrorContext(ctx, "failed to delete note", "note_id", id, "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true})
}

// Move assigns a note to a folder. An empty folderId unassigns it.
func (h *NotesHandler) Move(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req struct {
		FolderID string `json:"folderId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Error: "invalid request body"})
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.repo.MoveNote(ctx, id, req.FolderID); err != nil {
		logger.ErrorContext(ctx, "failed to move note", "note_id", id, "folder_id", req.FolderID, "error", err)
		writeError(w, err)
		return
	}
	note, _ := h.repo.Note(id)
	writeData(w, http.StatusOK, note)
}
