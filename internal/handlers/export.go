package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SK-Digital/Note-App/internal/contextutil"
	"github.com/SK-Digital/Note-App/internal/export"
	"github.com/SK-Digital/Note-App/internal/repository"
)

// ExportHandler converts notes to and from markdown documents.
type ExportHandler struct {
	repo     *repository.Repository
	importer *export.MarkdownImporter
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(repo *repository.Repository, importer *export.MarkdownImporter) *ExportHandler {
	return &ExportHandler{repo: repo, importer: importer}
}

// Export renders a note from the working set as a markdown document.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id := chi.URLParam(r, "id")
	note, ok := h.repo.Note(id)
	if !ok {
		writeError(w, repository.ErrNoteNotFound)
		return
	}

	doc, err := export.NoteToMarkdown(note)
	if err != nil {
		logger.ErrorContext(ctx, "failed to export note", "note_id", id, "error", err)
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(doc)); err != nil {
		logger.ErrorContext(ctx, "failed to write export response", "note_id", id, "error", err)
	}
}

// Import converts a markdown document into a new note and saves it.
func (h *ExportHandler) Import(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req struct {
		Title    string `json:"title"`
		Markdown string `json:"markdown"`
		FolderID string `json:"folderId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Error: "invalid request body"})
		return
	}

	note, err := h.importer.Import(req.Title, req.Markdown, req.FolderID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to import markdown", "error", err)
		writeError(w, err)
		return
	}

	saved, err := h.repo.SaveNote(ctx, note)
	if err != nil {
		logger.ErrorContext(ctx, "failed to save imported note", "error", err)
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, saved)
}
