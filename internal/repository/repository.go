package repository

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SK-Digital/Note-App/internal/model"
	"github.com/SK-Digital/Note-App/internal/storage"
)

// Repository owns the in-memory working set of notes and folders and
// mediates every mutation through the storage backend. Mutations follow a
// write-then-reflect discipline: the store is updated first and the working
// set only changes once the write succeeds. MoveNote is the single
// documented exception, an optimistic update with a compensating rollback.
//
// A single mutex serializes all operations, so operations issued against the
// same entity complete in issuance order (last write wins on a rapid
// double-save). Callers must treat returned values as snapshots.
type Repository struct {
	mu     sync.Mutex
	store  storage.Store
	logger *slog.Logger

	notes   []model.Note // insertion-ordered
	folders []model.Folder

	// Weak references: only ids are held, the owning copies live in the
	// collections above.
	currentNoteID   string
	currentFolderID string
}

// New creates a Repository over the given store. The working set starts
// empty; call LoadAll to populate it from storage.
func New(store storage.Store) *Repository {
	return &Repository{
		store:  store,
		logger: slog.Default(),
	}
}

// LoadAll replaces the entire working set with the stored state. This is a
// full resynchronization, not a merge: immediately after it returns, the
// working set is an exact mirror of storage. Storage read failures have
// already degraded to empty results by the time they reach here, so a broken
// medium manifests as an empty list rather than an error.
func (r *Repository) LoadAll(ctx context.Context) error {
	notes, err := r.store.ReadAllNotes(ctx)
	if err != nil {
		return WrapError(err, "failed to load notes")
	}
	folders, err := r.store.ReadFolders(ctx)
	if err != nil {
		return WrapError(err, "failed to load folders")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = notes
	r.folders = folders
	r.logger.InfoContext(ctx, "working set reloaded", "notes", len(notes), "folders", len(folders))
	return nil
}

// CreateNote allocates a new note, inserts it into the working set, and
// marks it current. The note exists only in memory until the first SaveNote.
// folderID may be empty; a non-empty folderID must reference a known folder.
func (r *Repository) CreateNote(folderID string) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if folderID != "" && r.folderIndex(folderID) < 0 {
		return model.Note{}, ErrFolderNotFound
	}

	note := model.NewNote(folderID)
	r.notes = append(r.notes, note)
	r.currentNoteID = note.ID
	return note, nil
}

// SaveNote stamps the note's UpdatedAt and persists it. On success the
// working set holds the updated copy (appending it if the note is not
// already present); on failure the working set and the prior on-disk record
// are left untouched. Repeated saves of identical content are safe.
func (r *Repository) SaveNote(ctx context.Context, note model.Note) (model.Note, error) {
	if !model.ValidTitle(note.Title) {
		return model.Note{}, &ValidationError{Field: "title", Message: "cannot be empty"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	note.UpdatedAt = time.Now().UTC()
	if err := r.store.WriteNote(ctx, note); err != nil {
		r.logger.ErrorContext(ctx, "failed to save note", "note_id", note.ID, "error", err)
		return model.Note{}, WrapError(err, "failed to save note")
	}

	if i := r.noteIndex(note.ID); i >= 0 {
		r.notes[i] = note
	} else {
		r.notes = append(r.notes, note)
	}
	return note, nil
}

// DeleteNote removes the note from storage and, on success, from the working
// set, clearing the current note if it was the one deleted. Deleting an
// absent note succeeds. On failure the working set is unchanged.
func (r *Repository) DeleteNote(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.DeleteNote(ctx, id); err != nil {
		r.logger.ErrorContext(ctx, "failed to delete note", "note_id", id, "error", err)
		return WrapError(err, "failed to delete note")
	}

	if i := r.noteIndex(id); i >= 0 {
		r.notes = append(r.notes[:i], r.notes[i+1:]...)
	}
	if r.currentNoteID == id {
		r.currentNoteID = ""
	}
	return nil
}

// CreateFolder validates the name, allocates a folder, and persists the full
// folder collection. On validation or write failure no state changes.
func (r *Repository) CreateFolder(ctx context.Context, name string) (model.Folder, error) {
	if !model.ValidFolderName(name) {
		return model.Folder{}, &ValidationError{Field: "name", Message: "cannot be empty"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	folder := model.NewFolder(name)
	updated := append(append([]model.Folder{}, r.folders...), folder)
	if err := r.store.WriteFolders(ctx, updated); err != nil {
		r.logger.ErrorContext(ctx, "failed to create folder", "name", folder.Name, "error", err)
		return model.Folder{}, WrapError(err, "failed to create folder")
	}

	r.folders = updated
	return folder, nil
}

// RenameFolder renames a folder and persists the full folder collection.
// An empty or unchanged name is a no-op that skips the write entirely.
func (r *Repository) RenameFolder(ctx context.Context, id, newName string) error {
	newName = strings.TrimSpace(newName)

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.folderIndex(id)
	if i < 0 {
		return ErrFolderNotFound
	}
	if newName == "" || newName == r.folders[i].Name {
		return nil
	}

	updated := append([]model.Folder{}, r.folders...)
	updated[i].Name = newName
	if err := r.store.WriteFolders(ctx, updated); err != nil {
		r.logger.ErrorContext(ctx, "failed to rename folder", "folder_id", id, "error", err)
		return WrapError(err, "failed to rename folder")
	}

	r.folders = updated
	return nil
}

// RenameNote retitles a note and persists it. An empty or unchanged title is
// a no-op that skips the write entirely.
func (r *Repository) RenameNote(ctx context.Context, id, newTitle string) error {
	newTitle = strings.TrimSpace(newTitle)

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.noteIndex(id)
	if i < 0 {
		return ErrNoteNotFound
	}
	if newTitle == "" || newTitle == r.notes[i].Title {
		return nil
	}

	updated := r.notes[i]
	updated.Title = newTitle
	updated.UpdatedAt = time.Now().UTC()
	if err := r.store.WriteNote(ctx, updated); err != nil {
		r.logger.ErrorContext(ctx, "failed to rename note", "note_id", id, "error", err)
		return WrapError(err, "failed to rename note")
	}

	r.notes[i] = updated
	return nil
}

// DeleteFolder removes the folder from storage and the working set, then
// dissociates every note that referenced it by clearing the note's FolderID
// in memory and on disk. Dissociated notes reappear in the unassigned list;
// no orphaned records are left behind. Deleting an absent folder succeeds.
//
// The folder removal is the commit point: if it fails, nothing changes. A
// dissociation write failure after that point is reported, but the affected
// notes are still dissociated in memory since the folder no longer exists.
func (r *Repository) DeleteFolder(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.DeleteFolder(ctx, id); err != nil {
		r.logger.ErrorContext(ctx, "failed to delete folder", "folder_id", id, "error", err)
		return WrapError(err, "failed to delete folder")
	}

	if i := r.folderIndex(id); i >= 0 {
		r.folders = append(r.folders[:i], r.folders[i+1:]...)
	}
	if r.currentFolderID == id {
		r.currentFolderID = ""
	}

	var dissocErrs []error
	for i := range r.notes {
		if r.notes[i].FolderID != id {
			continue
		}
		r.notes[i].FolderID = ""
		r.notes[i].UpdatedAt = time.Now().UTC()
		if err := r.store.WriteNote(ctx, r.notes[i]); err != nil {
			r.logger.ErrorContext(ctx, "failed to dissociate note from deleted folder",
				"note_id", r.notes[i].ID, "folder_id", id, "error", err)
			dissocErrs = append(dissocErrs, err)
		}
	}
	if len(dissocErrs) > 0 {
		return WrapError(errors.Join(dissocErrs...), "folder deleted but some notes were not dissociated")
	}
	return nil
}

// MoveNote assigns a note to a folder (or unassigns it when folderID is
// empty). The update is optimistic: FolderID changes in memory first, the
// note is persisted, and a failed write triggers a compensating rollback to
// the prior value.
func (r *Repository) MoveNote(ctx context.Context, noteID, folderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.noteIndex(noteID)
	if i < 0 {
		return ErrNoteNotFound
	}
	if folderID != "" && r.folderIndex(folderID) < 0 {
		return ErrFolderNotFound
	}

	prev := r.notes[i]
	r.notes[i].FolderID = folderID
	r.notes[i].UpdatedAt = time.Now().UTC()

	if err := r.store.WriteNote(ctx, r.notes[i]); err != nil {
		r.notes[i] = prev
		r.logger.ErrorContext(ctx, "failed to move note, reverted", "note_id", noteID, "error", err)
		return WrapError(err, "failed to move note")
	}
	return nil
}

// Notes returns a snapshot of the working set in insertion order.
func (r *Repository) Notes() []model.Note {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Note{}, r.notes...)
}

// Folders returns a snapshot of the folder sequence.
func (r *Repository) Folders() []model.Folder {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Folder{}, r.folders...)
}

// Note looks up a note in the working set by id.
func (r *Repository) Note(id string) (model.Note, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.noteIndex(id); i >= 0 {
		return r.notes[i], true
	}
	return model.Note{}, false
}

// Folder looks up a folder in the working set by id.
func (r *Repository) Folder(id string) (model.Folder, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.folderIndex(id); i >= 0 {
		return r.folders[i], true
	}
	return model.Folder{}, false
}

// NotesInFolder returns the notes assigned to the given folder.
func (r *Repository) NotesInFolder(folderID string) []model.Note {
	r.mu.Lock()
	defer r.mu.Unlock()
	notes := []model.Note{}
	for _, note := range r.notes {
		if note.FolderID == folderID {
			notes = append(notes, note)
		}
	}
	return notes
}

// UnassignedNotes returns the notes that belong to no folder.
func (r *Repository) UnassignedNotes() []model.Note {
	return r.NotesInFolder("")
}

// RecentNotes returns up to n notes ordered by most recent update.
func (r *Repository) RecentNotes(n int) []model.Note {
	r.mu.Lock()
	defer r.mu.Unlock()

	notes := append([]model.Note{}, r.notes...)
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
	if n >= 0 && len(notes) > n {
		notes = notes[:n]
	}
	return notes
}

// CurrentNote looks up the current note in the working set. The second
// return is false when no current note is set or it no longer exists.
func (r *Repository) CurrentNote() (model.Note, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.noteIndex(r.currentNoteID); i >= 0 {
		return r.notes[i], true
	}
	return model.Note{}, false
}

// SetCurrentNote marks the note with the given id current. An empty id
// clears the selection.
func (r *Repository) SetCurrentNote(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id != "" && r.noteIndex(id) < 0 {
		return ErrNoteNotFound
	}
	r.currentNoteID = id
	return nil
}

// CurrentFolder looks up the current folder in the working set.
func (r *Repository) CurrentFolder() (model.Folder, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.folderIndex(r.currentFolderID); i >= 0 {
		return r.folders[i], true
	}
	return model.Folder{}, false
}

// SetCurrentFolder marks the folder with the given id current. An empty id
// clears the selection.
func (r *Repository) SetCurrentFolder(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id != "" && r.folderIndex(id) < 0 {
		return ErrFolderNotFound
	}
	r.currentFolderID = id
	return nil
}

// noteIndex returns the position of the note with the given id, or -1.
// Callers must hold r.mu.
func (r *Repository) noteIndex(id string) int {
	if id == "" {
		return -1
	}
	for i := range r.notes {
		if r.notes[i].ID == id {
			return i
		}
	}
	return -1
}

// folderIndex returns the position of the folder with the given id, or -1.
// Callers must hold r.mu.
func (r *Repository) folderIndex(id string) int {
	if id == "" {
		return -1
	}
	for i := range r.folders {
		if r.folders[i].ID == id {
			return i
		}
	}
	return -1
}
