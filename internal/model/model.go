package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTitle is the placeholder title assigned to freshly created notes.
const DefaultTitle = "Untitled Note"

// Note is a single rich-text note. Content is an opaque serialized markup
// blob owned by the editor widget; this layer never inspects it.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// FolderID references a Folder by id. Empty means unassigned, so the
	// note appears in the default list.
	FolderID string `json:"folderId,omitempty"`
}

// Folder groups notes. Membership lives on the note side only: it is derived
// by filtering notes on FolderID, never duplicated here.
type Folder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewNote creates an in-memory note with a fresh unique id and default
// fields. folderID may be empty for an unassigned note. The note is not
// persisted until an explicit save.
func NewNote(folderID string) Note {
	now := time.Now().UTC()
	return Note{
		ID:        uuid.New().String(),
		Title:     DefaultTitle,
		Content:   "",
		CreatedAt: now,
		UpdatedAt: now,
		FolderID:  folderID,
	}
}

// NewFolder creates a folder with a fresh unique id. The caller must
// validate the name with ValidFolderName first.
func NewFolder(name string) Folder {
	return Folder{
		ID:   uuid.New().String(),
		Name: strings.TrimSpace(name),
	}
}

// ValidTitle reports whether s is a usable note title (non-empty after
// trimming whitespace).
func ValidTitle(s string) bool {
	return strings.TrimSpace(s) != ""
}

// ValidFolderName reports whether s is a usable folder name (non-empty after
// trimming whitespace).
func ValidFolderName(s string) bool {
	return strings.TrimSpace(s) != ""
}
