package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SK-Digital/Note-App/internal/model"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	return store
}

func testNote(id, title string) model.Note {
	now := time.Now().UTC().Truncate(time.Second)
	return model.Note{
		ID:        id,
		Title:     title,
		Content:   "<p>hello</p>",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestFileStore_WriteAndReadNote(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	note := testNote("note-1", "First")
	note.FolderID = "folder-1"

	if err := store.WriteNote(ctx, note); err != nil {
		t.Fatalf("WriteNote() error = %v", err)
	}

	got, err := store.ReadNote(ctx, "note-1")
	if err != nil {
		t.Fatalf("ReadNote() error = %v", err)
	}
	if got.ID != note.ID || got.Title != note.Title || got.Content != note.Content || got.FolderID != note.FolderID {
		t.Errorf("ReadNote() = %+v, want %+v", got, note)
	}
	if !got.CreatedAt.Equal(note.CreatedAt) || !got.UpdatedAt.Equal(note.UpdatedAt) {
		t.Errorf("ReadNote() timestamps = %v/%v, want %v/%v", got.CreatedAt, got.UpdatedAt, note.CreatedAt, note.UpdatedAt)
	}
}

func TestFileStore_WriteNote_Overwrites(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	note := testNote("note-1", "Original")
	if err := store.WriteNote(ctx, note); err != nil {
		t.Fatalf("WriteNote() error = %v", err)
	}

	note.Title = "Updated"
	if err := store.WriteNote(ctx, note); err != nil {
		t.Fatalf("WriteNote() overwrite error = %v", err)
	}

	notes, err := store.ReadAllNotes(ctx)
	if err != nil {
		t.Fatalf("ReadAllNotes() error = %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("ReadAllNotes() count = %d, want 1", len(notes))
	}
	if notes[0].Title != "Updated" {
		t.Errorf("ReadAllNotes() title = %q, want %q", notes[0].Title, "Updated")
	}
}

func TestFileStore_WriteNote_InvalidID(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		id   string
	}{
		{name: "empty", id: ""},
		{name: "path separator", id: "a/b"},
		{name: "parent dir", id: ".."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := store.WriteNote(ctx, testNote(tt.id, "bad")); err == nil {
				t.Errorf("WriteNote() with id %q expected error, got nil", tt.id)
			}
		})
	}
}

func TestFileStore_ReadNote_NotFound(t *testing.T) {
	store := newTestFileStore(t)

	_, err := store.ReadNote(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ReadNote() error = %v, want ErrNotFound", err)
	}
}

func TestFileStore_ReadAllNotes_SkipsCorruptRecords(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	if err := store.WriteNote(ctx, testNote("good", "Good")); err != nil {
		t.Fatalf("WriteNote() error = %v", err)
	}

	// A half-written or garbage record must not block the rest.
	corrupt := filepath.Join(store.root, "notes", "bad.json")
	if err := os.WriteFile(corrupt, []byte("{not json"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	notes, err := store.ReadAllNotes(ctx)
	if err != nil {
		t.Fatalf("ReadAllNotes() error = %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("ReadAllNotes() count = %d, want 1", len(notes))
	}
	if notes[0].ID != "good" {
		t.Errorf("ReadAllNotes() id = %q, want %q", notes[0].ID, "good")
	}
}

func TestFileStore_ReadAllNotes_Empty(t *testing.T) {
	store := newTestFileStore(t)

	notes, err := store.ReadAllNotes(context.Background())
	if err != nil {
		t.Fatalf("ReadAllNotes() error = %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("ReadAllNotes() count = %d, want 0", len(notes))
	}
}

func TestFileStore_DeleteNote(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	if err := store.WriteNote(ctx, testNote("note-1", "First")); err != nil {
		t.Fatalf("WriteNote() error = %v", err)
	}
	if err := store.DeleteNote(ctx, "note-1"); err != nil {
		t.Fatalf("DeleteNote() error = %v", err)
	}

	notes, err := store.ReadAllNotes(ctx)
	if err != nil {
		t.Fatalf("ReadAllNotes() error = %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("ReadAllNotes() after delete count = %d, want 0", len(notes))
	}
}

func TestFileStore_DeleteNote_Absent(t *testing.T) {
	store := newTestFileStore(t)

	// Deleting something already gone is a no-op, not an error.
	if err := store.DeleteNote(context.Background(), "never-existed"); err != nil {
		t.Errorf("DeleteNote() error = %v, want nil", err)
	}
}

func TestFileStore_ReadFolders_FirstRun(t *testing.T) {
	store := newTestFileStore(t)

	folders, err := store.ReadFolders(context.Background())
	if err != nil {
		t.Fatalf("ReadFolders() error = %v", err)
	}
	if len(folders) != 0 {
		t.Errorf("ReadFolders() count = %d, want 0", len(folders))
	}
}

func TestFileStore_WriteAndReadFolders(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	folders := []model.Folder{
		{ID: "f1", Name: "Recipes"},
		{ID: "f2", Name: "Work"},
		{ID: "f3", Name: "Ideas"},
	}
	if err := store.WriteFolders(ctx, folders); err != nil {
		t.Fatalf("WriteFolders() error = %v", err)
	}

	got, err := store.ReadFolders(ctx)
	if err != nil {
		t.Fatalf("ReadFolders() error = %v", err)
	}
	if len(got) != len(folders) {
		t.Fatalf("ReadFolders() count = %d, want %d", len(got), len(folders))
	}
	for i := range folders {
		if got[i] != folders[i] {
			t.Errorf("ReadFolders()[%d] = %+v, want %+v", i, got[i], folders[i])
		}
	}
}

func TestFileStore_ReadFolders_CorruptFile(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	if err := os.WriteFile(store.foldersPath(), []byte("garbage"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	folders, err := store.ReadFolders(ctx)
	if err != nil {
		t.Fatalf("ReadFolders() error = %v", err)
	}
	if len(folders) != 0 {
		t.Errorf("ReadFolders() count = %d, want 0", len(folders))
	}
}

func TestFileStore_DeleteFolder(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	folders := []model.Folder{
		{ID: "f1", Name: "Recipes"},
		{ID: "f2", Name: "Work"},
	}
	if err := store.WriteFolders(ctx, folders); err != nil {
		t.Fatalf("WriteFolders() error = %v", err)
	}
	if err := store.DeleteFolder(ctx, "f1"); err != nil {
		t.Fatalf("DeleteFolder() error = %v", err)
	}

	got, err := store.ReadFolders(ctx)
	if err != nil {
		t.Fatalf("ReadFolders() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "f2" {
		t.Errorf("ReadFolders() after delete = %+v, want only f2", got)
	}

	// Absent folder id is a no-op.
	if err := store.DeleteFolder(ctx, "f1"); err != nil {
		t.Errorf("DeleteFolder() repeat error = %v, want nil", err)
	}
}
