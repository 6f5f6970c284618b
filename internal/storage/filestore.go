package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/SK-Digital/Note-App/internal/model"
)

// FileStore persists one JSON document per note under <root>/notes and the
// whole folder collection at <root>/folders.json. Every write goes through a
// temp file followed by an atomic rename, so a crashed write can only ever
// lose the write in progress, never corrupt an existing record.
type FileStore struct {
	root   string
	logger *slog.Logger
}

// NewFileStore creates the storage root and its notes directory if needed.
func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Join(root, "notes"), 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &FileStore{
		root:   root,
		logger: slog.Default(),
	}, nil
}

// WriteNote stores the note as <root>/notes/<id>.json, replacing any
// existing record with the same id.
func (s *FileStore) WriteNote(ctx context.Context, note model.Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.notePath(note.ID)
	if err != nil {
		return err
	}
	data, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("failed to encode note %s: %w", note.ID, err)
	}
	if err := s.writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("failed to write note %s: %w", note.ID, err)
	}
	return nil
}

// ReadNote reads a single note record. Returns ErrNotFound if no record
// exists for the id.
func (s *FileStore) ReadNote(ctx context.Context, id string) (model.Note, error) {
	if err := ctx.Err(); err != nil {
		return model.Note{}, err
	}
	path, err := s.notePath(id)
	if err != nil {
		return model.Note{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Note{}, ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to read note %s: %w", id, err)
	}
	var note model.Note
	if err := json.Unmarshal(data, &note); err != nil {
		return model.Note{}, fmt.Errorf("failed to parse note %s: %w", id, err)
	}
	return note, nil
}

// ReadAllNotes returns every stored note. Unreadable or unparseable records
// are skipped with a warning so one corrupt note never blocks the rest; a
// failure to list the directory degrades to an empty result.
func (s *FileStore) ReadAllNotes(ctx context.Context) ([]model.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(filepath.Join(s.root, "notes"))
	if err != nil {
		s.logger.WarnContext(ctx, "failed to list notes directory", "error", err)
		return []model.Note{}, nil
	}

	notes := make([]model.Note, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(s.root, "notes", entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			s.logger.WarnContext(ctx, "skipping unreadable note record", "path", path, "error", err)
			continue
		}
		var note model.Note
		if err := json.Unmarshal(data, &note); err != nil {
			s.logger.WarnContext(ctx, "skipping corrupt note record", "path", path, "error", err)
			continue
		}
		notes = append(notes, note)
	}
	return notes, nil
}

// DeleteNote removes the note record. Deleting an absent record succeeds.
func (s *FileStore) DeleteNote(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.notePath(id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete note %s: %w", id, err)
	}
	return nil
}

// WriteFolders replaces the entire persisted folder collection.
func (s *FileStore) WriteFolders(ctx context.Context, folders []model.Folder) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if folders == nil {
		folders = []model.Folder{}
	}
	data, err := json.Marshal(folders)
	if err != nil {
		return fmt.Errorf("failed to encode folders: %w", err)
	}
	if err := s.writeFileAtomic(s.foldersPath(), data); err != nil {
		return fmt.Errorf("failed to write folders: %w", err)
	}
	return nil
}

// ReadFolders returns the persisted folder collection. A missing file means
// first run and yields an empty collection; a read or parse failure degrades
// to an empty collection with a warning.
func (s *FileStore) ReadFolders(ctx context.Context) ([]model.Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.foldersPath())
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.WarnContext(ctx, "failed to read folders", "error", err)
		}
		return []model.Folder{}, nil
	}
	var folders []model.Folder
	if err := json.Unmarshal(data, &folders); err != nil {
		s.logger.WarnContext(ctx, "corrupt folders record, starting empty", "error", err)
		return []model.Folder{}, nil
	}
	return folders, nil
}

// DeleteFolder rewrites the folder collection without the given id.
func (s *FileStore) DeleteFolder(ctx context.Context, id string) error {
	folders, err := s.ReadFolders(ctx)
	if err != nil {
		return err
	}
	kept := folders[:0]
	for _, folder := range folders {
		if folder.ID != id {
			kept = append(kept, folder)
		}
	}
	return s.WriteFolders(ctx, kept)
}

// notePath maps a note id to its record path. Ids are generated as UUIDs,
// but anything that could escape the notes directory is rejected outright.
func (s *FileStore) notePath(id string) (string, error) {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, "/\\") {
		return "", fmt.Errorf("invalid note id %q", id)
	}
	return filepath.Join(s.root, "notes", id+".json"), nil
}

func (s *FileStore) foldersPath() string {
	return filepath.Join(s.root, "folders.json")
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it into place.
func (s *FileStore) writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
