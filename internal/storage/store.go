package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_store.go -package=mocks github.com/SK-Digital/Note-App/internal/storage Store

import (
	"context"
	"errors"

	"github.com/SK-Digital/Note-App/internal/model"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// Store is the persistence boundary between the repository and durable
// storage. Notes are one unit of durability each; the folder collection is a
// single unit written wholesale. Implementations must make WriteNote atomic
// per note: a failed write never leaves a partially-written record readable
// on the next load. Read failures degrade to empty or partial results; only
// write failures are surfaced to the caller.
type Store interface {
	// WriteNote stores the note under its id, replacing any existing record.
	WriteNote(ctx context.Context, note model.Note) error
	// ReadNote reads a single note by id. Returns ErrNotFound if absent.
	ReadNote(ctx context.Context, id string) (model.Note, error)
	// ReadAllNotes returns every stored note. Records that cannot be read or
	// parsed are skipped so one corrupt note never blocks the rest.
	ReadAllNotes(ctx context.Context) ([]model.Note, error)
	// DeleteNote removes the record for id. Deleting an absent record is a
	// no-op, not an error.
	DeleteNote(ctx context.Context, id string) error
	// WriteFolders replaces the entire persisted folder collection.
	WriteFolders(ctx context.Context, folders []model.Folder) error
	// ReadFolders returns the persisted folder collection in order, or an
	// empty collection if none exists yet.
	ReadFolders(ctx context.Context) ([]model.Folder, error)
	// DeleteFolder rewrites the folder collection without the given id.
	// Deleting an absent folder is a no-op.
	DeleteFolder(ctx context.Context, id string) error
}
