package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/SK-Digital/Note-App/internal/model"
)

// NewDB opens a SQLite database connection at the given path.
// It enables foreign keys and sets connection pool settings.
func NewDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys (disabled by default in SQLite)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate runs database migrations to create the required tables.
// It is idempotent and can be run multiple times safely.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS notes (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			folder_id TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS folders (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			position INTEGER NOT NULL
		);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// SQLiteStore implements Store on a SQLite database: one row per note, the
// folder collection rewritten wholesale inside a transaction. Rows behave as
// isolated units the same way per-note files do in FileStore.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore creates a new SQLiteStore. The database must already be
// migrated.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{
		db:     db,
		logger: slog.Default(),
	}
}

// WriteNote inserts the note or replaces the existing row with the same id.
func (s *SQLiteStore) WriteNote(ctx context.Context, note model.Note) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO notes (id, title, content, created_at, updated_at, folder_id)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		 title = excluded.title, content = excluded.content,
		 updated_at = excluded.updated_at, folder_id = excluded.folder_id`,
		note.ID, note.Title, note.Content,
		note.CreatedAt.UTC().Format(time.RFC3339Nano),
		note.UpdatedAt.UTC().Format(time.RFC3339Nano),
		note.FolderID,
	)
	if err != nil {
		return fmt.Errorf("failed to write note %s: %w", note.ID, err)
	}
	return nil
}

// ReadNote reads a single note row. Returns ErrNotFound if no row exists.
func (s *SQLiteStore) ReadNote(ctx context.Context, id string) (model.Note, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, title, content, created_at, updated_at, folder_id FROM notes WHERE id = ?", id)

	note, err := scanNote(row.Scan)
	if err == sql.ErrNoRows {
		return model.Note{}, ErrNotFound
	}
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to query note %s: %w", id, err)
	}
	return note, nil
}

// ReadAllNotes returns every stored note. Rows that fail to scan or parse
// are skipped with a warning; a failed query degrades to an empty result.
func (s *SQLiteStore) ReadAllNotes(ctx context.Context) ([]model.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, content, created_at, updated_at, folder_id FROM notes")
	if err != nil {
		s.logger.WarnContext(ctx, "failed to query notes", "error", err)
		return []model.Note{}, nil
	}
	defer func() {
		_ = rows.Close()
	}()

	notes := []model.Note{}
	for rows.Next() {
		note, err := scanNote(rows.Scan)
		if err != nil {
			s.logger.WarnContext(ctx, "skipping corrupt note row", "error", err)
			continue
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		s.logger.WarnContext(ctx, "note row iteration stopped early", "error", err)
	}
	return notes, nil
}

// DeleteNote removes the note row. Deleting an absent row succeeds.
func (s *SQLiteStore) DeleteNote(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete note %s: %w", id, err)
	}
	return nil
}

// WriteFolders replaces the entire folder collection in one transaction,
// preserving the given order via the position column.
func (s *SQLiteStore) WriteFolders(ctx context.Context, folders []model.Folder) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin folders transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM folders"); err != nil {
		return fmt.Errorf("failed to clear folders: %w", err)
	}
	for i, folder := range folders {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO folders (id, name, position) VALUES (?, ?, ?)",
			folder.ID, folder.Name, i,
		); err != nil {
			return fmt.Errorf("failed to write folder %s: %w", folder.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit folders: %w", err)
	}
	return nil
}

// ReadFolders returns the folder collection in stored order. A failed query
// degrades to an empty collection.
func (s *SQLiteStore) ReadFolders(ctx context.Context) ([]model.Folder, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name FROM folders ORDER BY position")
	if err != nil {
		s.logger.WarnContext(ctx, "failed to query folders", "error", err)
		return []model.Folder{}, nil
	}
	defer func() {
		_ = rows.Close()
	}()

	folders := []model.Folder{}
	for rows.Next() {
		var folder model.Folder
		if err := rows.Scan(&folder.ID, &folder.Name); err != nil {
			s.logger.WarnContext(ctx, "skipping corrupt folder row", "error", err)
			continue
		}
		folders = append(folders, folder)
	}
	if err := rows.Err(); err != nil {
		s.logger.WarnContext(ctx, "folder row iteration stopped early", "error", err)
	}
	return folders, nil
}

// DeleteFolder removes the folder row. Deleting an absent row succeeds.
func (s *SQLiteStore) DeleteFolder(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM folders WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete folder %s: %w", id, err)
	}
	return nil
}

// scanNote scans one notes row and parses its RFC 3339 timestamps.
func scanNote(scan func(dest ...any) error) (model.Note, error) {
	var note model.Note
	var createdAt, updatedAt string

	if err := scan(&note.ID, &note.Title, &note.Content, &createdAt, &updatedAt, &note.FolderID); err != nil {
		return model.Note{}, err
	}

	var err error
	note.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}
	note.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to parse updated_at timestamp: %w", err)
	}
	return note, nil
}
