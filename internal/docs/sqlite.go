package docs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf16"

	gdocs "google.golang.org/api/docs/v1"
	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// SQLiteService is a local Service that keeps each document as plain text
// in SQLite. It reproduces the parts of the Google Docs model the adapter
// relies on: 1-based UTF-16 indices for insertText, and one paragraph per
// line with a single text run on read.
type SQLiteService struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path, enables WAL mode and
// runs migrations.
func OpenSQLite(path string) (*SQLiteService, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("docs: create data dir: %w", err)
	}

	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("docs: open database: %w", err)
	}
	// One connection serialises writers; insert ordering is decided here.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("docs: pragma %q: %w", p, err)
		}
	}

	s := &SQLiteService{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("docs: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteService) Close() error {
	return s.db.Close()
}

func (s *SQLiteService) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			id         TEXT    PRIMARY KEY,
			content    TEXT    NOT NULL DEFAULT '',
			revision   INTEGER NOT NULL DEFAULT 0,
			updated_at TEXT    NOT NULL DEFAULT (datetime('now'))
		);
	`)
	return err
}

// Get returns the document as paragraphs. A document that was never
// written reads as an empty body.
func (s *SQLiteService) Get(ctx context.Context, documentID string) (*gdocs.Document, error) {
	var content string
	var revision int64
	err := s.db.QueryRowContext(ctx,
		"SELECT content, revision FROM documents WHERE id = ?", documentID,
	).Scan(&content, &revision)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("docs: get %q: %w", documentID, err)
	}

	return &gdocs.Document{
		DocumentId: documentID,
		RevisionId: strconv.FormatInt(revision, 10),
		Body:       &gdocs.Body{Content: paragraphs(content)},
	}, nil
}

// BatchUpdate applies every request in one transaction. Only insertText
// is supported.
func (s *SQLiteService) BatchUpdate(ctx context.Context, documentID string, req *gdocs.BatchUpdateDocumentRequest) error {
	if req == nil || len(req.Requests) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("docs: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var content string
	err = tx.QueryRowContext(ctx, "SELECT content FROM documents WHERE id = ?", documentID).Scan(&content)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("docs: load %q: %w", documentID, err)
	}

	for i, r := range req.Requests {
		if r == nil || r.InsertText == nil {
			return fmt.Errorf("docs: request %d: only insertText is supported", i)
		}
		content, err = insertText(content, r.InsertText)
		if err != nil {
			return fmt.Errorf("docs: request %d: %w", i, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents (id, content, revision, updated_at)
		VALUES (?, ?, 1, datetime('now'))
		ON CONFLICT(id) DO UPDATE SET
			content    = excluded.content,
			revision   = documents.revision + 1,
			updated_at = excluded.updated_at`,
		documentID, content,
	)
	if err != nil {
		return fmt.Errorf("docs: save %q: %w", documentID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("docs: commit: %w", err)
	}
	return nil
}

// insertText places in.Text before the 1-based UTF-16 index in.Location.
func insertText(content string, in *gdocs.InsertTextRequest) (string, error) {
	if in.Location == nil {
		return "", errors.New("insertText requires a location")
	}

	units := utf16.Encode([]rune(content))
	idx := in.Location.Index
	if idx < 1 || idx > int64(len(units))+1 {
		return "", fmt.Errorf("index %d out of range [1, %d]", idx, len(units)+1)
	}

	pos := idx - 1
	out := make([]uint16, 0, len(units)+len(in.Text))
	out = append(out, units[:pos]...)
	out = append(out, utf16.Encode([]rune(in.Text))...)
	out = append(out, units[pos:]...)
	return string(utf16.Decode(out)), nil
}

// paragraphs splits content into one paragraph per line, each holding a
// single text run that keeps its trailing newline.
func paragraphs(content string) []*gdocs.StructuralElement {
	var elems []*gdocs.StructuralElement
	start := int64(1)
	for _, line := range strings.SplitAfter(content, "\n") {
		if line == "" {
			continue
		}
		end := start + int64(len(utf16.Encode([]rune(line))))
		elems = append(elems, &gdocs.StructuralElement{
			StartIndex: start,
			EndIndex:   end,
			Paragraph: &gdocs.Paragraph{
				Elements: []*gdocs.ParagraphElement{{
					StartIndex: start,
					EndIndex:   end,
					TextRun:    &gdocs.TextRun{Content: line},
				}},
			},
		})
		start = end
	}
	return elems
}
