package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/3-lines-studio/pagesmith/internal/core"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS site (
		body TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS documents (
		id          TEXT PRIMARY KEY,
		entity_type TEXT NOT NULL DEFAULT '',
		locale      TEXT NOT NULL DEFAULT '',
		body        TEXT NOT NULL
	)`,
}

// SQLiteSource reads documents from a SQLite database. The documents table
// carries entity type and locale as columns; they are folded into each
// document's meta object when the body does not set them itself.
type SQLiteSource struct {
	db *sql.DB
}

// OpenSQLite opens the database at path with the driver selected at build
// time and makes sure the schema exists.
func OpenSQLite(ctx context.Context, path string) (*SQLiteSource, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}

	return &SQLiteSource{db: db}, nil
}

func (s *SQLiteSource) Site(ctx context.Context) ([]byte, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM site LIMIT 1`).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.New("read site record: site table is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read site record: %w", err)
	}
	if !gjson.Valid(body) {
		return nil, errors.New("read site record: invalid JSON")
	}
	return []byte(body), nil
}

func (s *SQLiteSource) Documents(ctx context.Context) ([][]byte, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, entity_type, locale, body FROM documents ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs [][]byte
	for rows.Next() {
		var id, entityType, locale, body string
		if err := rows.Scan(&id, &entityType, &locale, &body); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		doc, err := withColumns(id, entityType, locale, body)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

func (s *SQLiteSource) Document(ctx context.Context, id string) ([]byte, error) {
	var entityType, locale, body string
	err := s.db.QueryRowContext(ctx,
		`SELECT entity_type, locale, body FROM documents WHERE id = ?`, id,
	).Scan(&entityType, &locale, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("document %q: %w", id, core.ErrDocumentNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read document %q: %w", id, err)
	}
	return withColumns(id, entityType, locale, body)
}

// PutSite replaces the site record.
func (s *SQLiteSource) PutSite(ctx context.Context, body []byte) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM site`); err != nil {
		return fmt.Errorf("clear site: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO site (body) VALUES (?)`, string(body)); err != nil {
		return fmt.Errorf("insert site: %w", err)
	}
	return tx.Commit()
}

// PutDocument inserts or replaces a document keyed by its id.
func (s *SQLiteSource) PutDocument(ctx context.Context, doc []byte) error {
	if !gjson.ValidBytes(doc) {
		return errors.New("put document: invalid JSON")
	}
	id := gjson.GetBytes(doc, "id").String()
	if id == "" {
		return errors.New("put document: missing id")
	}
	meta := gjson.GetBytes(doc, "meta")

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (id, entity_type, locale, body) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET entity_type = excluded.entity_type, locale = excluded.locale, body = excluded.body`,
		id, meta.Get("entityType").String(), meta.Get("locale").String(), string(doc),
	)
	if err != nil {
		return fmt.Errorf("put document %q: %w", id, err)
	}
	return nil
}

func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

func withColumns(id, entityType, locale, body string) ([]byte, error) {
	if !gjson.Valid(body) {
		return nil, fmt.Errorf("document %q: invalid JSON", id)
	}

	doc := []byte(body)
	var err error
	if !gjson.GetBytes(doc, "id").Exists() {
		if doc, err = sjson.SetBytes(doc, "id", id); err != nil {
			return nil, fmt.Errorf("document %q: %w", id, err)
		}
	}
	if entityType != "" && !gjson.GetBytes(doc, "meta.entityType").Exists() {
		if doc, err = sjson.SetBytes(doc, "meta.entityType", entityType); err != nil {
			return nil, fmt.Errorf("document %q: %w", id, err)
		}
	}
	if locale != "" && !gjson.GetBytes(doc, "meta.locale").Exists() {
		if doc, err = sjson.SetBytes(doc, "meta.locale", locale); err != nil {
			return nil, fmt.Errorf("document %q: %w", id, err)
		}
	}
	return doc, nil
}
