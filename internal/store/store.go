// Package store persists completed analyses keyed by the SHA-256 of
// the uploaded file, so re-uploads of the same bytes skip extraction,
// scoring and the narrative call.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/avsouza/leaseguard/internal/engine"
)

const schema = `
CREATE TABLE IF NOT EXISTS analises_cache (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hash_arquivo TEXT NOT NULL UNIQUE,
	nome_arquivo TEXT NOT NULL,
	resumo_texto TEXT,
	resultado_regras TEXT,
	analise_ia TEXT,
	data_analise DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_analises_cache_hash ON analises_cache(hash_arquivo);
`

// Entry is one cached analysis.
type Entry struct {
	ID          int64         `json:"id"`
	FileHash    string        `json:"hash_arquivo"`
	Filename    string        `json:"nome_arquivo"`
	TextPreview string        `json:"resumo_texto"`
	RuleReport  engine.Report `json:"resultado_regras"`
	Narrative   string        `json:"analise_ia"`
	CreatedAt   time.Time     `json:"data_analise"`
}

type Cache struct {
	db *sql.DB
}

// Open creates or opens the cache database at path, creating parent
// directories as needed. The special path ":memory:" opens an
// in-memory database.
func Open(path string) (*Cache, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the newest cached analysis for the given file hash, or
// nil when the hash has never been analyzed.
func (c *Cache) Get(ctx context.Context, fileHash string) (*Entry, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT id, hash_arquivo, nome_arquivo, resumo_texto, resultado_regras, analise_ia, data_analise
		FROM analises_cache
		WHERE hash_arquivo = ?
		ORDER BY data_analise DESC
		LIMIT 1`, fileHash)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Put stores an analysis, replacing any previous entry for the same
// file hash.
func (c *Cache) Put(ctx context.Context, e Entry) error {
	report, err := json.Marshal(e.RuleReport)
	if err != nil {
		return err
	}
	_, err = c.db.ExecContext(ctx, `
		INSERT INTO analises_cache (hash_arquivo, nome_arquivo, resumo_texto, resultado_regras, analise_ia)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(hash_arquivo) DO UPDATE SET
			nome_arquivo = excluded.nome_arquivo,
			resumo_texto = excluded.resumo_texto,
			resultado_regras = excluded.resultado_regras,
			analise_ia = excluded.analise_ia,
			data_analise = CURRENT_TIMESTAMP`,
		e.FileHash, e.Filename, e.TextPreview, string(report), e.Narrative)
	return err
}

// Recent lists cached analyses from newest to oldest.
func (c *Cache) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, hash_arquivo, nome_arquivo, resumo_texto, resultado_regras, analise_ia, data_analise
		FROM analises_cache
		ORDER BY data_analise DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]Entry, 0, limit)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*Entry, error) {
	var (
		e       Entry
		preview sql.NullString
		report  sql.NullString
		ia      sql.NullString
	)
	if err := s.Scan(&e.ID, &e.FileHash, &e.Filename, &preview, &report, &ia, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.TextPreview = preview.String
	e.Narrative = ia.String
	if report.Valid && report.String != "" {
		if err := json.Unmarshal([]byte(report.String), &e.RuleReport); err != nil {
			return nil, err
		}
	}
	return &e, nil
}
