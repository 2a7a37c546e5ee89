// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists per-file stage outcomes in a SQLite database
// so that `docpipe status` can report on a data set across runs.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docpipe/pkg/types"
)

const dbFile = "docpipe.db"

// Store manages the conversion catalog database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the catalog database at dir/docpipe.db,
// creating the schema when missing.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating catalog schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS conversions (
			file TEXT NOT NULL,
			stage TEXT NOT NULL,
			status TEXT NOT NULL,
			detail TEXT,
			updated_at TEXT NOT NULL,
			PRIMARY KEY (file, stage)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_stage ON conversions(stage)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record upserts the outcome of one file in one stage.
func (s *Store) Record(ctx context.Context, stage, file string, status types.StageStatus, detail string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (file, stage, status, detail, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(file, stage) DO UPDATE SET
			status=excluded.status, detail=excluded.detail, updated_at=excluded.updated_at`,
		file, stage, string(status), detail, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording %s/%s: %w", stage, file, err)
	}
	return nil
}

// StageSummary aggregates outcomes for one stage.
type StageSummary struct {
	Stage     string `yaml:"stage"`
	Converted int    `yaml:"converted"`
	Skipped   int    `yaml:"skipped"`
	Failed    int    `yaml:"failed"`
}

// Summary returns per-stage outcome counts, ordered by stage name.
func (s *Store) Summary(ctx context.Context) ([]StageSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT stage, status, COUNT(*) FROM conversions GROUP BY stage, status ORDER BY stage`)
	if err != nil {
		return nil, fmt.Errorf("querying summary: %w", err)
	}
	defer rows.Close()

	var (
		summaries []StageSummary
		current   *StageSummary
	)
	for rows.Next() {
		var stage, status string
		var count int
		if err := rows.Scan(&stage, &status, &count); err != nil {
			return nil, fmt.Errorf("scanning summary row: %w", err)
		}
		if current == nil || current.Stage != stage {
			summaries = append(summaries, StageSummary{Stage: stage})
			current = &summaries[len(summaries)-1]
		}
		switch types.StageStatus(status) {
		case types.StageConverted:
			current.Converted = count
		case types.StageSkipped:
			current.Skipped = count
		case types.StageFailed:
			current.Failed = count
		}
	}
	return summaries, rows.Err()
}

// Entry is one catalog row.
type Entry struct {
	File      string `yaml:"file"`
	Stage     string `yaml:"stage"`
	Status    string `yaml:"status"`
	Detail    string `yaml:"detail,omitempty"`
	UpdatedAt string `yaml:"updated_at"`
}

// Entries returns all catalog rows ordered by file then stage.
func (s *Store) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT file, stage, status, COALESCE(detail, ''), updated_at
		 FROM conversions ORDER BY file, stage`)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.File, &e.Stage, &e.Status, &e.Detail, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ExportYAML writes the full catalog to a YAML file.
func (s *Store) ExportYAML(ctx context.Context, path string) error {
	entries, err := s.Entries(ctx)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(struct {
		Conversions []Entry `yaml:"conversions"`
	}{Conversions: entries})
	if err != nil {
		return fmt.Errorf("marshaling catalog: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
