// Package sqlite writes a validated corpus into a relational snapshot
// database. The snapshot is a one-shot export for downstream consumers
// (reporting, offline apps); the live corpus is always served from memory.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/medbank-labs/medbank-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/medbank-labs/medbank-cli/internal/core/domain"
	"github.com/medbank-labs/medbank-cli/internal/core/ports/driving"
	"github.com/medbank-labs/medbank-cli/internal/logger"
)

// Snapshot is a SQLite export target.
type Snapshot struct {
	db   *sql.DB
	path string
}

// NewSnapshot opens (or creates) a snapshot database at path and brings
// its schema up to date.
func NewSnapshot(path string) (*Snapshot, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Snapshot{db: db, path: path}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Snapshot) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Snapshot) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Snapshot) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Write exports every record in the library inside one transaction.
// Existing snapshot content is replaced. Returns the export run id.
func (s *Snapshot) Write(ctx context.Context, library driving.Library) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning export: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	for _, table := range []string{"records", "exports"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return "", fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	count := 0
	for record := range library.All() {
		if err := s.writeRecord(ctx, tx, record); err != nil {
			return "", fmt.Errorf("exporting %s: %w", record.ID, err)
		}
		count++
	}

	exportID := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		"INSERT INTO exports (id, exported_at, record_count) VALUES (?, ?, ?)",
		exportID, time.Now().UTC(), count)
	if err != nil {
		return "", fmt.Errorf("recording export: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing export: %w", err)
	}

	logger.Info("Exported %d records to %s", count, s.path)
	return exportID, nil
}

//nolint:gocyclo // flat sequence of inserts per child table
func (s *Snapshot) writeRecord(ctx context.Context, tx *sql.Tx, record *domain.EducationalContent) error {
	altNames, err := marshalJSON(record.AlternateNames)
	if err != nil {
		return err
	}
	contributors, err := marshalJSON(record.Contributors)
	if err != nil {
		return err
	}
	examRelevance, err := marshalJSON(record.Tags.ExamRelevance)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO records (id, type, name, name_es, alternate_names, status,
			version, clinical_relevance, exam_relevance, contributors, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.Type.String(), record.Name, nullString(record.NameES),
		altNames, record.Status.String(), record.Version,
		record.Tags.ClinicalRelevance.String(), examRelevance, contributors,
		nullTime(record.CreatedAt), nullTime(record.UpdatedAt))
	if err != nil {
		return fmt.Errorf("inserting record: %w", err)
	}

	for _, level := range record.LevelNumbers() {
		lc := record.Levels[level]
		keyTerms, err := marshalJSON(lc.KeyTerms)
		if err != nil {
			return err
		}
		analogies, err := marshalJSON(lc.Analogies)
		if err != nil {
			return err
		}
		examples, err := marshalJSON(lc.Examples)
		if err != nil {
			return err
		}
		counseling, err := marshalJSON(lc.PatientCounselingPoints)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO levels (record_id, level, summary_es, summary_en,
				explanation, clinical_notes, key_terms, analogies, examples, counseling_points)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, record.ID, lc.Level, lc.Summary.ES, lc.Summary.EN, lc.Explanation,
			nullString(lc.ClinicalNotes), keyTerms, analogies, examples, counseling)
		if err != nil {
			return fmt.Errorf("inserting level %d: %w", level, err)
		}
	}

	for _, cit := range record.Citations {
		authors, err := marshalJSON(cit.Authors)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO citations (record_id, citation_id, type, title, authors,
				source, url, chapter, license)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, record.ID, cit.ID, cit.Type.String(), cit.Title, authors,
			nullString(cit.Source), nullString(cit.URL), nullString(cit.Chapter), nullString(cit.License))
		if err != nil {
			return fmt.Errorf("inserting citation %s: %w", cit.ID, err)
		}
	}

	for i, ref := range record.CrossReferences {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO cross_references (record_id, position, target_id, target_type, relationship, label)
			VALUES (?, ?, ?, ?, ?, ?)
		`, record.ID, i, ref.TargetID, ref.TargetType.String(), ref.Relationship.String(), nullString(ref.Label))
		if err != nil {
			return fmt.Errorf("inserting cross-reference %d: %w", i, err)
		}
	}

	tagRows := map[domain.TagDimension][]string{
		domain.TagSystem:  record.Tags.Systems,
		domain.TagTopic:   record.Tags.Topics,
		domain.TagKeyword: record.Tags.Keywords,
	}
	for dim, values := range tagRows {
		for _, value := range values {
			_, err = tx.ExecContext(ctx,
				"INSERT INTO tags (record_id, dimension, value) VALUES (?, ?, ?)",
				record.ID, dim.String(), value)
			if err != nil {
				return fmt.Errorf("inserting tag %s=%s: %w", dim, value, err)
			}
		}
	}

	for _, m := range record.Media {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO media (record_id, media_id, type, filename, title, description)
			VALUES (?, ?, ?, ?, ?, ?)
		`, record.ID, m.ID, nullString(m.Type), m.Filename, nullString(m.Title), nullString(m.Description))
		if err != nil {
			return fmt.Errorf("inserting media %s: %w", m.ID, err)
		}
	}

	return nil
}

// RecordCount returns the number of exported records.
func (s *Snapshot) RecordCount(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records").Scan(&n)
	return n, err
}

// marshalJSON encodes nullable JSON columns; empty values become NULL.
func marshalJSON(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshalling: %w", err)
	}
	if string(data) == "null" || string(data) == "[]" {
		return nil, nil
	}
	return string(data), nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC()
}
