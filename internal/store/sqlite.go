// Package store persists parsed studies in a local SQLite index.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/idr/studytool/internal/schema"
	"github.com/idr/studytool/internal/study"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// Open opens or creates the study index at the given path, creating parent
// directories as needed.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating index directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS studies (
			accession TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			study_type TEXT,
			organism TEXT,
			publication_titles TEXT,
			source_path TEXT NOT NULL,
			indexed_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS components (
			accession TEXT NOT NULL,
			type TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			imaging_method TEXT,
			annotation_url TEXT,
			PRIMARY KEY (accession, name)
		);

		CREATE INDEX IF NOT EXISTS idx_components_type ON components(type);
	`

	_, err := db.Exec(schema)
	return err
}

// IndexStudy upserts a parsed study and replaces its component rows.
func (d *DB) IndexStudy(p *study.Parsed) error {
	accession := p.Study.Fields["Comment[IDR Study Accession]"]
	if accession == "" {
		return fmt.Errorf("study %s has no accession", p.Path)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO studies (accession, title, study_type, organism, publication_titles, source_path, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(accession) DO UPDATE SET
			title = excluded.title,
			study_type = excluded.study_type,
			organism = excluded.organism,
			publication_titles = excluded.publication_titles,
			source_path = excluded.source_path,
			indexed_at = excluded.indexed_at`,
		accession,
		p.Study.Fields["Study Title"],
		p.Study.Fields["Study Type"],
		p.Study.Fields["Study Organism"],
		p.Study.Fields["Study Publication Title"],
		p.Path,
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("upserting study %s: %w", accession, err)
	}

	if _, err := tx.Exec(`DELETE FROM components WHERE accession = ?`, accession); err != nil {
		return fmt.Errorf("clearing components for %s: %w", accession, err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO components (accession, type, name, description, imaging_method, annotation_url)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing component insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range p.Components {
		t := string(c.Type)
		_, err := stmt.Exec(
			accession,
			t,
			c.Name(),
			c.Fields[t+" Description"],
			c.Fields[t+" Imaging Method"],
			c.Fields["Annotation File"],
		)
		if err != nil {
			return fmt.Errorf("inserting component %s: %w", c.Name(), err)
		}
	}

	return tx.Commit()
}

// StudySummary is one row of the study listing.
type StudySummary struct {
	Accession   string
	Title       string
	Experiments int
	Screens     int
	IndexedAt   time.Time
}

// ListStudies returns all indexed studies ordered by accession.
func (d *DB) ListStudies() ([]StudySummary, error) {
	rows, err := d.db.Query(`
		SELECT s.accession, s.title, s.indexed_at,
			COUNT(CASE WHEN c.type = ? THEN 1 END),
			COUNT(CASE WHEN c.type = ? THEN 1 END)
		FROM studies s
		LEFT JOIN components c ON c.accession = s.accession
		GROUP BY s.accession
		ORDER BY s.accession`,
		string(schema.Experiment), string(schema.Screen))
	if err != nil {
		return nil, fmt.Errorf("querying studies: %w", err)
	}
	defer rows.Close()

	var out []StudySummary
	for rows.Next() {
		var s StudySummary
		var indexedAt int64
		if err := rows.Scan(&s.Accession, &s.Title, &indexedAt, &s.Experiments, &s.Screens); err != nil {
			return nil, fmt.Errorf("scanning study row: %w", err)
		}
		s.IndexedAt = time.Unix(indexedAt, 0)
		out = append(out, s)
	}
	return out, rows.Err()
}

// Components returns the indexed components for one study accession.
func (d *DB) Components(accession string) ([]ComponentRow, error) {
	rows, err := d.db.Query(`
		SELECT type, name, description, imaging_method, annotation_url
		FROM components WHERE accession = ? ORDER BY type, name`, accession)
	if err != nil {
		return nil, fmt.Errorf("querying components: %w", err)
	}
	defer rows.Close()

	var out []ComponentRow
	for rows.Next() {
		var c ComponentRow
		if err := rows.Scan(&c.Type, &c.Name, &c.Description, &c.ImagingMethod, &c.AnnotationURL); err != nil {
			return nil, fmt.Errorf("scanning component row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ComponentRow is one indexed component.
type ComponentRow struct {
	Type          string
	Name          string
	Description   string
	ImagingMethod string
	AnnotationURL string
}
