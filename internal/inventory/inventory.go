// Package inventory persists the registered objects of a built site into
// a small SQLite database, the machine-readable counterpart of the
// generated index pages. The inventory is advisory output: it is
// rewritten wholesale on every build.
package inventory

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/steppi/scribe/internal/domain"
)

// Filename is the inventory database's name inside the output directory.
const Filename = "objects.db"

// schema contains the DDL executed on open. Using IF NOT EXISTS makes it
// safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS objects (
    domain    TEXT NOT NULL,
    name      TEXT NOT NULL,
    dispname  TEXT NOT NULL,
    typetag   TEXT NOT NULL,
    document  TEXT NOT NULL,
    anchor    TEXT NOT NULL,
    priority  INTEGER NOT NULL DEFAULT 0,
    position  INTEGER NOT NULL,
    PRIMARY KEY (domain, name)
);

CREATE TABLE IF NOT EXISTS attributes (
    domain    TEXT NOT NULL,
    object    TEXT NOT NULL,
    attribute TEXT NOT NULL,
    position  INTEGER NOT NULL
);
`

// Record is one inventory row joined with its attribute list.
type Record struct {
	Domain     string
	Name       string
	DispName   string
	TypeTag    string
	Document   string
	Anchor     string
	Attributes []string
}

// Store is a handle on an inventory database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the inventory database at path and creates the
// schema tables if they do not exist.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("inventory: open database: %w", err)
	}

	// SQLite supports a single writer; one connection avoids SQLITE_BUSY
	// contention between pooled connections.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("inventory: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Replace rewrites the inventory rows for one domain from its registry,
// in a single transaction: previous rows for the domain are dropped
// first.
func (s *Store) Replace(reg *domain.Registry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("inventory: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec("DELETE FROM objects WHERE domain = ?", reg.Domain()); err != nil {
		return fmt.Errorf("inventory: clear objects: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM attributes WHERE domain = ?", reg.Domain()); err != nil {
		return fmt.Errorf("inventory: clear attributes: %w", err)
	}

	const insertObject = `
		INSERT INTO objects (domain, name, dispname, typetag, document, anchor, priority, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	for i, obj := range reg.Objects() {
		if _, err := tx.Exec(insertObject,
			reg.Domain(), obj.Name, obj.DispName, obj.TypeTag, obj.Document, obj.Anchor, obj.Priority, i); err != nil {
			return fmt.Errorf("inventory: insert object %q: %w", obj.Name, err)
		}
	}

	const insertAttr = `
		INSERT INTO attributes (domain, object, attribute, position)
		VALUES (?, ?, ?, ?)`
	for _, name := range reg.AttributeOwners() {
		for i, attr := range reg.Attributes(name) {
			if _, err := tx.Exec(insertAttr, reg.Domain(), name, attr, i); err != nil {
				return fmt.Errorf("inventory: insert attribute %q of %q: %w", attr, name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("inventory: commit: %w", err)
	}
	return nil
}

// List returns every inventory record ordered by domain then registration
// position, with attribute lists in authoring order.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT domain, name, dispname, typetag, document, anchor
		FROM objects ORDER BY domain, position`)
	if err != nil {
		return nil, fmt.Errorf("inventory: query objects: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Domain, &r.Name, &r.DispName, &r.TypeTag, &r.Document, &r.Anchor); err != nil {
			return nil, fmt.Errorf("inventory: scan object: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("inventory: iterate objects: %w", err)
	}

	for i := range records {
		attrs, err := s.attributes(ctx, records[i].Domain, records[i].Name)
		if err != nil {
			return nil, err
		}
		records[i].Attributes = attrs
	}
	return records, nil
}

func (s *Store) attributes(ctx context.Context, domainName, object string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT attribute FROM attributes
		WHERE domain = ? AND object = ? ORDER BY position`, domainName, object)
	if err != nil {
		return nil, fmt.Errorf("inventory: query attributes: %w", err)
	}
	defer rows.Close()

	var attrs []string
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, fmt.Errorf("inventory: scan attribute: %w", err)
		}
		attrs = append(attrs, a)
	}
	return attrs, rows.Err()
}

// FormatRecord renders one record the way `scribe objects` prints it.
func FormatRecord(r Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s.%s (%s) → %s.html#%s", r.Domain, r.DispName, r.TypeTag, r.Document, r.Anchor)
	if len(r.Attributes) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(r.Attributes, ", "))
	}
	return b.String()
}
