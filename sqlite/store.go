package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/hupe1980/labelvec/fileio"
)

const schema = `
CREATE TABLE IF NOT EXISTS label_sets (
	name       TEXT PRIMARY KEY,
	id         TEXT NOT NULL,
	count      INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS label_values (
	set_name TEXT NOT NULL REFERENCES label_sets(name) ON DELETE CASCADE,
	idx      INTEGER NOT NULL,
	value    REAL,
	PRIMARY KEY (set_name, idx)
) WITHOUT ROWID;
`

// DB is a label set database.
type DB struct {
	db *sql.DB
}

// Open opens or creates the database at path and applies the schema.
func Open(ctx context.Context, path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, wrapError("open", "", err)
	}
	// One writer at a time; SQLite serialises writes anyway.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, wrapError("open", "", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, wrapError("migrate", "", err)
	}
	return &DB{db: db}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// SetInfo describes a stored label set.
type SetInfo struct {
	Name      string
	ID        uuid.UUID
	Count     int
	UpdatedAt time.Time
}

// List returns all label sets ordered by name.
func (d *DB) List(ctx context.Context) ([]SetInfo, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT name, id, count, updated_at FROM label_sets ORDER BY name`)
	if err != nil {
		return nil, wrapError("list", "", err)
	}
	defer rows.Close()

	var out []SetInfo
	for rows.Next() {
		var (
			info    SetInfo
			id      string
			updated int64
		)
		if err := rows.Scan(&info.Name, &id, &info.Count, &updated); err != nil {
			return nil, wrapError("list", "", err)
		}
		info.ID, _ = uuid.Parse(id)
		info.UpdatedAt = time.Unix(0, updated)
		out = append(out, info)
	}
	return out, wrapError("list", "", rows.Err())
}

// Delete removes a label set. Deleting a missing set is not an error.
func (d *DB) Delete(ctx context.Context, name string) error {
	_, err := d.db.ExecContext(ctx, `DELETE FROM label_sets WHERE name = ?`, name)
	return wrapError("delete", name, err)
}

// Set returns a reader/writer for the named label set.
func (d *DB) Set(name string) *Set {
	return &Set{db: d, name: name}
}

// Set is one named label vector.
type Set struct {
	db   *DB
	name string
}

var (
	_ fileio.Reader = (*Set)(nil)
	_ fileio.Writer = (*Set)(nil)
)

// Name returns the set name.
func (s *Set) Name() string { return s.name }

// Info returns the set metadata.
func (s *Set) Info(ctx context.Context) (SetInfo, error) {
	var (
		info    = SetInfo{Name: s.name}
		id      string
		updated int64
	)
	err := s.db.db.QueryRowContext(ctx,
		`SELECT id, count, updated_at FROM label_sets WHERE name = ?`, s.name,
	).Scan(&id, &info.Count, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return info, wrapError("info", s.name, ErrNotFound)
	}
	if err != nil {
		return info, wrapError("info", s.name, err)
	}
	info.ID, _ = uuid.Parse(id)
	info.UpdatedAt = time.Unix(0, updated)
	return info, nil
}

// ReadVector loads the set in index order.
func (s *Set) ReadVector(ctx context.Context) ([]float64, error) {
	info, err := s.Info(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.db.QueryContext(ctx,
		`SELECT idx, value FROM label_values WHERE set_name = ? ORDER BY idx`, s.name)
	if err != nil {
		return nil, wrapError("read", s.name, err)
	}
	defer rows.Close()

	labels := make([]float64, 0, info.Count)
	for rows.Next() {
		var (
			idx int
			v   sql.NullFloat64
		)
		if err := rows.Scan(&idx, &v); err != nil {
			return nil, wrapError("read", s.name, err)
		}
		if idx != len(labels) {
			return nil, wrapError("read", s.name, fmt.Errorf("missing label at index %d", len(labels)))
		}
		if v.Valid {
			labels = append(labels, v.Float64)
		} else {
			labels = append(labels, math.NaN())
		}
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError("read", s.name, err)
	}
	if len(labels) != info.Count {
		return nil, wrapError("read", s.name, fmt.Errorf("expected %d labels, found %d", info.Count, len(labels)))
	}
	return labels, nil
}

// WriteVector replaces the set in a single transaction.
func (s *Set) WriteVector(ctx context.Context, labels []float64) (err error) {
	tx, err := s.db.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapError("write", s.name, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM label_values WHERE set_name = ?`, s.name); err != nil {
		return wrapError("write", s.name, err)
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO label_sets (name, id, count, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET id = excluded.id, count = excluded.count, updated_at = excluded.updated_at`,
		s.name, uuid.NewString(), len(labels), time.Now().UnixNano(),
	); err != nil {
		return wrapError("write", s.name, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO label_values (set_name, idx, value) VALUES (?, ?, ?)`)
	if err != nil {
		return wrapError("write", s.name, err)
	}
	defer stmt.Close()

	for i, v := range labels {
		var arg any = v
		if math.IsNaN(v) {
			arg = nil
		}
		if _, err = stmt.ExecContext(ctx, s.name, i, arg); err != nil {
			return wrapError("write", s.name, err)
		}
	}
	return wrapError("commit", s.name, tx.Commit())
}
