// Package store persists offers in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/keliauta/tripoffers/internal/offers"
)

// Offers is the SQLite-backed offer store. Writes go through a Run so each
// aggregation commits as one unit; reads run directly against committed
// data.
type Offers struct {
	db *sql.DB
}

// Open opens (and if needed creates) the offer database at the given DSN.
func Open(dsn string) (*Offers, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open offer database: %w", err)
	}

	s := &Offers{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize offer schema: %w", err)
	}
	return s, nil
}

func (s *Offers) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS offers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		country TEXT,
		country_code TEXT,
		name TEXT,
		price TEXT,
		description TEXT,
		agency TEXT,
		url TEXT UNIQUE
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Offers) Close() error {
	return s.db.Close()
}

// Begin opens a write run backed by one transaction. Lookups through the
// run observe its own uncommitted inserts, so a URL inserted earlier in the
// same run already counts as a duplicate.
func (s *Offers) Begin(ctx context.Context) (*Run, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin offer transaction: %w", err)
	}
	return &Run{tx: tx}, nil
}

// Run is one write run; it implements the offers.Store contract.
type Run struct {
	tx *sql.Tx
}

const offerColumns = "id, country, country_code, name, price, description, agency, url"

// FindByURL returns the stored offer with the given source URL, or nil when
// none exists.
func (r *Run) FindByURL(ctx context.Context, url string) (*offers.StoredOffer, error) {
	row := r.tx.QueryRowContext(ctx,
		"SELECT "+offerColumns+" FROM offers WHERE url = ?", url)

	o, err := scanOffer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query offer by url: %w", err)
	}
	return o, nil
}

// Insert adds a new offer row and fills in its store-assigned id.
func (r *Run) Insert(ctx context.Context, o *offers.StoredOffer) error {
	res, err := r.tx.ExecContext(ctx, `
		INSERT INTO offers (country, country_code, name, price, description, agency, url)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		o.Country, o.CountryCode, o.Name, o.Price, o.Description, string(o.Agency), o.URL,
	)
	if err != nil {
		return fmt.Errorf("insert offer: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		o.ID = id
	}
	return nil
}

// Commit makes every insert of this run visible at once.
func (r *Run) Commit(ctx context.Context) error {
	if err := r.tx.Commit(); err != nil {
		return fmt.Errorf("commit offer transaction: %w", err)
	}
	return nil
}

// Rollback releases the run. After a successful Commit it is a no-op, so
// callers can defer it unconditionally.
func (r *Run) Rollback() error {
	err := r.tx.Rollback()
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rollback offer transaction: %w", err)
	}
	return nil
}

// ListByCountryCode returns all committed offers stored under the given
// country code, oldest first.
func (s *Offers) ListByCountryCode(ctx context.Context, code string) ([]offers.StoredOffer, error) {
	return s.list(ctx, "SELECT "+offerColumns+" FROM offers WHERE country_code = ? ORDER BY id", code)
}

// ListAll returns every committed offer, oldest first.
func (s *Offers) ListAll(ctx context.Context) ([]offers.StoredOffer, error) {
	return s.list(ctx, "SELECT "+offerColumns+" FROM offers ORDER BY id")
}

func (s *Offers) list(ctx context.Context, query string, args ...any) ([]offers.StoredOffer, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query offers: %w", err)
	}
	defer rows.Close()

	var out []offers.StoredOffer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		out = append(out, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate offers: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

// scanOffer reads one offer row. All text columns scan through NullString
// because rows predating the current writer may carry NULLs.
func scanOffer(row scanner) (*offers.StoredOffer, error) {
	var o offers.StoredOffer
	var country, code, name, price, description, agency, url sql.NullString

	if err := row.Scan(&o.ID, &country, &code, &name, &price, &description, &agency, &url); err != nil {
		return nil, err
	}

	o.Country = country.String
	o.CountryCode = code.String
	o.Name = name.String
	o.Price = price.String
	o.Description = description.String
	o.Agency = offers.Agency(agency.String)
	o.URL = url.String
	return &o, nil
}
