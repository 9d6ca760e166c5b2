package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/expravatar/pkg/domain"
	"github.com/umputun/expravatar/pkg/expression"
)

// CatalogRepository persists the ordered expression catalog
type CatalogRepository struct {
	db *sqlx.DB
}

// categorySQL represents a catalog row for SQL operations
type categorySQL struct {
	Name     string      `db:"name"`
	Position int         `db:"position"`
	Enabled  bool        `db:"enabled"`
	Keywords keywordsSQL `db:"keywords"`
}

// keywordsSQL is a JSON array of keyword strings for SQL operations
type keywordsSQL []string

// Value implements driver.Valuer for database storage
func (k keywordsSQL) Value() (driver.Value, error) {
	if k == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(k))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (k *keywordsSQL) Scan(value interface{}) error {
	if value == nil {
		*k = keywordsSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		*k = keywordsSQL{}
		return nil
	}

	return json.Unmarshal(data, (*[]string)(k))
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// LoadCatalog returns the stored catalog in precedence order. It returns nil if no catalog
// was ever saved and an empty catalog if the saved one had no categories.
func (r *CatalogRepository) LoadCatalog(ctx context.Context) (*expression.Catalog, error) {
	var marker string
	err := r.db.GetContext(ctx, &marker, "SELECT value FROM settings WHERE key = ?", domain.SettingCatalogSaved)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("check catalog marker: %w", err)
	}

	var rows []categorySQL
	err = r.db.SelectContext(ctx, &rows, "SELECT name, position, enabled, keywords FROM categories ORDER BY position ASC")
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	catalog := &expression.Catalog{Categories: make([]expression.Category, len(rows))}
	for i, row := range rows {
		catalog.Categories[i] = expression.Category{
			Name:     row.Name,
			Enabled:  row.Enabled,
			Keywords: []string(row.Keywords),
		}
	}
	return catalog, nil
}

// SaveCatalog replaces the stored catalog in a single transaction
func (r *CatalogRepository) SaveCatalog(ctx context.Context, catalog *expression.Catalog) error {
	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}

	return lockRetrier().Do(ctx, func() error {
		err := r.saveCatalogTx(ctx, catalog)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("save catalog: %w", err)}
		}
		return nil
	}, errCritical)
}

func (r *CatalogRepository) saveCatalogTx(ctx context.Context, catalog *expression.Catalog) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, "DELETE FROM categories"); err != nil {
		return fmt.Errorf("clear categories: %w", err)
	}

	now := time.Now().UTC()
	query := `INSERT INTO categories (name, position, enabled, keywords, updated_at) VALUES (?, ?, ?, ?, ?)`
	for i, cat := range catalog.Categories {
		name := expression.NormalizeName(cat.Name)
		if _, err := tx.ExecContext(ctx, query, name, i, cat.Enabled, keywordsSQL(cat.Keywords), now); err != nil {
			return fmt.Errorf("insert category %s: %w", name, err)
		}
	}

	// marker tells an empty saved catalog from one never saved
	markerQuery := `
		INSERT INTO settings (key, value, updated_at) VALUES (?, '1', ?)
		ON CONFLICT(key) DO UPDATE SET updated_at = excluded.updated_at
	`
	if _, err := tx.ExecContext(ctx, markerQuery, domain.SettingCatalogSaved, now); err != nil {
		return fmt.Errorf("mark catalog saved: %w", err)
	}

	return tx.Commit()
}
