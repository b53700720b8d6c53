package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"zenpod/internal/modules/catalog/domain"
	catalogout "zenpod/internal/modules/catalog/port/out"
	"zenpod/internal/platform/clock"
	apperrors "zenpod/internal/platform/errors"

	_ "modernc.org/sqlite"
)

type SQLiteCache struct {
	db  *sql.DB
	clk clock.Clock
}

func NewSQLiteCache(dbPath string, clk clock.Clock) (catalogout.Cache, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	cache := &SQLiteCache{db: db, clk: clk}
	if err := cache.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return cache, nil
}

func (c *SQLiteCache) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS scriptures (
  id INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  category TEXT NOT NULL,
  description TEXT,
  total_chapters INTEGER NOT NULL,
  detail_json TEXT,
  cached_at TEXT NOT NULL
);
`
	if _, err := c.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create scriptures table: %w", err)
	}
	return nil
}

func (c *SQLiteCache) ReplaceAll(ctx context.Context, summaries []domain.Summary) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cache refresh: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := c.clk.Now().Format(time.RFC3339)
	const stmt = `
INSERT INTO scriptures (id, title, category, description, total_chapters, cached_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  title=excluded.title,
  category=excluded.category,
  description=excluded.description,
  total_chapters=excluded.total_chapters,
  cached_at=excluded.cached_at;
`
	for _, s := range summaries {
		if _, err := tx.ExecContext(ctx, stmt, s.ID, s.Title, s.Category, s.Description, s.TotalChapters, now); err != nil {
			return fmt.Errorf("upsert scripture %d: %w", s.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cache refresh: %w", err)
	}
	return nil
}

func (c *SQLiteCache) List(ctx context.Context) ([]domain.Summary, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, title, category, description, total_chapters FROM scriptures ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list cached scriptures: %w", err)
	}
	defer rows.Close()

	var summaries []domain.Summary
	for rows.Next() {
		var s domain.Summary
		var description sql.NullString
		if err := rows.Scan(&s.ID, &s.Title, &s.Category, &description, &s.TotalChapters); err != nil {
			return nil, fmt.Errorf("scan cached scripture: %w", err)
		}
		s.Description = description.String
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (c *SQLiteCache) PutDetail(ctx context.Context, scripture domain.Scripture) error {
	payload, err := json.Marshal(scripture)
	if err != nil {
		return fmt.Errorf("encode scripture detail: %w", err)
	}
	now := c.clk.Now().Format(time.RFC3339)
	const stmt = `
INSERT INTO scriptures (id, title, category, description, total_chapters, detail_json, cached_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  title=excluded.title,
  category=excluded.category,
  description=excluded.description,
  total_chapters=excluded.total_chapters,
  detail_json=excluded.detail_json,
  cached_at=excluded.cached_at;
`
	_, err = c.db.ExecContext(ctx, stmt,
		scripture.ID, scripture.Title, scripture.Category, scripture.Description,
		len(scripture.Chapters), string(payload), now)
	if err != nil {
		return fmt.Errorf("upsert scripture detail %d: %w", scripture.ID, err)
	}
	return nil
}

func (c *SQLiteCache) GetDetail(ctx context.Context, id int) (domain.Scripture, error) {
	var payload sql.NullString
	err := c.db.QueryRowContext(ctx,
		`SELECT detail_json FROM scriptures WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !payload.Valid) {
		return domain.Scripture{}, apperrors.ErrNotFound
	}
	if err != nil {
		return domain.Scripture{}, fmt.Errorf("read cached scripture %d: %w", id, err)
	}
	var scripture domain.Scripture
	if err := json.Unmarshal([]byte(payload.String), &scripture); err != nil {
		return domain.Scripture{}, fmt.Errorf("decode cached scripture %d: %w", id, err)
	}
	return scripture, nil
}

// Close releases the underlying database handle.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
