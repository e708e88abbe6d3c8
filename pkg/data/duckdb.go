package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb/v2"
)

const schema = `CREATE TABLE IF NOT EXISTS responses (
	key        VARCHAR PRIMARY KEY,
	body       VARCHAR NOT NULL,
	fetched_at TIMESTAMP NOT NULL
)`

// InitDuckDB opens a DuckDB database and creates the response table.
// An empty path keeps the database in memory.
func InitDuckDB(path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create responses table: %w", err)
	}
	return db, nil
}

// ResponseCache stores raw query responses for the lifetime of the process.
type ResponseCache struct {
	db  *sql.DB
	now func() time.Time
}

func NewResponseCache() (*ResponseCache, error) {
	db, err := InitDuckDB("")
	if err != nil {
		return nil, err
	}
	return &ResponseCache{db: db, now: time.Now}, nil
}

func (c *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var body string
	err := c.db.QueryRowContext(ctx, `SELECT body FROM responses WHERE key = ?`, key).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read cached response %s: %w", key, err)
	}
	return []byte(body), true, nil
}

func (c *ResponseCache) Put(ctx context.Context, key string, body []byte) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO responses (key, body, fetched_at) VALUES (?, ?, ?)`,
		key, string(body), c.now())
	if err != nil {
		return fmt.Errorf("store response %s: %w", key, err)
	}
	return nil
}

func (c *ResponseCache) Len(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM responses`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (c *ResponseCache) Clear(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM responses`)
	return err
}

func (c *ResponseCache) Close() error {
	return c.db.Close()
}
