// Package sqlite is the durable Store backend. The whole collection lives
// as one JSON payload in a single row of a key-value table, matching the
// slot contract exactly: reads and writes always move the full blob.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/snehilworks/finance-expense/internal/core"
	"github.com/snehilworks/finance-expense/internal/store"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) LoadAll(ctx context.Context) ([]core.Expense, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM slots WHERE key = ?`, store.SlotKey,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot: %w", err)
	}
	return store.Decode(payload), nil
}

func (s *Store) ReplaceAll(ctx context.Context, items []core.Expense) error {
	payload, err := store.Encode(items)
	if err != nil {
		return fmt.Errorf("encode expenses: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO slots (key, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		   payload = excluded.payload,
		   updated_at = excluded.updated_at`,
		store.SlotKey, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("write slot: %w", err)
	}

	slog.DebugContext(ctx, "Expense collection replaced",
		"slot", store.SlotKey,
		"records", len(items),
		"payload_bytes", len(payload))
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM slots WHERE key = ?`, store.SlotKey); err != nil {
		return fmt.Errorf("clear slot: %w", err)
	}
	slog.InfoContext(ctx, "Expense collection cleared", "slot", store.SlotKey)
	return nil
}
