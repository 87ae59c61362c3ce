// Package store persists classified transactions in SQLite and exposes the
// read and aggregate queries the HTTP API serves.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/Tresor26/MOMO-Dashboard/internal/fileutils"
	"github.com/Tresor26/MOMO-Dashboard/internal/models"
)

// Store wraps the SQLite database holding classified transactions.
type Store struct {
	db     *sql.DB
	dbPath string
}

// New opens (creating if necessary) the SQLite database at dbPath and
// ensures the schema exists.
func New(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath must not be empty")
	}

	if err := fileutils.EnsureParentDirectory(dbPath); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite does not benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.createSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS sms_transactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			category TEXT NOT NULL,
			amount REAL NOT NULL,
			sender TEXT,
			receiver TEXT,
			date TEXT NOT NULL,
			description TEXT,
			raw_body TEXT,
			balance REAL,
			fee REAL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sms_transactions_category ON sms_transactions(category)`,
		`CREATE INDEX IF NOT EXISTS idx_sms_transactions_date ON sms_transactions(date)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// ReplaceAll removes every stored transaction. Each full ingestion run
// starts from a clean table.
func (s *Store) ReplaceAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sms_transactions`); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	return nil
}

// SaveTransaction persists one classified record with its formatted date.
func (s *Store) SaveTransaction(ctx context.Context, record models.ClassifiedRecord, date string) error {
	if !record.Category.IsValid() {
		return fmt.Errorf("invalid category: %q", record.Category)
	}
	if date == "" {
		return fmt.Errorf("date must not be empty")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sms_transactions
		(category, amount, sender, receiver, date, description, raw_body, balance, fee)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(record.Category),
		record.Amount.InexactFloat64(),
		nullString(record.Sender),
		nullString(record.Receiver),
		date,
		record.Description,
		record.RawBody,
		nullDecimal(record.Balance),
		nullDecimal(record.Fee),
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

// CountTransactions returns the number of stored transactions.
func (s *Store) CountTransactions(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sms_transactions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}
