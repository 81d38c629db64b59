package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/core"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// SQLiteStore is a SQLite implementation of the ports.LeadRepository
// interface, suited to single-node deployments.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteStore creates a new SQLite lead store
func NewSQLiteStore(dbPath string, logger *zap.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Create tables if they don't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS organizations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			website_url TEXT NOT NULL UNIQUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create organizations table: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS extracted_emails (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			org_id INTEGER NOT NULL REFERENCES organizations(id),
			email TEXT NOT NULL,
			score INTEGER NOT NULL,
			confidence TEXT NOT NULL,
			source_page TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(org_id, email)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create extracted_emails table: %w", err)
	}

	return &SQLiteStore{db: db, logger: logger}, nil
}

// UpsertOrganization stores the organization if new and returns its id
func (s *SQLiteStore) UpsertOrganization(ctx context.Context, websiteURL string) (int64, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO organizations (website_url) VALUES (?)
	`, websiteURL)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert organization: %w", err)
	}

	var id int64
	err = s.db.QueryRowContext(ctx, `
		SELECT id FROM organizations WHERE website_url = ?
	`, websiteURL).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to read organization id: %w", err)
	}
	return id, nil
}

// SaveEmails stores the extracted emails for an organization, ignoring
// duplicates so re-delivery of the same unit of work is idempotent
func (s *SQLiteStore) SaveEmails(ctx context.Context, orgID int64, sourcePage string, emails []core.ScoredEmail) error {
	if len(emails) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO extracted_emails (org_id, email, score, confidence, source_page)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, email := range emails {
		if _, err := stmt.ExecContext(ctx, orgID, email.Normalized, email.Score, string(email.Confidence), sourcePage); err != nil {
			return fmt.Errorf("failed to insert email %s: %w", email.Normalized, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	s.logger.Debug("Saved extracted emails",
		zap.Int64("org_id", orgID),
		zap.Int("count", len(emails)))
	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
