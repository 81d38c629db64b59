package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/core"
	"go.uber.org/zap"
)

// MySQLStore is a MySQL implementation of the ports.LeadRepository
// interface for shared deployments.
type MySQLStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMySQLStore creates a new MySQL lead store
func NewMySQLStore(dsn string, logger *zap.Logger) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	// Create tables if they don't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS organizations (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			website_url VARCHAR(255) NOT NULL UNIQUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create organizations table: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS extracted_emails (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			org_id BIGINT NOT NULL,
			email VARCHAR(255) NOT NULL,
			score INT NOT NULL,
			confidence VARCHAR(16) NOT NULL,
			source_page VARCHAR(255),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_org_email (org_id, email),
			FOREIGN KEY (org_id) REFERENCES organizations(id)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create extracted_emails table: %w", err)
	}

	return &MySQLStore{db: db, logger: logger}, nil
}

// UpsertOrganization stores the organization if new and returns its id
func (s *MySQLStore) UpsertOrganization(ctx context.Context, websiteURL string) (int64, error) {
	// LAST_INSERT_ID(id) makes the duplicate path report the existing row
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO organizations (website_url) VALUES (?)
		ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)
	`, websiteURL)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert organization: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read organization id: %w", err)
	}
	return id, nil
}

// SaveEmails stores the extracted emails for an organization, ignoring
// duplicates so re-delivery of the same unit of work is idempotent
func (s *MySQLStore) SaveEmails(ctx context.Context, orgID int64, sourcePage string, emails []core.ScoredEmail) error {
	if len(emails) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT IGNORE INTO extracted_emails (org_id, email, score, confidence, source_page)
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
func (s *MySQLStore) Close() error {
	return s.db.Close()
}
