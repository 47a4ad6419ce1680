// Package bootstrap creates the database schema on startup and seeds the
// admin access code from configuration. All statements are idempotent, so
// running the service against an existing database is safe.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS enrollments (
		id            SERIAL PRIMARY KEY,
		first_name    VARCHAR(100) NOT NULL,
		last_name     VARCHAR(100) NOT NULL,
		email         VARCHAR(255) NOT NULL,
		academic_year VARCHAR(50)  NOT NULL,
		enroll_date   DATE         NOT NULL,
		start_time    TIME         NOT NULL,
		code          VARCHAR(4)   UNIQUE NOT NULL,
		created_at    TIMESTAMP    DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE INDEX IF NOT EXISTS idx_enrollments_date ON enrollments (enroll_date)`,

	`CREATE TABLE IF NOT EXISTS instructors (
		id         SERIAL PRIMARY KEY,
		name       VARCHAR(200) NOT NULL,
		email      VARCHAR(255) UNIQUE NOT NULL,
		created_at TIMESTAMP    DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS blocked_dates (
		id           SERIAL PRIMARY KEY,
		blocked_date DATE         UNIQUE NOT NULL,
		reason       VARCHAR(500) DEFAULT 'date unavailable',
		created_at   TIMESTAMP    DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS notifications (
		id            SERIAL PRIMARY KEY,
		kind          VARCHAR(20)  NOT NULL,
		first_name    VARCHAR(100) NOT NULL,
		last_name     VARCHAR(100) NOT NULL,
		email         VARCHAR(255) NOT NULL,
		enroll_date   DATE         NOT NULL,
		start_time    TIME         NOT NULL,
		is_instructor BOOLEAN      DEFAULT FALSE,
		is_read       BOOLEAN      DEFAULT FALSE,
		created_at    TIMESTAMP    DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS admin_config (
		id          INTEGER PRIMARY KEY,
		access_code VARCHAR(64) NOT NULL,
		created_at  TIMESTAMP   DEFAULT CURRENT_TIMESTAMP
	)`,
}

// Run создает схему БД в одной транзакции.
// Код доступа к админ-панели записывается отдельно (см. adminconfig).
func Run(ctx context.Context, db *sql.DB, log Logger) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("bootstrap: begin transaction: %w", err)
	}

	for _, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("bootstrap: execute schema statement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("bootstrap: commit schema: %w", err)
	}

	log.Info("Database schema initialized")
	return nil
}
