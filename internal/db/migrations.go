package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS custom_terms (
  id INTEGER PRIMARY KEY,
  slang TEXT NOT NULL UNIQUE,
  standard TEXT NOT NULL,
  translations TEXT NOT NULL DEFAULT '{}',
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS suppressed_terms (
  slang TEXT PRIMARY KEY,
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS worker_messages (
  id INTEGER PRIMARY KEY,
  worker_name TEXT NOT NULL,
  worker_country TEXT,
  worker_language TEXT NOT NULL,
  message TEXT NOT NULL,
  translated TEXT NOT NULL,
  is_urgent INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_worker_messages_created_at ON worker_messages(created_at);

CREATE TABLE IF NOT EXISTS tbm_sessions (
  id INTEGER PRIMARY KEY,
  instruction TEXT NOT NULL,
  standard_text TEXT NOT NULL,
  detected_terms TEXT NOT NULL DEFAULT '[]',
  status TEXT NOT NULL DEFAULT 'active',
  created_at TEXT NOT NULL,
  closed_at TEXT
);

CREATE INDEX IF NOT EXISTS idx_tbm_sessions_status ON tbm_sessions(status);

CREATE TABLE IF NOT EXISTS tbm_signatures (
  id INTEGER PRIMARY KEY,
  session_id INTEGER NOT NULL,
  worker_name TEXT NOT NULL,
  worker_language TEXT NOT NULL,
  receipt TEXT NOT NULL,
  signed_at TEXT NOT NULL,
  FOREIGN KEY (session_id) REFERENCES tbm_sessions(id) ON DELETE CASCADE
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_tbm_signatures_session_worker ON tbm_signatures(session_id, worker_name);

CREATE TABLE IF NOT EXISTS saved_messages (
  id INTEGER PRIMARY KEY,
  category TEXT NOT NULL,
  original_text TEXT NOT NULL,
  standard_text TEXT NOT NULL,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_saved_messages_category ON saved_messages(category);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: read flag on worker messages
	exists, err := hasColumn(db, "worker_messages", "is_read")
	if err != nil {
		return fmt.Errorf("check is_read column: %w", err)
	}
	if !exists {
		if _, err := db.Exec(`ALTER TABLE worker_messages ADD COLUMN is_read INTEGER NOT NULL DEFAULT 0`); err != nil {
			return fmt.Errorf("add is_read column: %w", err)
		}
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_worker_messages_read ON worker_messages(is_read)`); err != nil {
		return fmt.Errorf("create idx_worker_messages_read: %w", err)
	}

	// Migration 2: usage counter on saved messages
	exists, err = hasColumn(db, "saved_messages", "usage_count")
	if err != nil {
		return fmt.Errorf("check usage_count column: %w", err)
	}
	if !exists {
		if _, err := db.Exec(`ALTER TABLE saved_messages ADD COLUMN usage_count INTEGER NOT NULL DEFAULT 0`); err != nil {
			return fmt.Errorf("add usage_count column: %w", err)
		}
	}

	// Migration 3: key-value settings
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("create settings table: %w", err)
	}

	// Migration 4: remote translation cache
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS translation_cache (
			id INTEGER PRIMARY KEY,
			cache_key TEXT NOT NULL UNIQUE,
			language TEXT NOT NULL,
			source TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TEXT NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("create translation_cache table: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_translation_cache_language ON translation_cache(language)`); err != nil {
		return fmt.Errorf("create idx_translation_cache_language: %w", err)
	}

	// Migration 5: safety bulletin sources and items
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS bulletin_sources (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			url TEXT NOT NULL UNIQUE,
			etag TEXT,
			last_modified TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("create bulletin_sources table: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS bulletins (
			id INTEGER PRIMARY KEY,
			source_id INTEGER NOT NULL,
			hash TEXT NOT NULL,
			title TEXT NOT NULL,
			url TEXT,
			summary TEXT,
			published_at TEXT,
			created_at TEXT NOT NULL,
			FOREIGN KEY (source_id) REFERENCES bulletin_sources(id) ON DELETE CASCADE
		)
	`); err != nil {
		return fmt.Errorf("create bulletins table: %w", err)
	}
	if _, err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_bulletins_source_hash ON bulletins(source_id, hash)`); err != nil {
		return fmt.Errorf("create idx_bulletins_source_hash: %w", err)
	}

	// Migration 6: fetch error on bulletin sources
	exists, err = hasColumn(db, "bulletin_sources", "error_message")
	if err != nil {
		return fmt.Errorf("check error_message column: %w", err)
	}
	if !exists {
		if _, err := db.Exec(`ALTER TABLE bulletin_sources ADD COLUMN error_message TEXT`); err != nil {
			return fmt.Errorf("add error_message column: %w", err)
		}
	}

	// Migration 7: at most one active TBM session
	if err := migrateSingleActiveSession(db); err != nil {
		return err
	}

	return nil
}

func migrateSingleActiveSession(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// keep the newest active session, close the rest
	if _, err := tx.Exec(`
		UPDATE tbm_sessions SET status = 'closed', closed_at = created_at
		WHERE status = 'active' AND id < (SELECT MAX(id) FROM tbm_sessions WHERE status = 'active')
	`); err != nil {
		return fmt.Errorf("close stale active sessions: %w", err)
	}
	if _, err := tx.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_tbm_sessions_one_active ON tbm_sessions(status) WHERE status = 'active'
	`); err != nil {
		return fmt.Errorf("create idx_tbm_sessions_one_active: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func hasColumn(db *sql.DB, table string, column string) (bool, error) {
	var count int
	if err := db.QueryRow(
		fmt.Sprintf(`SELECT COUNT(*) FROM pragma_table_info('%s') WHERE name = ?`, table),
		column,
	).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
