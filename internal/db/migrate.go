package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
// list re-runs safely on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// migrations is the warehouse schema. Fact and dimension columns that arrive
// from dirty CSV exports (flags, counters) are stored as TEXT and coerced
// once at load time.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS students (
		student_key     INTEGER PRIMARY KEY,
		program_name    TEXT NOT NULL DEFAULT '',
		graduation_year INTEGER NOT NULL DEFAULT 0,
		current_city    TEXT NOT NULL DEFAULT '',
		current_state   TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS employers (
		employer_key    INTEGER PRIMARY KEY,
		employer_name   TEXT NOT NULL,
		industry        TEXT NOT NULL DEFAULT '',
		hq_city         TEXT NOT NULL DEFAULT '',
		hq_state        TEXT NOT NULL DEFAULT '',
		employer_rating REAL NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS events (
		event_key  INTEGER PRIMARY KEY,
		event_name TEXT NOT NULL,
		event_type TEXT NOT NULL DEFAULT '',
		date_key   INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS date_dim (
		date_key INTEGER PRIMARY KEY,
		date     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS engagement_events (
		id                     INTEGER PRIMARY KEY AUTOINCREMENT,
		student_key            TEXT NOT NULL DEFAULT '',
		employer_key           TEXT NOT NULL DEFAULT '',
		event_key              TEXT NOT NULL DEFAULT '',
		event_date_key         TEXT NOT NULL DEFAULT '',
		mentorship_hours       TEXT NOT NULL DEFAULT '',
		hired_flag             TEXT NOT NULL DEFAULT '',
		job_offers_count       TEXT NOT NULL DEFAULT '',
		applications_submitted TEXT NOT NULL DEFAULT '',
		feedback_score         TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_engagement_student ON engagement_events(student_key)`,
	`CREATE INDEX IF NOT EXISTS idx_engagement_employer ON engagement_events(employer_key)`,

	`CREATE TABLE IF NOT EXISTS employment_records (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		student_key  INTEGER NOT NULL,
		employer_key INTEGER NOT NULL,
		status       TEXT NOT NULL CHECK(status IN ('Verified','Pending')),
		start_date   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS employer_feedback (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		employer_key INTEGER NOT NULL,
		student_key  INTEGER NOT NULL,
		score        REAL NOT NULL DEFAULT 0,
		comment      TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS profiles (
		user_key         INTEGER PRIMARY KEY,
		display_name     TEXT NOT NULL,
		headline         TEXT NOT NULL DEFAULT '',
		city             TEXT NOT NULL DEFAULT '',
		state            TEXT NOT NULL DEFAULT '',
		program_name     TEXT NOT NULL DEFAULT '',
		graduation_year  INTEGER NOT NULL DEFAULT 0,
		engagement_count INTEGER NOT NULL DEFAULT 0,
		mentorship_hours REAL NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS colleagues (
		user_key          INTEGER NOT NULL,
		colleague_key     INTEGER NOT NULL,
		display_name      TEXT NOT NULL,
		program_name      TEXT NOT NULL DEFAULT '',
		company_name      TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (user_key, colleague_key)
	)`,

	`CREATE TABLE IF NOT EXISTS submissions (
		id           TEXT PRIMARY KEY,
		user_key     INTEGER NOT NULL,
		kind         TEXT NOT NULL,
		title        TEXT NOT NULL,
		status       TEXT NOT NULL DEFAULT 'Pending',
		payload      TEXT NOT NULL DEFAULT '{}',
		submitted_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_submissions_user ON submissions(user_key)`,
}
