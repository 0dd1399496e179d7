package testutil

import (
	"database/sql"
	"testing"
	"time"
)

// Seed helpers insert warehouse rows for tests. Engagement fact columns are
// TEXT in the schema, mirroring the dirty CSV ingest, so options here accept
// raw strings where coercion behavior is under test.

// EngagementOption customizes one seeded engagement row.
type EngagementOption func(*engagementRow)

type engagementRow struct {
	studentKey, employerKey, eventKey, dateKey string
	hours, hired, offers, applications, score  string
}

// WithEvent links the engagement to an event and date key.
func WithEvent(eventKey, dateKey string) EngagementOption {
	return func(r *engagementRow) {
		r.eventKey = eventKey
		r.dateKey = dateKey
	}
}

// WithHired sets the raw hired flag column.
func WithHired(raw string) EngagementOption {
	return func(r *engagementRow) { r.hired = raw }
}

// WithOffers sets the raw job offers column.
func WithOffers(raw string) EngagementOption {
	return func(r *engagementRow) { r.offers = raw }
}

// WithApplications sets the raw applications column.
func WithApplications(raw string) EngagementOption {
	return func(r *engagementRow) { r.applications = raw }
}

// WithMentorshipHours sets the raw mentorship hours column.
func WithMentorshipHours(raw string) EngagementOption {
	return func(r *engagementRow) { r.hours = raw }
}

// SeedStudent inserts a student dimension row.
func SeedStudent(t *testing.T, db *sql.DB, key int64, program string, year int, city, state string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO students (student_key, program_name, graduation_year, current_city, current_state)
		VALUES (?, ?, ?, ?, ?)`, key, program, year, city, state)
	if err != nil {
		t.Fatalf("seeding student %d: %v", key, err)
	}
}

// SeedEmployer inserts an employer dimension row.
func SeedEmployer(t *testing.T, db *sql.DB, key int64, name, industry, city, state string, rating float64) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO employers (employer_key, employer_name, industry, hq_city, hq_state, employer_rating)
		VALUES (?, ?, ?, ?, ?, ?)`, key, name, industry, city, state, rating)
	if err != nil {
		t.Fatalf("seeding employer %d: %v", key, err)
	}
}

// SeedEvent inserts an event dimension row.
func SeedEvent(t *testing.T, db *sql.DB, key int64, name, eventType string, dateKey int64) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO events (event_key, event_name, event_type, date_key)
		VALUES (?, ?, ?, ?)`, key, name, eventType, dateKey)
	if err != nil {
		t.Fatalf("seeding event %d: %v", key, err)
	}
}

// SeedDate inserts a date dimension row.
func SeedDate(t *testing.T, db *sql.DB, key int64, date time.Time) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO date_dim (date_key, date) VALUES (?, ?)`,
		key, date.Format("2006-01-02"))
	if err != nil {
		t.Fatalf("seeding date %d: %v", key, err)
	}
}

// SeedEngagement inserts an engagement fact row for the given pair.
func SeedEngagement(t *testing.T, db *sql.DB, studentKey, employerKey string, opts ...EngagementOption) {
	t.Helper()
	row := engagementRow{studentKey: studentKey, employerKey: employerKey}
	for _, opt := range opts {
		opt(&row)
	}
	_, err := db.Exec(`INSERT INTO engagement_events (student_key, employer_key, event_key, event_date_key,
		mentorship_hours, hired_flag, job_offers_count, applications_submitted, feedback_score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.studentKey, row.employerKey, row.eventKey, row.dateKey,
		row.hours, row.hired, row.offers, row.applications, row.score)
	if err != nil {
		t.Fatalf("seeding engagement: %v", err)
	}
}

// SeedEmployment inserts an employment record.
func SeedEmployment(t *testing.T, db *sql.DB, studentKey, employerKey int64, status string, start time.Time) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO employment_records (student_key, employer_key, status, start_date)
		VALUES (?, ?, ?, ?)`, studentKey, employerKey, status, start.Format("2006-01-02"))
	if err != nil {
		t.Fatalf("seeding employment record: %v", err)
	}
}

// SeedProfile inserts a per-user profile row.
func SeedProfile(t *testing.T, db *sql.DB, userKey int64, name, program string, year, engagements int) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO profiles (user_key, display_name, program_name, graduation_year, engagement_count)
		VALUES (?, ?, ?, ?, ?)`, userKey, name, program, year, engagements)
	if err != nil {
		t.Fatalf("seeding profile %d: %v", userKey, err)
	}
}

// SeedColleague inserts one colleague edge for a user.
func SeedColleague(t *testing.T, db *sql.DB, userKey, colleagueKey int64, name, program, company string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO colleagues (user_key, colleague_key, display_name, program_name, company_name)
		VALUES (?, ?, ?, ?, ?)`, userKey, colleagueKey, name, program, company)
	if err != nil {
		t.Fatalf("seeding colleague: %v", err)
	}
}
