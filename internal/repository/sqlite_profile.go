package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/devakitechdata/nexus-analytics/internal/db"
	"github.com/devakitechdata/nexus-analytics/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo and EventRepo over the portal
// database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(db db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: db}
}

func (r *SQLiteProfileRepo) FetchProfile(ctx context.Context, userKey int64) (*domain.Profile, error) {
	query := `SELECT user_key, display_name, headline, city, state, program_name,
		graduation_year, engagement_count, mentorship_hours
		FROM profiles WHERE user_key = ?`
	var p domain.Profile
	err := r.db.QueryRowContext(ctx, query, userKey).Scan(
		&p.UserKey, &p.DisplayName, &p.Headline, &p.City, &p.State,
		&p.ProgramName, &p.GraduationYear, &p.EngagementCount, &p.MentorshipHours,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile %d: %w", userKey, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) FetchColleagues(ctx context.Context, userKey int64) ([]domain.Colleague, error) {
	query := `SELECT colleague_key, display_name, program_name, company_name
		FROM colleagues WHERE user_key = ? ORDER BY display_name`
	rows, err := r.db.QueryContext(ctx, query, userKey)
	if err != nil {
		return nil, fmt.Errorf("fetching colleagues: %w", err)
	}
	defer rows.Close()

	var colleagues []domain.Colleague
	for rows.Next() {
		var c domain.Colleague
		if err := rows.Scan(&c.UserKey, &c.DisplayName, &c.ProgramName, &c.CompanyName); err != nil {
			return nil, fmt.Errorf("scanning colleague row: %w", err)
		}
		colleagues = append(colleagues, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating colleagues: %w", err)
	}
	return colleagues, nil
}

func (r *SQLiteProfileRepo) FetchSubmissions(ctx context.Context, userKey int64) ([]domain.Submission, error) {
	query := `SELECT id, kind, title, status, submitted_at
		FROM submissions WHERE user_key = ? ORDER BY submitted_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userKey)
	if err != nil {
		return nil, fmt.Errorf("fetching submissions: %w", err)
	}
	defer rows.Close()

	var submissions []domain.Submission
	for rows.Next() {
		var s domain.Submission
		var submittedStr string
		if err := rows.Scan(&s.ID, &s.Kind, &s.Title, &s.Status, &submittedStr); err != nil {
			return nil, fmt.Errorf("scanning submission row: %w", err)
		}
		parsed, parseErr := time.Parse(time.RFC3339, submittedStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing submitted_at: %w", parseErr)
		}
		s.SubmittedAt = parsed
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating submissions: %w", err)
	}
	return submissions, nil
}

// UpcomingEvents lists events whose dimension date falls on or after from,
// soonest first.
func (r *SQLiteProfileRepo) UpcomingEvents(ctx context.Context, from time.Time) ([]domain.Event, error) {
	query := `SELECT e.event_key, e.event_name, e.event_type, e.date_key
		FROM events e JOIN date_dim d ON e.date_key = d.date_key
		WHERE d.date >= ? ORDER BY d.date`
	rows, err := r.db.QueryContext(ctx, query, from.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("listing upcoming events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.EventKey, &e.EventName, &e.EventType, &e.DateKey); err != nil {
			return nil, fmt.Errorf("scanning upcoming event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating upcoming events: %w", err)
	}
	return events, nil
}
