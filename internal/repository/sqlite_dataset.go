package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/devakitechdata/nexus-analytics/internal/db"
	"github.com/devakitechdata/nexus-analytics/internal/domain"
)

// SQLiteDatasetRepo bulk-loads the warehouse collections from SQLite.
// Engagement fact columns arrive as raw TEXT from the ingest pipeline and
// are coerced into canonical typed fields here, exactly once, so the metric
// library never branches on representation.
type SQLiteDatasetRepo struct {
	db db.DBTX
}

// NewSQLiteDatasetRepo creates a new SQLiteDatasetRepo.
func NewSQLiteDatasetRepo(db db.DBTX) *SQLiteDatasetRepo {
	return &SQLiteDatasetRepo{db: db}
}

func (r *SQLiteDatasetRepo) LoadDataset(ctx context.Context) (*domain.Dataset, error) {
	ds := &domain.Dataset{}

	var err error
	if ds.Students, err = r.loadStudents(ctx); err != nil {
		return nil, err
	}
	if ds.Employers, err = r.loadEmployers(ctx); err != nil {
		return nil, err
	}
	if ds.Events, err = r.loadEvents(ctx); err != nil {
		return nil, err
	}
	if ds.Dates, err = r.loadDates(ctx); err != nil {
		return nil, err
	}
	if ds.Engagements, err = r.loadEngagements(ctx); err != nil {
		return nil, err
	}
	if ds.EmploymentRecords, err = r.loadEmploymentRecords(ctx); err != nil {
		return nil, err
	}
	if ds.Feedback, err = r.loadFeedback(ctx); err != nil {
		return nil, err
	}
	return ds, nil
}

func (r *SQLiteDatasetRepo) loadStudents(ctx context.Context) ([]domain.Student, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT student_key, program_name, graduation_year, current_city, current_state FROM students`)
	if err != nil {
		return nil, fmt.Errorf("loading students: %w", err)
	}
	defer rows.Close()

	var students []domain.Student
	for rows.Next() {
		var s domain.Student
		if err := rows.Scan(&s.StudentKey, &s.ProgramName, &s.GraduationYear, &s.CurrentCity, &s.CurrentState); err != nil {
			return nil, fmt.Errorf("scanning student row: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating students: %w", err)
	}
	return students, nil
}

func (r *SQLiteDatasetRepo) loadEmployers(ctx context.Context) ([]domain.Employer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT employer_key, employer_name, industry, hq_city, hq_state, employer_rating FROM employers`)
	if err != nil {
		return nil, fmt.Errorf("loading employers: %w", err)
	}
	defer rows.Close()

	var employers []domain.Employer
	for rows.Next() {
		var e domain.Employer
		if err := rows.Scan(&e.EmployerKey, &e.EmployerName, &e.Industry, &e.HQCity, &e.HQState, &e.EmployerRating); err != nil {
			return nil, fmt.Errorf("scanning employer row: %w", err)
		}
		employers = append(employers, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employers: %w", err)
	}
	return employers, nil
}

func (r *SQLiteDatasetRepo) loadEvents(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT event_key, event_name, event_type, date_key FROM events`)
	if err != nil {
		return nil, fmt.Errorf("loading events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.EventKey, &e.EventName, &e.EventType, &e.DateKey); err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}

func (r *SQLiteDatasetRepo) loadDates(ctx context.Context) ([]domain.DateDim, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT date_key, date FROM date_dim`)
	if err != nil {
		return nil, fmt.Errorf("loading date dimension: %w", err)
	}
	defer rows.Close()

	var dates []domain.DateDim
	for rows.Next() {
		var d domain.DateDim
		var dateStr string
		if err := rows.Scan(&d.DateKey, &dateStr); err != nil {
			return nil, fmt.Errorf("scanning date row: %w", err)
		}
		parsed, parseErr := time.Parse("2006-01-02", dateStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing date dimension value %q: %w", dateStr, parseErr)
		}
		d.Date = parsed
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating date dimension: %w", err)
	}
	return dates, nil
}

func (r *SQLiteDatasetRepo) loadEngagements(ctx context.Context) ([]domain.EngagementEvent, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT student_key, employer_key, event_key, event_date_key,
		mentorship_hours, hired_flag, job_offers_count, applications_submitted, feedback_score
		FROM engagement_events`)
	if err != nil {
		return nil, fmt.Errorf("loading engagement events: %w", err)
	}
	defer rows.Close()

	var engagements []domain.EngagementEvent
	for rows.Next() {
		var studentKey, employerKey, eventKey, dateKey string
		var hours, hired, offers, apps, score string
		if err := rows.Scan(&studentKey, &employerKey, &eventKey, &dateKey, &hours, &hired, &offers, &apps, &score); err != nil {
			return nil, fmt.Errorf("scanning engagement row: %w", err)
		}
		engagements = append(engagements, domain.EngagementEvent{
			StudentKey:      domain.CoerceKey(studentKey),
			EmployerKey:     domain.CoerceKey(employerKey),
			EventKey:        domain.CoerceKey(eventKey),
			EventDateKey:    domain.CoerceKey(dateKey),
			MentorshipHours: domain.CoerceFloat(hours),
			Hired:           domain.CoerceFlag(hired),
			JobOffers:       domain.CoerceInt(offers),
			Applications:    domain.CoerceInt(apps),
			FeedbackScore:   domain.CoerceFloat(score),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating engagement events: %w", err)
	}
	return engagements, nil
}

func (r *SQLiteDatasetRepo) loadEmploymentRecords(ctx context.Context) ([]domain.EmploymentRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT student_key, employer_key, status, start_date FROM employment_records`)
	if err != nil {
		return nil, fmt.Errorf("loading employment records: %w", err)
	}
	defer rows.Close()

	var records []domain.EmploymentRecord
	for rows.Next() {
		var rec domain.EmploymentRecord
		var status, startStr string
		if err := rows.Scan(&rec.StudentKey, &rec.EmployerKey, &status, &startStr); err != nil {
			return nil, fmt.Errorf("scanning employment record: %w", err)
		}
		rec.Status = domain.EmploymentStatus(status)
		if parsed, parseErr := time.Parse("2006-01-02", startStr); parseErr == nil {
			rec.StartDate = parsed
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employment records: %w", err)
	}
	return records, nil
}

func (r *SQLiteDatasetRepo) loadFeedback(ctx context.Context) ([]domain.EmployerFeedback, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT employer_key, student_key, score, comment FROM employer_feedback`)
	if err != nil {
		return nil, fmt.Errorf("loading employer feedback: %w", err)
	}
	defer rows.Close()

	var feedback []domain.EmployerFeedback
	for rows.Next() {
		var f domain.EmployerFeedback
		if err := rows.Scan(&f.EmployerKey, &f.StudentKey, &f.Score, &f.Comment); err != nil {
			return nil, fmt.Errorf("scanning feedback row: %w", err)
		}
		feedback = append(feedback, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employer feedback: %w", err)
	}
	return feedback, nil
}
