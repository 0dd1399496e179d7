package importer

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Summary reports how many rows each import wrote.
type Summary struct {
	Students    int
	Employers   int
	Events      int
	Dates       int
	Engagements int
	Employment  int
	Feedback    int
}

// Importer loads a directory of warehouse CSV exports into the portal
// database. Each run replaces the warehouse tables wholesale inside one
// transaction, so a failed import leaves the previous data intact.
type Importer struct {
	db *sql.DB
}

func New(db *sql.DB) *Importer {
	return &Importer{db: db}
}

// Run validates and imports the CSV set under dir. Validation errors are
// collected and returned together rather than stopping at the first.
func (imp *Importer) Run(ctx context.Context, dir string) (Summary, error) {
	tables := make(map[string]*table, len(warehouseFiles))
	var errs []error
	for _, spec := range warehouseFiles {
		t, fileErrs := readTable(dir, spec)
		errs = append(errs, fileErrs...)
		if t != nil {
			tables[spec.Name] = t
		}
	}
	errs = append(errs, validateDimensions(tables)...)
	if len(errs) > 0 {
		return Summary{}, combineErrors(errs)
	}

	tx, err := imp.db.BeginTx(ctx, nil)
	if err != nil {
		return Summary{}, fmt.Errorf("beginning import transaction: %w", err)
	}
	defer tx.Rollback()

	summary, err := importAll(ctx, tx, tables)
	if err != nil {
		return Summary{}, err
	}
	if err := tx.Commit(); err != nil {
		return Summary{}, fmt.Errorf("committing import: %w", err)
	}
	return summary, nil
}

func importAll(ctx context.Context, tx *sql.Tx, tables map[string]*table) (Summary, error) {
	var s Summary

	for _, target := range []string{"engagement_events", "employer_feedback", "employment_records", "events", "date_dim", "employers", "students"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+target); err != nil {
			return s, fmt.Errorf("clearing %s: %w", target, err)
		}
	}

	if t := tables["students.csv"]; t != nil {
		for _, row := range t.rows {
			_, err := tx.ExecContext(ctx, `INSERT INTO students (student_key, program_name, graduation_year, current_city, current_state)
				VALUES (?, ?, ?, ?, ?)`,
				t.get(row, "student_key"), t.get(row, "program_name"), t.get(row, "graduation_year"),
				t.get(row, "current_city"), t.get(row, "current_state"))
			if err != nil {
				return s, fmt.Errorf("importing student: %w", err)
			}
			s.Students++
		}
	}

	if t := tables["employers.csv"]; t != nil {
		for _, row := range t.rows {
			_, err := tx.ExecContext(ctx, `INSERT INTO employers (employer_key, employer_name, industry, hq_city, hq_state, employer_rating)
				VALUES (?, ?, ?, ?, ?, ?)`,
				t.get(row, "employer_key"), t.get(row, "employer_name"), t.get(row, "industry"),
				t.get(row, "hq_city"), t.get(row, "hq_state"), nullableFloat(t.get(row, "employer_rating")))
			if err != nil {
				return s, fmt.Errorf("importing employer: %w", err)
			}
			s.Employers++
		}
	}

	if t := tables["events.csv"]; t != nil {
		for _, row := range t.rows {
			_, err := tx.ExecContext(ctx, `INSERT INTO events (event_key, event_name, event_type, date_key)
				VALUES (?, ?, ?, ?)`,
				t.get(row, "event_key"), t.get(row, "event_name"), t.get(row, "event_type"), t.get(row, "date_key"))
			if err != nil {
				return s, fmt.Errorf("importing event: %w", err)
			}
			s.Events++
		}
	}

	if t := tables["dates.csv"]; t != nil {
		for _, row := range t.rows {
			_, err := tx.ExecContext(ctx, `INSERT INTO date_dim (date_key, date) VALUES (?, ?)`,
				t.get(row, "date_key"), strings.TrimSpace(t.get(row, "date")))
			if err != nil {
				return s, fmt.Errorf("importing date: %w", err)
			}
			s.Dates++
		}
	}

	// Fact rows go in verbatim. Coercion of the dirty columns happens in one
	// place, at dataset load.
	if t := tables["engagements.csv"]; t != nil {
		for _, row := range t.rows {
			_, err := tx.ExecContext(ctx, `INSERT INTO engagement_events (student_key, employer_key, event_key, event_date_key,
				mentorship_hours, hired_flag, job_offers_count, applications_submitted, feedback_score)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				t.get(row, "student_key"), t.get(row, "employer_key"), t.get(row, "event_key"), t.get(row, "event_date_key"),
				t.get(row, "mentorship_hours"), t.get(row, "hired_flag"), t.get(row, "job_offers_count"),
				t.get(row, "applications_submitted"), t.get(row, "feedback_score"))
			if err != nil {
				return s, fmt.Errorf("importing engagement: %w", err)
			}
			s.Engagements++
		}
	}

	if t := tables["employment.csv"]; t != nil {
		for _, row := range t.rows {
			_, err := tx.ExecContext(ctx, `INSERT INTO employment_records (student_key, employer_key, status, start_date)
				VALUES (?, ?, ?, ?)`,
				t.get(row, "student_key"), t.get(row, "employer_key"), t.get(row, "status"),
				strings.TrimSpace(t.get(row, "start_date")))
			if err != nil {
				return s, fmt.Errorf("importing employment record: %w", err)
			}
			s.Employment++
		}
	}

	if t := tables["feedback.csv"]; t != nil {
		for _, row := range t.rows {
			_, err := tx.ExecContext(ctx, `INSERT INTO employer_feedback (employer_key, student_key, score, comment)
				VALUES (?, ?, ?, ?)`,
				t.get(row, "employer_key"), t.get(row, "student_key"), nullableFloat(t.get(row, "score")), t.get(row, "comment"))
			if err != nil {
				return s, fmt.Errorf("importing feedback: %w", err)
			}
			s.Feedback++
		}
	}

	return s, nil
}

func nullableFloat(raw string) any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0.0
	}
	return raw
}

func combineErrors(errs []error) error {
	parts := make([]string, len(errs))
	for i, err := range errs {
		parts[i] = err.Error()
	}
	return fmt.Errorf("import validation failed:\n  %s", strings.Join(parts, "\n  "))
}
