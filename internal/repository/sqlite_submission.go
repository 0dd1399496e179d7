package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/devakitechdata/nexus-analytics/internal/db"
	"github.com/devakitechdata/nexus-analytics/internal/domain"
	"github.com/google/uuid"
)

// Submission kinds recorded by the functional-action collaborators.
const (
	KindEventApplication   = "event_application"
	KindEngagement         = "engagement"
	KindSuccessStory       = "success_story"
	KindFeedback           = "feedback"
	KindEventParticipation = "event_participation"
)

// SQLiteSubmissionRepo implements SubmissionRepo over the portal database.
type SQLiteSubmissionRepo struct {
	db  db.DBTX
	now func() time.Time
}

// NewSQLiteSubmissionRepo creates a new SQLiteSubmissionRepo.
func NewSQLiteSubmissionRepo(db db.DBTX) *SQLiteSubmissionRepo {
	return &SQLiteSubmissionRepo{db: db, now: time.Now}
}

func (r *SQLiteSubmissionRepo) SubmitEventApplication(ctx context.Context, userKey int64, eventName string) (*domain.Submission, error) {
	return r.insert(ctx, userKey, KindEventApplication, eventName)
}

func (r *SQLiteSubmissionRepo) SubmitEngagement(ctx context.Context, userKey int64, description string) (*domain.Submission, error) {
	return r.insert(ctx, userKey, KindEngagement, description)
}

func (r *SQLiteSubmissionRepo) SubmitSuccessStory(ctx context.Context, userKey int64, title string) (*domain.Submission, error) {
	return r.insert(ctx, userKey, KindSuccessStory, title)
}

func (r *SQLiteSubmissionRepo) SubmitFeedback(ctx context.Context, userKey int64, comment string) (*domain.Submission, error) {
	return r.insert(ctx, userKey, KindFeedback, comment)
}

func (r *SQLiteSubmissionRepo) RequestEventParticipation(ctx context.Context, userKey int64, eventName string) (*domain.Submission, error) {
	return r.insert(ctx, userKey, KindEventParticipation, eventName)
}

func (r *SQLiteSubmissionRepo) insert(ctx context.Context, userKey int64, kind, title string) (*domain.Submission, error) {
	s := &domain.Submission{
		ID:          uuid.NewString(),
		Kind:        kind,
		Title:       title,
		Status:      "Pending",
		SubmittedAt: r.now().UTC(),
	}
	query := `INSERT INTO submissions (id, user_key, kind, title, status, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, userKey, s.Kind, s.Title, s.Status, s.SubmittedAt.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("inserting %s submission: %w", kind, err)
	}
	return s, nil
}
