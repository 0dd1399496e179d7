package repository

import (
	"context"
	"errors"
	"time"

	"github.com/devakitechdata/nexus-analytics/internal/domain"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// DatasetRepo bulk-loads the denormalized warehouse snapshot for aggregate
// analytics. It satisfies dataset.Loader.
type DatasetRepo interface {
	LoadDataset(ctx context.Context) (*domain.Dataset, error)
}

// ProfileRepo serves the per-user fetches behind self-scope questions.
type ProfileRepo interface {
	FetchProfile(ctx context.Context, userKey int64) (*domain.Profile, error)
	FetchColleagues(ctx context.Context, userKey int64) ([]domain.Colleague, error)
	FetchSubmissions(ctx context.Context, userKey int64) ([]domain.Submission, error)
}

// SubmissionRepo records functional actions. The assistant only forwards the
// caller's identity and fields; it owns no persistence rules.
type SubmissionRepo interface {
	SubmitEventApplication(ctx context.Context, userKey int64, eventName string) (*domain.Submission, error)
	SubmitEngagement(ctx context.Context, userKey int64, description string) (*domain.Submission, error)
	SubmitSuccessStory(ctx context.Context, userKey int64, title string) (*domain.Submission, error)
	SubmitFeedback(ctx context.Context, userKey int64, comment string) (*domain.Submission, error)
	RequestEventParticipation(ctx context.Context, userKey int64, eventName string) (*domain.Submission, error)
}

// EventRepo lists portal events for functional-scope answers.
type EventRepo interface {
	UpcomingEvents(ctx context.Context, from time.Time) ([]domain.Event, error)
}
