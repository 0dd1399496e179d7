package repository

import (
	"context"
	"testing"
	"time"

	"github.com/devakitechdata/nexus-analytics/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitEventApplication_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSubmissionRepo(database)
	repo.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

	submitted, err := repo.SubmitEventApplication(context.Background(), 7, "Spring Career Fair")
	require.NoError(t, err)
	assert.NotEmpty(t, submitted.ID)
	assert.Equal(t, KindEventApplication, submitted.Kind)
	assert.Equal(t, "Pending", submitted.Status)

	listed, err := NewSQLiteProfileRepo(database).FetchSubmissions(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, submitted.ID, listed[0].ID)
	assert.Equal(t, "Spring Career Fair", listed[0].Title)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), listed[0].SubmittedAt)
}

func TestSubmitters_RecordDistinctKinds(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSubmissionRepo(database)
	ctx := context.Background()

	_, err := repo.SubmitEngagement(ctx, 7, "Mentored two students")
	require.NoError(t, err)
	_, err = repo.SubmitSuccessStory(ctx, 7, "Landed a dream job")
	require.NoError(t, err)
	_, err = repo.SubmitFeedback(ctx, 7, "Great mentorship program")
	require.NoError(t, err)
	_, err = repo.RequestEventParticipation(ctx, 7, "Alumni Mixer")
	require.NoError(t, err)

	listed, err := NewSQLiteProfileRepo(database).FetchSubmissions(ctx, 7)
	require.NoError(t, err)
	require.Len(t, listed, 4)

	kinds := make(map[string]bool)
	for _, s := range listed {
		kinds[s.Kind] = true
	}
	assert.True(t, kinds[KindEngagement])
	assert.True(t, kinds[KindSuccessStory])
	assert.True(t, kinds[KindFeedback])
	assert.True(t, kinds[KindEventParticipation])
}

func TestFetchSubmissions_ScopedToUser(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSubmissionRepo(database)
	ctx := context.Background()

	_, err := repo.SubmitEngagement(ctx, 7, "Mine")
	require.NoError(t, err)
	_, err = repo.SubmitEngagement(ctx, 8, "Someone else's")
	require.NoError(t, err)

	listed, err := NewSQLiteProfileRepo(database).FetchSubmissions(ctx, 7)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Mine", listed[0].Title)
}
