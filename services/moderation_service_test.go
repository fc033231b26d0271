package services_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"lovelink_server/models"
	"lovelink_server/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockRemovesMatchRecordsBothDirections(t *testing.T) {
	ctx := context.Background()
	store := services.NewMemoryStore()
	seedUser(t, store, "alice", models.TierFree, basicProfile("Alice", nil, nil))
	seedUser(t, store, "bob", models.TierFree, basicProfile("Bob", nil, nil))
	require.NoError(t, store.PutMatch(ctx, models.MatchRecord{
		MatchID: "m1", User1ID: "alice", User2ID: "bob",
		Status: models.MatchStatusMatched, CreatedAt: time.Now(),
	}))
	require.NoError(t, store.PutMatch(ctx, models.MatchRecord{
		MatchID: "m2", User1ID: "bob", User2ID: "alice",
		Status: models.MatchStatusPending, CreatedAt: time.Now(),
	}))

	moderationService := services.NewModerationService(store)
	require.NoError(t, moderationService.BlockUser(ctx, "alice", "bob"))

	blocks, err := store.BlocksByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "bob", blocks[0].BlockedID)

	forward, err := store.MatchFrom(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Nil(t, forward)
	reverse, err := store.MatchFrom(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.Nil(t, reverse)
}

func TestReportIsRecorded(t *testing.T) {
	ctx := context.Background()
	store := services.NewMemoryStore()
	moderationService := services.NewModerationService(store)

	report, err := moderationService.ReportUser(ctx, "alice", "bob", "spam")
	require.NoError(t, err)
	assert.NotEmpty(t, report.ReportID)
	assert.Equal(t, "alice", report.ReporterID)
	assert.Equal(t, "bob", report.ReportedID)
	assert.Equal(t, "spam", report.Reason)
}

func TestVerifyPhotoDeterministicUnderSeededOracle(t *testing.T) {
	ctx := context.Background()
	first := services.NewModerationService(services.NewMemoryStore())
	second := services.NewModerationService(services.NewMemoryStore())
	first.Rand = rand.New(rand.NewSource(42))
	second.Rand = rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		a, err := first.VerifyPhoto(ctx, "photo.jpg")
		require.NoError(t, err)
		b, err := second.VerifyPhoto(ctx, "photo.jpg")
		require.NoError(t, err)
		assert.Equal(t, a.Approved, b.Approved)
	}
}

func TestVerifyPhotoCarriesReasonOnRejection(t *testing.T) {
	ctx := context.Background()
	moderationService := services.NewModerationService(services.NewMemoryStore())
	moderationService.Rand = rand.New(rand.NewSource(1))

	sawRejection := false
	for i := 0; i < 200 && !sawRejection; i++ {
		verification, err := moderationService.VerifyPhoto(ctx, "photo.jpg")
		require.NoError(t, err)
		if !verification.Approved {
			sawRejection = true
			assert.NotEmpty(t, verification.Reason)
		} else {
			assert.Empty(t, verification.Reason)
		}
	}
	assert.True(t, sawRejection, "expected at least one rejection in 200 draws")
}
