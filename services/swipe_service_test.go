package services_test

import (
	"context"
	"sync"
	"testing"

	"lovelink_server/models"
	"lovelink_server/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwipeLikeCreatesPendingRecord(t *testing.T) {
	ctx := context.Background()
	store := services.NewMemoryStore()
	seedUser(t, store, "alice", models.TierFree, basicProfile("Alice", []string{"Art"}, nil))
	seedUser(t, store, "bob", models.TierFree, basicProfile("Bob", []string{"Music"}, nil))
	swipeService := services.NewSwipeService(store)

	result, err := swipeService.Swipe(ctx, "alice", "bob", models.SwipeActionLike)
	require.NoError(t, err)
	assert.False(t, result.Matched)

	record, err := store.MatchFrom(ctx, "alice", "bob")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, models.MatchStatusPending, record.Status)
}

func TestSwipePassCreatesNoRecord(t *testing.T) {
	ctx := context.Background()
	store := services.NewMemoryStore()
	seedUser(t, store, "alice", models.TierFree, basicProfile("Alice", nil, nil))
	seedUser(t, store, "bob", models.TierFree, basicProfile("Bob", nil, nil))
	swipeService := services.NewSwipeService(store)

	result, err := swipeService.Swipe(ctx, "alice", "bob", models.SwipeActionPass)
	require.NoError(t, err)
	assert.False(t, result.Matched)

	record, err := store.MatchFrom(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Nil(t, record)

	swipes, err := store.SwipesByActor(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, swipes, 1)
	assert.Equal(t, models.SwipeActionPass, swipes[0].Action)
}

func TestReciprocalLikeResolvesMatch(t *testing.T) {
	ctx := context.Background()
	store := services.NewMemoryStore()
	seedUser(t, store, "alice", models.TierFree, basicProfile("Alice", []string{"Hiking", "Art"}, nil))
	seedUser(t, store, "bob", models.TierFree, basicProfile("Bob", []string{"Hiking", "Tech"}, nil))
	swipeService := services.NewSwipeService(store)

	_, err := swipeService.Swipe(ctx, "alice", "bob", models.SwipeActionLike)
	require.NoError(t, err)

	result, err := swipeService.Swipe(ctx, "bob", "alice", models.SwipeActionLike)
	require.NoError(t, err)
	assert.True(t, result.Matched)
	require.NotNil(t, result.MatchedProfile)
	assert.Equal(t, "alice", result.MatchedProfile.UserID)
	assert.Equal(t, "You both like Hiking! What's your favorite thing about it?", result.Icebreaker)

	record, err := store.MatchFrom(ctx, "alice", "bob")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, models.MatchStatusMatched, record.Status)
}

func TestIcebreakerWithoutSharedInterest(t *testing.T) {
	viewer := basicProfile("Alice", []string{"Art"}, nil)
	matched := basicProfile("Bob", []string{"Tech"}, nil)

	assert.Equal(t, "You and Bob seem to have a lot in common. Say hello!", services.Icebreaker(&viewer, &matched))
}

func TestLikeQuotaEnforcedBeforeAppend(t *testing.T) {
	ctx := context.Background()
	store := services.NewMemoryStore()
	seedUser(t, store, "alice", models.TierFree, basicProfile("Alice", nil, nil))
	swipeService := services.NewSwipeService(store)

	quota := models.FeatureLimitsFor(models.TierFree).DailyLikes
	for i := 0; i < quota; i++ {
		_, err := swipeService.Swipe(ctx, "alice", "target_"+string(rune('a'+i)), models.SwipeActionLike)
		require.NoError(t, err)
	}

	_, err := swipeService.Swipe(ctx, "alice", "one_too_many", models.SwipeActionLike)
	assert.ErrorIs(t, err, services.ErrLikeLimitReached)

	// the rejected like must not reach the log
	swipes, err := store.SwipesByActor(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, swipes, quota)
}

func TestGoldTierHasNoLikeQuota(t *testing.T) {
	ctx := context.Background()
	store := services.NewMemoryStore()
	seedUser(t, store, "alice", models.TierGold, basicProfile("Alice", nil, nil))
	swipeService := services.NewSwipeService(store)

	for i := 0; i < 60; i++ {
		_, err := swipeService.Swipe(ctx, "alice", "target_"+string(rune('a'+i%26))+string(rune('a'+i/26)), models.SwipeActionLike)
		require.NoError(t, err)
	}
}

func TestSuperLikeRequiresBalance(t *testing.T) {
	ctx := context.Background()
	store := services.NewMemoryStore()
	seedUser(t, store, "alice", models.TierPlus, basicProfile("Alice", nil, nil))
	swipeService := services.NewSwipeService(store)

	_, err := swipeService.Swipe(ctx, "alice", "bob", models.SwipeActionSuperLike)
	assert.ErrorIs(t, err, services.ErrInsufficientSuperLikes)

	account, err := store.GetAccount(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 0, account.SuperLikes)

	swipes, err := store.SwipesByActor(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, swipes)
}

func TestSuperLikeConsumesBalanceAndMarksRecord(t *testing.T) {
	ctx := context.Background()
	store := services.NewMemoryStore()
	seedUser(t, store, "alice", models.TierPlus, basicProfile("Alice", nil, nil))
	seedUser(t, store, "bob", models.TierFree, basicProfile("Bob", nil, nil))
	setSuperLikes(t, store, "alice", 2)
	swipeService := services.NewSwipeService(store)

	result, err := swipeService.Swipe(ctx, "alice", "bob", models.SwipeActionSuperLike)
	require.NoError(t, err)
	assert.False(t, result.Matched)

	account, err := store.GetAccount(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, account.SuperLikes)

	record, err := store.MatchFrom(ctx, "alice", "bob")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, models.MatchStatusSuperLike, record.Status)
}

func TestSwipeUnknownAccount(t *testing.T) {
	swipeService := services.NewSwipeService(services.NewMemoryStore())

	_, err := swipeService.Swipe(context.Background(), "ghost", "bob", models.SwipeActionLike)
	assert.ErrorIs(t, err, services.ErrAccountNotFound)
}

func TestRewindRestoresStateBeforeSwipe(t *testing.T) {
	ctx := context.Background()
	store := services.NewMemoryStore()
	seedUser(t, store, "alice", models.TierPlus, basicProfile("Alice", nil, map[string]string{"q1": "a", "q2": "c", "q3": "d"}))
	seedUser(t, store, "bob", models.TierFree, basicProfile("Bob", nil, map[string]string{"q1": "a", "q2": "c", "q3": "b"}))
	swipeService := services.NewSwipeService(store)

	_, err := swipeService.Swipe(ctx, "alice", "bob", models.SwipeActionLike)
	require.NoError(t, err)

	result, err := swipeService.Rewind(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, result.OK)
	require.NotNil(t, result.Profile)
	assert.Equal(t, "bob", result.Profile.UserID)
	assert.Equal(t, 67, result.Profile.CompatibilityScore)

	swipes, err := store.SwipesByActor(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, swipes)

	record, err := store.MatchFrom(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestRewindGatedByEntitlement(t *testing.T) {
	ctx := context.Background()
	store := services.NewMemoryStore()
	seedUser(t, store, "alice", models.TierFree, basicProfile("Alice", nil, nil))
	swipeService := services.NewSwipeService(store)

	_, err := swipeService.Rewind(ctx, "alice")
	assert.ErrorIs(t, err, services.ErrRewindNotAllowed)
}

func TestRewindWithoutHistoryIsSilent(t *testing.T) {
	ctx := context.Background()
	store := services.NewMemoryStore()
	seedUser(t, store, "alice", models.TierPlus, basicProfile("Alice", nil, nil))
	swipeService := services.NewSwipeService(store)

	result, err := swipeService.Rewind(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Nil(t, result.Profile)
}

func TestRewindNeverReversesAMatch(t *testing.T) {
	ctx := context.Background()
	store := services.NewMemoryStore()
	seedUser(t, store, "alice", models.TierFree, basicProfile("Alice", nil, nil))
	seedUser(t, store, "bob", models.TierGold, basicProfile("Bob", nil, nil))
	swipeService := services.NewSwipeService(store)

	_, err := swipeService.Swipe(ctx, "alice", "bob", models.SwipeActionLike)
	require.NoError(t, err)
	result, err := swipeService.Swipe(ctx, "bob", "alice", models.SwipeActionLike)
	require.NoError(t, err)
	require.True(t, result.Matched)

	// bob rewinds the like that completed the match
	rewound, err := swipeService.Rewind(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, rewound.OK)

	record, err := store.MatchFrom(ctx, "alice", "bob")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, models.MatchStatusMatched, record.Status)
}

func TestConcurrentReciprocalLikesCreateOneRecord(t *testing.T) {
	ctx := context.Background()
	store := services.NewMemoryStore()
	seedUser(t, store, "alice", models.TierFree, basicProfile("Alice", nil, nil))
	seedUser(t, store, "bob", models.TierFree, basicProfile("Bob", nil, nil))
	swipeService := services.NewSwipeService(store)

	var wg sync.WaitGroup
	for _, pair := range [][2]string{{"alice", "bob"}, {"bob", "alice"}} {
		wg.Add(1)
		go func(actor, target string) {
			defer wg.Done()
			_, err := swipeService.Swipe(ctx, actor, target, models.SwipeActionLike)
			assert.NoError(t, err)
		}(pair[0], pair[1])
	}
	wg.Wait()

	records, err := store.MatchesByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.MatchStatusMatched, records[0].Status)
}
