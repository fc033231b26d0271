package services_test

import (
	"context"
	"testing"

	"lovelink_server/models"
	"lovelink_server/services"

	"github.com/stretchr/testify/require"
)

// seedUser stores an account with a completed profile and returns the store
// unchanged for chaining in table-style setups.
func seedUser(t *testing.T, store *services.MemoryStore, userID, tier string, profile models.Profile) {
	t.Helper()
	profile.UserID = userID
	require.NoError(t, store.PutAccount(context.Background(), models.Account{
		UserID:           userID,
		Email:            userID + "@example.com",
		ProfileComplete:  true,
		SubscriptionTier: tier,
		SuperLikes:       0,
	}))
	require.NoError(t, store.PutProfile(context.Background(), profile))
}

func setSuperLikes(t *testing.T, store *services.MemoryStore, userID string, count int) {
	t.Helper()
	account, err := store.GetAccount(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, account)
	account.SuperLikes = count
	require.NoError(t, store.PutAccount(context.Background(), *account))
}

func basicProfile(name string, interests []string, answers map[string]string) models.Profile {
	return models.Profile{
		Name:        name,
		Age:         28,
		Bio:         "test bio",
		Location:    "Testville",
		Interests:   interests,
		QuizAnswers: answers,
	}
}
