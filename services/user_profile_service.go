package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"lovelink_server/models"

	"github.com/google/uuid"
)

// boostDuration is how long an activated boost keeps its ranking priority
const boostDuration = 30 * time.Minute

// UserProfileService manages accounts, profiles and the monetization
// operations (subscriptions, super-like purchases, boosts).
type UserProfileService struct {
	Store Store
}

// CreateAccount registers a new free-tier account for an email address
func (ups *UserProfileService) CreateAccount(ctx context.Context, email string) (*models.Account, error) {
	accounts, err := ups.Store.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	for _, existing := range accounts {
		if existing.Email == email {
			return nil, fmt.Errorf("user with email '%s' already exists", email)
		}
	}
	account := models.Account{
		UserID:           "user_" + uuid.NewString(),
		Email:            email,
		SubscriptionTier: models.TierFree,
	}
	if err := ups.Store.PutAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to store account: %w", err)
	}
	log.Printf("✅ Created account %s", account.UserID)
	return &account, nil
}

// GetAccount fetches an account by user id
func (ups *UserProfileService) GetAccount(ctx context.Context, userID string) (*models.Account, error) {
	account, err := ups.Store.GetAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// UpdateProfile stores the user's profile and marks the account complete.
// The embedding vector is regenerated on every save; nothing ranks on it yet.
func (ups *UserProfileService) UpdateProfile(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	account, err := ups.GetAccount(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}

	profile.Vector = make([]float64, 384)
	for i := range profile.Vector {
		profile.Vector[i] = rand.Float64()
	}
	if err := ups.Store.PutProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to store profile: %w", err)
	}

	if !account.ProfileComplete {
		account.ProfileComplete = true
		if err := ups.Store.PutAccount(ctx, *account); err != nil {
			return nil, fmt.Errorf("failed to update account: %w", err)
		}
	}
	return &profile, nil
}

// Subscribe switches the account to a new subscription tier
func (ups *UserProfileService) Subscribe(ctx context.Context, userID, tier string) (*models.Account, error) {
	switch tier {
	case models.TierFree, models.TierPlus, models.TierGold, models.TierPlatinum:
	default:
		return nil, fmt.Errorf("unknown subscription tier '%s'", tier)
	}
	account, err := ups.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	account.SubscriptionTier = tier
	if err := ups.Store.PutAccount(ctx, *account); err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}
	log.Printf("💳 Account %s subscribed to %s", userID, tier)
	return account, nil
}

// PurchaseSuperLikes credits super likes to the account
func (ups *UserProfileService) PurchaseSuperLikes(ctx context.Context, userID string, quantity int) (*models.Account, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}
	account, err := ups.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	account.SuperLikes += quantity
	if err := ups.Store.PutAccount(ctx, *account); err != nil {
		return nil, fmt.Errorf("failed to credit super likes: %w", err)
	}
	return account, nil
}

// ActivateBoost consumes one boost and sets the expiry timestamp. Activeness
// is derived from the timestamp when ranking; nothing clears it later.
func (ups *UserProfileService) ActivateBoost(ctx context.Context, userID string) (*models.Account, error) {
	account, err := ups.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account.Boosts <= 0 {
		return nil, ErrInsufficientBoosts
	}
	account.Boosts--
	account.BoostActive = true
	account.BoostExpiresAt = time.Now().Add(boostDuration)
	if err := ups.Store.PutAccount(ctx, *account); err != nil {
		return nil, fmt.Errorf("failed to activate boost: %w", err)
	}
	log.Printf("🚀 Boost activated for %s until %s", userID, account.BoostExpiresAt.Format(time.RFC3339))
	return account, nil
}
