package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"lovelink_server/models"
)

// DiscoverService builds the ordered discovery queue for a viewer
type DiscoverService struct {
	Store Store
}

// GetDiscoverProfiles returns the viewer's candidate queue, best first.
// A viewer without a completed profile gets an empty queue, not an error.
// The queue is rebuilt on every call so fresh swipes and blocks take effect.
func (ds *DiscoverService) GetDiscoverProfiles(ctx context.Context, userID string) ([]models.DiscoverProfile, error) {
	account, err := ds.Store.GetAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	viewerProfile, err := ds.Store.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch viewer profile: %w", err)
	}
	if account == nil || !account.ProfileComplete || viewerProfile == nil {
		return []models.DiscoverProfile{}, nil
	}

	swipes, err := ds.Store.SwipesByActor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch swipe history: %w", err)
	}
	blocks, err := ds.Store.BlocksByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch block list: %w", err)
	}

	exclude := map[string]struct{}{userID: {}}
	for _, swipe := range swipes {
		exclude[swipe.TargetID] = struct{}{}
	}
	for _, block := range blocks {
		exclude[block.BlockedID] = struct{}{}
	}

	profiles, err := ds.Store.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}
	accounts, err := ds.Store.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	accountsByID := make(map[string]models.Account, len(accounts))
	for _, a := range accounts {
		accountsByID[a.UserID] = a
	}

	now := time.Now()
	candidates := make([]models.DiscoverProfile, 0, len(profiles))
	boosted := map[string]bool{}
	for _, profile := range profiles {
		if _, excluded := exclude[profile.UserID]; excluded {
			continue
		}

		// Did this candidate already like the viewer?
		reciprocal, err := ds.Store.MatchFrom(ctx, profile.UserID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to check reciprocal like: %w", err)
		}

		candidateAccount, ok := accountsByID[profile.UserID]
		boosted[profile.UserID] = ok && candidateAccount.BoostActiveAt(now)

		candidates = append(candidates, models.DiscoverProfile{
			Profile:            profile,
			CompatibilityScore: CompatibilityScore(viewerProfile.QuizAnswers, profile.QuizAnswers),
			ReceivedSuperLike:  reciprocal != nil && reciprocal.Pending(),
		})
	}

	// Priority: real profiles over demo ones, then candidates who already like
	// the viewer, then boosted accounts, then compatibility. Stable on ties.
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.IsDemo != b.IsDemo {
			return !a.IsDemo
		}
		if a.ReceivedSuperLike != b.ReceivedSuperLike {
			return a.ReceivedSuperLike
		}
		if boosted[a.UserID] != boosted[b.UserID] {
			return boosted[a.UserID]
		}
		return a.CompatibilityScore > b.CompatibilityScore
	})

	log.Printf("🔍 Built discover queue for %s: %d candidates", userID, len(candidates))
	return candidates, nil
}
