package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"lovelink_server/models"
	"lovelink_server/utils"

	"github.com/google/uuid"
)

// SwipeService records swipe actions, enforces tier limits and resolves
// reciprocal likes into matches.
type SwipeService struct {
	Store Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewSwipeService creates a SwipeService backed by the given store
func NewSwipeService(store Store) *SwipeService {
	return &SwipeService{Store: store, locks: map[string]*sync.Mutex{}}
}

// SwipeResult is the outcome of a swipe action
type SwipeResult struct {
	Matched        bool            `json:"match"`
	Icebreaker     string          `json:"icebreaker,omitempty"`
	MatchedProfile *models.Profile `json:"matchedProfile,omitempty"`
}

// RewindResult is the outcome of a rewind
type RewindResult struct {
	OK      bool                    `json:"success"`
	Profile *models.DiscoverProfile `json:"profile,omitempty"`
}

func (ss *SwipeService) lockFor(key string) *sync.Mutex {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if lock, ok := ss.locks[key]; ok {
		return lock
	}
	lock := &sync.Mutex{}
	ss.locks[key] = lock
	return lock
}

// Swipe validates and records one swipe from userID toward targetID.
//
// The actor lock makes the quota check and the log append one unit for a
// given account; the pair lock prevents two concurrent reciprocal likes from
// both missing the other's record and creating duplicate matches. The actor
// lock is always taken before the pair lock.
func (ss *SwipeService) Swipe(ctx context.Context, userID, targetID, action string) (*SwipeResult, error) {
	actorLock := ss.lockFor("actor:" + userID)
	actorLock.Lock()
	defer actorLock.Unlock()
	pairLock := ss.lockFor("pair:" + utils.PairKey(userID, targetID))
	pairLock.Lock()
	defer pairLock.Unlock()

	account, err := ss.Store.GetAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	limits := models.FeatureLimitsFor(account.SubscriptionTier)

	switch action {
	case models.SwipeActionLike:
		// The quota check runs before the append so the log never holds a
		// quota-violating entry.
		if limits.DailyLikes != models.UnlimitedLikes {
			recent, err := ss.recentLikeCount(ctx, userID)
			if err != nil {
				return nil, err
			}
			if recent >= limits.DailyLikes {
				return nil, ErrLikeLimitReached
			}
		}
	case models.SwipeActionSuperLike:
		if account.SuperLikes <= 0 {
			return nil, ErrInsufficientSuperLikes
		}
		account.SuperLikes--
		if err := ss.Store.PutAccount(ctx, *account); err != nil {
			return nil, fmt.Errorf("failed to consume super like: %w", err)
		}
	}

	if err := ss.Store.AppendSwipe(ctx, models.SwipeEvent{
		ActorID:   userID,
		TargetID:  targetID,
		Action:    action,
		CreatedAt: time.Now(),
	}); err != nil {
		return nil, fmt.Errorf("failed to record swipe: %w", err)
	}

	if action == models.SwipeActionPass {
		return &SwipeResult{}, nil
	}

	// Did the target already like us?
	reciprocal, err := ss.Store.MatchFrom(ctx, targetID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up reciprocal like: %w", err)
	}
	if reciprocal != nil && reciprocal.Pending() {
		reciprocal.Status = models.MatchStatusMatched
		if err := ss.Store.PutMatch(ctx, *reciprocal); err != nil {
			return nil, fmt.Errorf("failed to resolve match: %w", err)
		}
		viewerProfile, err := ss.Store.GetProfile(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch viewer profile: %w", err)
		}
		matchedProfile, err := ss.Store.GetProfile(ctx, targetID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch matched profile: %w", err)
		}
		log.Printf("💘 Match between %s and %s", userID, targetID)
		return &SwipeResult{
			Matched:        true,
			Icebreaker:     Icebreaker(viewerProfile, matchedProfile),
			MatchedProfile: matchedProfile,
		}, nil
	}

	status := models.MatchStatusPending
	if action == models.SwipeActionSuperLike {
		status = models.MatchStatusSuperLike
	}
	if err := ss.Store.PutMatch(ctx, models.MatchRecord{
		MatchID:   uuid.NewString(),
		User1ID:   userID,
		User2ID:   targetID,
		Status:    status,
		CreatedAt: time.Now(),
	}); err != nil {
		return nil, fmt.Errorf("failed to record like: %w", err)
	}
	return &SwipeResult{}, nil
}

// Rewind undoes the viewer's most recent swipe. It removes the event from
// the log and deletes the pending like it created; a record that already
// resolved to matched is never reversed. A viewer with no swipe history gets
// success=false with no mutation.
func (ss *SwipeService) Rewind(ctx context.Context, userID string) (*RewindResult, error) {
	account, err := ss.Store.GetAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if !models.FeatureLimitsFor(account.SubscriptionTier).Rewind {
		return nil, ErrRewindNotAllowed
	}

	actorLock := ss.lockFor("actor:" + userID)
	actorLock.Lock()
	defer actorLock.Unlock()

	swipes, err := ss.Store.SwipesByActor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch swipe history: %w", err)
	}
	if len(swipes) == 0 {
		return &RewindResult{}, nil
	}
	last := swipes[0]
	for _, swipe := range swipes[1:] {
		if swipe.CreatedAt.After(last.CreatedAt) {
			last = swipe
		}
	}

	if err := ss.Store.DeleteSwipe(ctx, userID, last.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to remove swipe: %w", err)
	}

	if last.Action != models.SwipeActionPass {
		record, err := ss.Store.MatchFrom(ctx, userID, last.TargetID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up match record: %w", err)
		}
		if record != nil && record.Pending() {
			if err := ss.Store.DeleteMatch(ctx, record.MatchID); err != nil {
				return nil, fmt.Errorf("failed to remove match record: %w", err)
			}
		}
	}

	profile, err := ss.Store.GetProfile(ctx, last.TargetID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch restored profile: %w", err)
	}
	if profile == nil {
		return &RewindResult{}, nil
	}
	viewerProfile, err := ss.Store.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch viewer profile: %w", err)
	}
	score := 0
	if viewerProfile != nil {
		score = CompatibilityScore(viewerProfile.QuizAnswers, profile.QuizAnswers)
	}
	return &RewindResult{
		OK:      true,
		Profile: &models.DiscoverProfile{Profile: *profile, CompatibilityScore: score},
	}, nil
}

func (ss *SwipeService) recentLikeCount(ctx context.Context, userID string) (int, error) {
	swipes, err := ss.Store.SwipesByActor(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch swipe history: %w", err)
	}
	cutoff := time.Now().Add(-24 * time.Hour)
	count := 0
	for _, swipe := range swipes {
		if swipe.Action == models.SwipeActionLike && swipe.CreatedAt.After(cutoff) {
			count++
		}
	}
	return count, nil
}

// Icebreaker builds the conversation starter shown when a match forms. It
// names the first shared interest, or falls back to a generic greeting.
func Icebreaker(viewer, matched *models.Profile) string {
	if viewer != nil && matched != nil {
		for _, interest := range viewer.Interests {
			for _, other := range matched.Interests {
				if interest == other {
					return fmt.Sprintf("You both like %s! What's your favorite thing about it?", interest)
				}
			}
		}
	}
	name := "your match"
	if matched != nil {
		name = matched.Name
	}
	return fmt.Sprintf("You and %s seem to have a lot in common. Say hello!", name)
}
