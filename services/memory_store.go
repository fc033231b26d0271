package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"lovelink_server/models"
)

// MemoryStore keeps every collection in process memory. It backs demo mode
// (the seeded profiles below) and the service tests; DynamoStore is the
// production implementation of the same interface.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]models.Account
	profiles map[string]models.Profile
	swipes   []models.SwipeEvent
	matches  map[string]models.MatchRecord
	messages map[string]models.Message
	blocks   []models.BlockRecord
	reports  []models.ReportRecord
}

// NewMemoryStore returns an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: map[string]models.Account{},
		profiles: map[string]models.Profile{},
		matches:  map[string]models.MatchRecord{},
		messages: map[string]models.Message{},
	}
}

func (ms *MemoryStore) GetAccount(ctx context.Context, userID string) (*models.Account, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	if account, ok := ms.accounts[userID]; ok {
		return &account, nil
	}
	return nil, nil
}

func (ms *MemoryStore) PutAccount(ctx context.Context, account models.Account) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.accounts[account.UserID] = account
	return nil
}

func (ms *MemoryStore) ListAccounts(ctx context.Context) ([]models.Account, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	accounts := make([]models.Account, 0, len(ms.accounts))
	for _, account := range ms.accounts {
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func (ms *MemoryStore) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	if profile, ok := ms.profiles[userID]; ok {
		return &profile, nil
	}
	return nil, nil
}

func (ms *MemoryStore) PutProfile(ctx context.Context, profile models.Profile) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.profiles[profile.UserID] = profile
	return nil
}

func (ms *MemoryStore) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	profiles := make([]models.Profile, 0, len(ms.profiles))
	for _, profile := range ms.profiles {
		profiles = append(profiles, profile)
	}
	// Map order is random; keep listings stable for callers that sort on top.
	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].UserID < profiles[j].UserID
	})
	return profiles, nil
}

func (ms *MemoryStore) AppendSwipe(ctx context.Context, swipe models.SwipeEvent) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.swipes = append(ms.swipes, swipe)
	return nil
}

func (ms *MemoryStore) SwipesByActor(ctx context.Context, actorID string) ([]models.SwipeEvent, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	var swipes []models.SwipeEvent
	for _, swipe := range ms.swipes {
		if swipe.ActorID == actorID {
			swipes = append(swipes, swipe)
		}
	}
	sort.SliceStable(swipes, func(i, j int) bool {
		return swipes[i].CreatedAt.Before(swipes[j].CreatedAt)
	})
	return swipes, nil
}

func (ms *MemoryStore) DeleteSwipe(ctx context.Context, actorID string, createdAt time.Time) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for i, swipe := range ms.swipes {
		if swipe.ActorID == actorID && swipe.CreatedAt.Equal(createdAt) {
			ms.swipes = append(ms.swipes[:i], ms.swipes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (ms *MemoryStore) CountSwipesSince(ctx context.Context, since time.Time) (int, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	count := 0
	for _, swipe := range ms.swipes {
		if swipe.CreatedAt.After(since) {
			count++
		}
	}
	return count, nil
}

func (ms *MemoryStore) PutMatch(ctx context.Context, match models.MatchRecord) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.matches[match.MatchID] = match
	return nil
}

func (ms *MemoryStore) DeleteMatch(ctx context.Context, matchID string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.matches, matchID)
	return nil
}

func (ms *MemoryStore) MatchFrom(ctx context.Context, user1ID, user2ID string) (*models.MatchRecord, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	for _, match := range ms.matches {
		if match.User1ID == user1ID && match.User2ID == user2ID {
			m := match
			return &m, nil
		}
	}
	return nil, nil
}

func (ms *MemoryStore) MatchesByUser(ctx context.Context, userID string) ([]models.MatchRecord, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	var matches []models.MatchRecord
	for _, match := range ms.matches {
		if match.User1ID == userID || match.User2ID == userID {
			matches = append(matches, match)
		}
	}
	return matches, nil
}

func (ms *MemoryStore) ListMatches(ctx context.Context) ([]models.MatchRecord, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	matches := make([]models.MatchRecord, 0, len(ms.matches))
	for _, match := range ms.matches {
		matches = append(matches, match)
	}
	return matches, nil
}

func (ms *MemoryStore) SaveMessage(ctx context.Context, message models.Message) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.messages[message.MessageID] = message
	return nil
}

func (ms *MemoryStore) MessagesBetween(ctx context.Context, userID, otherID string) ([]models.Message, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	var messages []models.Message
	for _, message := range ms.messages {
		if (message.SenderID == userID && message.ReceiverID == otherID) ||
			(message.SenderID == otherID && message.ReceiverID == userID) {
			messages = append(messages, message)
		}
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return messages, nil
}

func (ms *MemoryStore) CountMessages(ctx context.Context) (int, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.messages), nil
}

func (ms *MemoryStore) AppendBlock(ctx context.Context, block models.BlockRecord) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.blocks = append(ms.blocks, block)
	return nil
}

func (ms *MemoryStore) BlocksByUser(ctx context.Context, blockerID string) ([]models.BlockRecord, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	var blocks []models.BlockRecord
	for _, block := range ms.blocks {
		if block.BlockerID == blockerID {
			blocks = append(blocks, block)
		}
	}
	return blocks, nil
}

func (ms *MemoryStore) AppendReport(ctx context.Context, report models.ReportRecord) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.reports = append(ms.reports, report)
	return nil
}

// SeedDemoData loads the demo accounts and profiles, plus one pending like so
// the "Likes You" screen has content out of the box.
func (ms *MemoryStore) SeedDemoData(ctx context.Context) error {
	seeds := []models.Profile{
		{Name: "Sophia", Age: 28, Bio: "Lover of art, travel, and quiet nights in. Looking for a genuine connection.", Location: "New York, NY", Interests: []string{"Art", "Travel", "Cooking"}, QuizAnswers: map[string]string{"q1": "a", "q2": "c", "q3": "d"}},
		{Name: "Liam", Age: 31, Bio: "Software engineer by day, musician by night. Let's grab a coffee and see where it goes.", Location: "San Francisco, CA", Interests: []string{"Music", "Hiking", "Tech"}, QuizAnswers: map[string]string{"q1": "c", "q2": "b", "q3": "c"}},
		{Name: "Olivia", Age: 26, Bio: "Adventurous soul who loves hiking, photography, and my golden retriever. Seeking a partner in crime.", Location: "Denver, CO", Interests: []string{"Hiking", "Photography", "Dogs"}, QuizAnswers: map[string]string{"q1": "c", "q2": "d", "q3": "b"}},
		{Name: "Noah", Age: 29, Bio: "Fitness enthusiast and foodie. I can cook you a great meal or join you for a marathon.", Location: "Miami, FL", Interests: []string{"Fitness", "Food", "Beach"}, QuizAnswers: map[string]string{"q1": "b", "q2": "a", "q3": "b"}},
		{Name: "Ava", Age: 27, Bio: "Bookworm, aspiring writer, and lover of all things vintage. Tell me about the last book you read.", Location: "Chicago, IL", Interests: []string{"Reading", "Writing", "History"}, QuizAnswers: map[string]string{"q1": "a", "q2": "c", "q3": "a"}},
	}

	for i, profile := range seeds {
		userID := fmt.Sprintf("seed_user_%d", i+1)
		profile.UserID = userID
		profile.IsDemo = true
		account := models.Account{
			UserID:           userID,
			Email:            strings.ToLower(profile.Name) + "@example.com",
			ProfileComplete:  true,
			SubscriptionTier: models.TierFree,
			SuperLikes:       5,
			Boosts:           1,
		}
		if err := ms.PutAccount(ctx, account); err != nil {
			return err
		}
		if err := ms.PutProfile(ctx, profile); err != nil {
			return err
		}
	}

	// Olivia already likes Liam
	if err := ms.PutMatch(ctx, models.MatchRecord{
		MatchID:   "seed_like_1",
		User1ID:   "seed_user_3",
		User2ID:   "seed_user_2",
		Status:    models.MatchStatusPending,
		CreatedAt: time.Now(),
	}); err != nil {
		return err
	}

	log.Printf("✅ Seeded %d demo profiles", len(seeds))
	return nil
}
