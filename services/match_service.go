package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"lovelink_server/models"
)

// nudgeAfter is how stale an unanswered conversation gets before the
// matches list flags it for re-engagement.
const nudgeAfter = 72 * time.Hour

// MatchService derives the matches list and likes-you views from the raw
// match and message records.
type MatchService struct {
	Store Store
}

// ConversationSummary is one row of the matches screen
type ConversationSummary struct {
	MatchID     string         `json:"id"`
	Profile     models.Profile `json:"user"`
	LastMessage string         `json:"lastMessage"`
	Timestamp   time.Time      `json:"timestamp"`
	UnreadCount int            `json:"unreadCount"`
	NeedsNudge  bool           `json:"needsNudge"`
}

// GetCurrentMatches returns the viewer's matched conversations, most recent
// first. Blocked counterparts are excluded.
func (ms *MatchService) GetCurrentMatches(ctx context.Context, userID string) ([]ConversationSummary, error) {
	blocked, err := ms.blockedSet(ctx, userID)
	if err != nil {
		return nil, err
	}
	records, err := ms.Store.MatchesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match records: %w", err)
	}

	now := time.Now()
	summaries := make([]ConversationSummary, 0, len(records))
	for _, record := range records {
		if record.Status != models.MatchStatusMatched {
			continue
		}
		counterpartID := record.User1ID
		if counterpartID == userID {
			counterpartID = record.User2ID
		}
		if _, ok := blocked[counterpartID]; ok {
			continue
		}
		profile, err := ms.Store.GetProfile(ctx, counterpartID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch counterpart profile: %w", err)
		}
		if profile == nil {
			continue
		}

		messages, err := ms.Store.MessagesBetween(ctx, userID, counterpartID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch conversation: %w", err)
		}
		sort.SliceStable(messages, func(i, j int) bool {
			return messages[i].CreatedAt.Before(messages[j].CreatedAt)
		})

		summary := ConversationSummary{
			MatchID:     record.MatchID,
			Profile:     *profile,
			LastMessage: "You matched! Say hello.",
			Timestamp:   now,
		}
		if len(messages) > 0 {
			latest := messages[len(messages)-1]
			summary.LastMessage = previewText(latest, userID)
			summary.Timestamp = latest.CreatedAt
			summary.NeedsNudge = latest.SenderID != userID && now.Sub(latest.CreatedAt) > nudgeAfter
		}
		for _, message := range messages {
			if message.ReceiverID == userID && !message.Read {
				summary.UnreadCount++
			}
		}
		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Timestamp.After(summaries[j].Timestamp)
	})
	return summaries, nil
}

// GetUsersWhoLikedMe returns profiles with an unresolved like toward the
// viewer. Display gating by tier is the caller's concern, not enforced here.
func (ms *MatchService) GetUsersWhoLikedMe(ctx context.Context, userID string) ([]models.Profile, error) {
	blocked, err := ms.blockedSet(ctx, userID)
	if err != nil {
		return nil, err
	}
	records, err := ms.Store.MatchesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match records: %w", err)
	}

	profiles := []models.Profile{}
	for _, record := range records {
		if record.User2ID != userID || !record.Pending() {
			continue
		}
		if _, ok := blocked[record.User1ID]; ok {
			continue
		}
		profile, err := ms.Store.GetProfile(ctx, record.User1ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch liker profile: %w", err)
		}
		if profile != nil {
			profiles = append(profiles, *profile)
		}
	}
	return profiles, nil
}

func (ms *MatchService) blockedSet(ctx context.Context, userID string) (map[string]struct{}, error) {
	blocks, err := ms.Store.BlocksByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch block list: %w", err)
	}
	blocked := make(map[string]struct{}, len(blocks))
	for _, block := range blocks {
		blocked[block.BlockedID] = struct{}{}
	}
	return blocked, nil
}

// previewText renders the matches-list preview for the latest message.
// Gift messages render as sent/received a <gift name>.
func previewText(message models.Message, viewerID string) string {
	if message.GiftID != "" {
		name := message.GiftID
		if gift := models.GiftByID(message.GiftID); gift != nil {
			name = gift.Name
		}
		if message.SenderID == viewerID {
			return fmt.Sprintf("You sent a %s", name)
		}
		return fmt.Sprintf("Sent you a %s", name)
	}
	return message.Content
}
