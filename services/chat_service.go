package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"lovelink_server/models"

	"github.com/google/uuid"
)

// ChatService stores and projects per-pair message threads
type ChatService struct {
	Store Store
}

// SendMessage appends a message to the pair's thread. New messages start
// unread. A non-empty giftID must name a catalog gift.
func (cs *ChatService) SendMessage(ctx context.Context, senderID, receiverID, content, giftID string) (*models.Message, error) {
	if giftID != "" && models.GiftByID(giftID) == nil {
		return nil, fmt.Errorf("unknown gift '%s'", giftID)
	}
	message := models.Message{
		MessageID:  uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		GiftID:     giftID,
		CreatedAt:  time.Now(),
		Read:       false,
	}
	if err := cs.Store.SaveMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	log.Printf("📩 Message %s → %s stored", senderID, receiverID)
	return &message, nil
}

// GetConversation returns the counterpart's profile and the full thread in
// chronological order
func (cs *ChatService) GetConversation(ctx context.Context, userID, targetID string) (*models.Profile, []models.Message, error) {
	profile, err := cs.Store.GetProfile(ctx, targetID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	if profile == nil {
		return nil, nil, ErrProfileNotFound
	}
	messages, err := cs.Store.MessagesBetween(ctx, userID, targetID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch conversation: %w", err)
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return profile, messages, nil
}

// MarkMessagesRead flips the read flag on messages the target sent to the
// user. Messages the user authored are untouched.
func (cs *ChatService) MarkMessagesRead(ctx context.Context, userID, targetID string) error {
	messages, err := cs.Store.MessagesBetween(ctx, userID, targetID)
	if err != nil {
		return fmt.Errorf("failed to fetch conversation: %w", err)
	}
	for _, message := range messages {
		if message.ReceiverID != userID || message.Read {
			continue
		}
		message.Read = true
		if err := cs.Store.SaveMessage(ctx, message); err != nil {
			return fmt.Errorf("failed to mark message read: %w", err)
		}
	}
	return nil
}
