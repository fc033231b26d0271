package services_test

import (
	"context"
	"testing"
	"time"

	"lovelink_server/models"
	"lovelink_server/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessageStartsUnread(t *testing.T) {
	ctx := context.Background()
	store := services.NewMemoryStore()
	chatService := &services.ChatService{Store: store}

	message, err := chatService.SendMessage(ctx, "alice", "bob", "hi bob", "")
	require.NoError(t, err)
	assert.NotEmpty(t, message.MessageID)
	assert.False(t, message.Read)

	stored, err := store.MessagesBetween(ctx, "alice", "bob")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "hi bob", stored[0].Content)
}

func TestSendMessageRejectsUnknownGift(t *testing.T) {
	chatService := &services.ChatService{Store: services.NewMemoryStore()}

	_, err := chatService.SendMessage(context.Background(), "alice", "bob", "", "sportscar")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown gift")
}

func TestSendMessageAcceptsCatalogGift(t *testing.T) {
	ctx := context.Background()
	chatService := &services.ChatService{Store: services.NewMemoryStore()}

	message, err := chatService.SendMessage(ctx, "alice", "bob", "", "teddy")
	require.NoError(t, err)
	assert.Equal(t, "teddy", message.GiftID)
}

func TestGetConversationOrderedOldestFirst(t *testing.T) {
	ctx := context.Background()
	store := services.NewMemoryStore()
	seedUser(t, store, "bob", models.TierFree, basicProfile("Bob", nil, nil))

	base := time.Now().Add(-time.Hour)
	for i, content := range []string{"first", "second", "third"} {
		require.NoError(t, store.SaveMessage(ctx, models.Message{
			MessageID: content, SenderID: "alice", ReceiverID: "bob",
			Content: content, CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	chatService := &services.ChatService{Store: store}
	profile, messages, err := chatService.GetConversation(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, "Bob", profile.Name)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "third", messages[2].Content)
}

func TestGetConversationUnknownTarget(t *testing.T) {
	chatService := &services.ChatService{Store: services.NewMemoryStore()}

	_, _, err := chatService.GetConversation(context.Background(), "alice", "ghost")
	assert.ErrorIs(t, err, services.ErrProfileNotFound)
}

func TestMarkMessagesReadOnlyFlipsInbound(t *testing.T) {
	ctx := context.Background()
	store := services.NewMemoryStore()
	require.NoError(t, store.SaveMessage(ctx, models.Message{
		MessageID: "inbound", SenderID: "bob", ReceiverID: "alice",
		Content: "for alice", CreatedAt: time.Now(),
	}))
	require.NoError(t, store.SaveMessage(ctx, models.Message{
		MessageID: "outbound", SenderID: "alice", ReceiverID: "bob",
		Content: "for bob", CreatedAt: time.Now(),
	}))

	chatService := &services.ChatService{Store: store}
	require.NoError(t, chatService.MarkMessagesRead(ctx, "alice", "bob"))

	messages, err := store.MessagesBetween(ctx, "alice", "bob")
	require.NoError(t, err)
	byID := map[string]models.Message{}
	for _, message := range messages {
		byID[message.MessageID] = message
	}
	assert.True(t, byID["inbound"].Read)
	assert.False(t, byID["outbound"].Read)
}
