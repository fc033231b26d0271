package models

import "time"

// Message is one entry in a pair's conversation. GiftID references the
// virtual gift catalog when the message is a gift rather than text.
type Message struct {
	MessageID  string    `dynamodbav:"messageId" json:"messageId"`
	SenderID   string    `dynamodbav:"senderId" json:"senderId"`
	ReceiverID string    `dynamodbav:"receiverId" json:"receiverId"`
	Content    string    `dynamodbav:"content" json:"content"`
	GiftID     string    `dynamodbav:"giftId,omitempty" json:"giftId,omitempty"`
	CreatedAt  time.Time `dynamodbav:"createdAt" json:"createdAt"`
	Read       bool      `dynamodbav:"read" json:"read"`
}

// MessagesTable is the DynamoDB table name for messages
const MessagesTable = "Messages"
