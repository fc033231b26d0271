package models

import "time"

// MatchRecord tracks a one-way like until it resolves into a mutual match.
// User1 is always the account that swiped first; User2 is the liked party.
type MatchRecord struct {
	MatchID   string    `dynamodbav:"matchId" json:"matchId"`
	User1ID   string    `dynamodbav:"user1Id" json:"user1Id"`
	User2ID   string    `dynamodbav:"user2Id" json:"user2Id"`
	Status    string    `dynamodbav:"status" json:"status"` // pending, superlike, matched
	CreatedAt time.Time `dynamodbav:"createdAt" json:"createdAt"`
}

// Pending reports whether the record still awaits reciprocity.
func (m *MatchRecord) Pending() bool {
	return m.Status == MatchStatusPending || m.Status == MatchStatusSuperLike
}

// MatchesTable is the DynamoDB table name for match records
const MatchesTable = "Matches"
