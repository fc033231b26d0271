package models

import "time"

// SwipeEvent is one entry in the append-only swipe log
type SwipeEvent struct {
	ActorID   string    `dynamodbav:"actorId" json:"actorId"` // ✅ Partition Key
	TargetID  string    `dynamodbav:"targetId" json:"targetId"`
	Action    string    `dynamodbav:"action" json:"action"` // like, pass, superlike
	CreatedAt time.Time `dynamodbav:"createdAt" json:"createdAt"`
}

// SwipesTable is the DynamoDB table name for swipe events
const SwipesTable = "Swipes"
