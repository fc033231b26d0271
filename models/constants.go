package models

// ✅ Swipe actions
const (
	SwipeActionLike      = "like"
	SwipeActionPass      = "pass"
	SwipeActionSuperLike = "superlike"
)

// ✅ Match record statuses
const (
	MatchStatusPending   = "pending"
	MatchStatusSuperLike = "superlike"
	MatchStatusMatched   = "matched"
)

// ✅ Subscription tiers
const (
	TierFree     = "free"
	TierPlus     = "plus"
	TierGold     = "gold"
	TierPlatinum = "platinum"
)
