package models

// UnlimitedLikes is the sentinel for tiers without a daily like cap
const UnlimitedLikes = -1

// FeatureLimits are the tier-gated feature limits
type FeatureLimits struct {
	DailyLikes       int  `json:"dailyLikes"`
	SuperLikesPerDay int  `json:"superLikesPerDay"`
	SeeWhoLikedYou   bool `json:"seeWhoLikedYou"`
	Rewind           bool `json:"rewind"`
	BoostsPerMonth   int  `json:"boostPerMonth"`
}

var featureTable = map[string]FeatureLimits{
	TierFree:     {DailyLikes: 10, SuperLikesPerDay: 0, SeeWhoLikedYou: false, Rewind: false, BoostsPerMonth: 0},
	TierPlus:     {DailyLikes: 50, SuperLikesPerDay: 3, SeeWhoLikedYou: true, Rewind: true, BoostsPerMonth: 0},
	TierGold:     {DailyLikes: UnlimitedLikes, SuperLikesPerDay: 5, SeeWhoLikedYou: true, Rewind: true, BoostsPerMonth: 1},
	TierPlatinum: {DailyLikes: UnlimitedLikes, SuperLikesPerDay: 10, SeeWhoLikedYou: true, Rewind: true, BoostsPerMonth: 2},
}

// FeatureLimitsFor returns the limits for a subscription tier.
// Unknown tiers fall back to the free limits so a bad value never widens access.
func FeatureLimitsFor(tier string) FeatureLimits {
	if limits, ok := featureTable[tier]; ok {
		return limits
	}
	return featureTable[TierFree]
}
