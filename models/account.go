package models

import "time"

// Account holds login identity, subscription tier and consumable balances.
// Profile attributes live separately in the Profiles table.
type Account struct {
	UserID           string    `dynamodbav:"userId" json:"userId"`
	Email            string    `dynamodbav:"email" json:"email"`
	ProfileComplete  bool      `dynamodbav:"profileComplete" json:"profileComplete"`
	SubscriptionTier string    `dynamodbav:"subscriptionTier" json:"subscriptionTier"`
	SuperLikes       int       `dynamodbav:"superLikes" json:"superLikes"`
	Boosts           int       `dynamodbav:"boosts" json:"boosts"`
	BoostActive      bool      `dynamodbav:"boostActive" json:"boostActive"`
	BoostExpiresAt   time.Time `dynamodbav:"boostExpiresAt,omitempty" json:"boostExpiresAt,omitempty"`
}

// BoostActiveAt reports whether the account's boost is live at the given time.
// Boost expiry is polled against this timestamp rather than cleared by a timer.
func (a *Account) BoostActiveAt(t time.Time) bool {
	return a.BoostActive && t.Before(a.BoostExpiresAt)
}

// AccountsTable is the DynamoDB table name for accounts
const AccountsTable = "Accounts"
