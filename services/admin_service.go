package services

import (
	"context"
	"fmt"
	"time"

	"lovelink_server/models"
)

// AdminService aggregates the counters shown on the admin dashboard
type AdminService struct {
	Store Store
}

// Metrics is the admin dashboard snapshot
type Metrics struct {
	TotalAccounts  int            `json:"totalAccounts"`
	TotalProfiles  int            `json:"totalProfiles"`
	TotalMatches   int            `json:"totalMatches"`
	TotalMessages  int            `json:"totalMessages"`
	SwipesLast24h  int            `json:"swipesLast24h"`
	AccountsByTier map[string]int `json:"accountsByTier"`
}

// GetMetrics computes a fresh snapshot across all collections
func (as *AdminService) GetMetrics(ctx context.Context) (*Metrics, error) {
	accounts, err := as.Store.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	profiles, err := as.Store.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	matches, err := as.Store.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	messageCount, err := as.Store.CountMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}
	recentSwipes, err := as.Store.CountSwipesSince(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to count swipes: %w", err)
	}

	metrics := &Metrics{
		TotalAccounts:  len(accounts),
		TotalProfiles:  len(profiles),
		TotalMessages:  messageCount,
		SwipesLast24h:  recentSwipes,
		AccountsByTier: map[string]int{},
	}
	for _, account := range accounts {
		metrics.AccountsByTier[account.SubscriptionTier]++
	}
	for _, match := range matches {
		if match.Status == models.MatchStatusMatched {
			metrics.TotalMatches++
		}
	}
	return metrics, nil
}
