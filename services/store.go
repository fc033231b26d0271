package services

import (
	"context"
	"time"

	"lovelink_server/models"
)

// Store is the persistence boundary every service is built against.
// DynamoStore backs it in production; MemoryStore backs demo mode and tests.
//
// Lookup conventions: single-record getters return (nil, nil) when the record
// does not exist, so callers can map absence to their own error kind.
type Store interface {
	GetAccount(ctx context.Context, userID string) (*models.Account, error)
	PutAccount(ctx context.Context, account models.Account) error
	ListAccounts(ctx context.Context) ([]models.Account, error)

	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	PutProfile(ctx context.Context, profile models.Profile) error
	ListProfiles(ctx context.Context) ([]models.Profile, error)

	// AppendSwipe adds to the append-only swipe log. DeleteSwipe removes the
	// single event keyed by (actorID, createdAt); rewind is the only caller.
	// Callers order the returned events themselves.
	AppendSwipe(ctx context.Context, swipe models.SwipeEvent) error
	SwipesByActor(ctx context.Context, actorID string) ([]models.SwipeEvent, error)
	DeleteSwipe(ctx context.Context, actorID string, createdAt time.Time) error
	CountSwipesSince(ctx context.Context, since time.Time) (int, error)

	// PutMatch upserts by MatchID. MatchFrom is the directional lookup:
	// the record created when user1 swiped on user2, regardless of status.
	PutMatch(ctx context.Context, match models.MatchRecord) error
	DeleteMatch(ctx context.Context, matchID string) error
	MatchFrom(ctx context.Context, user1ID, user2ID string) (*models.MatchRecord, error)
	MatchesByUser(ctx context.Context, userID string) ([]models.MatchRecord, error)
	ListMatches(ctx context.Context) ([]models.MatchRecord, error)

	// SaveMessage upserts by MessageID. MessagesBetween returns both
	// directions of a pair's thread; callers order by CreatedAt themselves.
	SaveMessage(ctx context.Context, message models.Message) error
	MessagesBetween(ctx context.Context, userID, otherID string) ([]models.Message, error)
	CountMessages(ctx context.Context) (int, error)

	AppendBlock(ctx context.Context, block models.BlockRecord) error
	BlocksByUser(ctx context.Context, blockerID string) ([]models.BlockRecord, error)

	AppendReport(ctx context.Context, report models.ReportRecord) error
}
