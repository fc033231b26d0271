package services

import (
	"context"
	"fmt"
	"time"

	"lovelink_server/models"
	"lovelink_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// GSI names used by the store
const (
	MatchUser1Index  = "user1Id-index"
	MatchUser2Index  = "user2Id-index"
	MessagePairIndex = "pairKey-index"
)

// DynamoStore implements Store on DynamoDB.
//
// Table keys: Accounts/Profiles are keyed by userId, Swipes by
// (actorId, createdAt), Matches by matchId with GSIs on user1Id and user2Id,
// Messages by messageId with a GSI on a normalized pairKey attribute,
// Blocks by (blockerId, blockedId), Reports by reportId.
type DynamoStore struct {
	Dynamo *DynamoService
}

// messageItem decorates a Message with the pair key the GSI is built on
type messageItem struct {
	models.Message
	PairKey string `dynamodbav:"pairKey"`
}

func (s *DynamoStore) GetAccount(ctx context.Context, userID string) (*models.Account, error) {
	item, err := s.Dynamo.GetItem(ctx, models.AccountsTable, map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	})
	if err != nil || item == nil {
		return nil, err
	}
	var account models.Account
	if err := attributevalue.UnmarshalMap(item, &account); err != nil {
		return nil, fmt.Errorf("failed to parse account: %w", err)
	}
	return &account, nil
}

func (s *DynamoStore) PutAccount(ctx context.Context, account models.Account) error {
	item, err := attributevalue.MarshalMap(account)
	if err != nil {
		return fmt.Errorf("failed to marshal account: %w", err)
	}
	return s.Dynamo.PutItem(ctx, models.AccountsTable, item)
}

func (s *DynamoStore) ListAccounts(ctx context.Context) ([]models.Account, error) {
	items, err := s.Dynamo.ScanItems(ctx, models.AccountsTable)
	if err != nil {
		return nil, err
	}
	var accounts []models.Account
	if err := attributevalue.UnmarshalListOfMaps(items, &accounts); err != nil {
		return nil, fmt.Errorf("failed to parse accounts: %w", err)
	}
	return accounts, nil
}

func (s *DynamoStore) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	item, err := s.Dynamo.GetItem(ctx, models.ProfilesTable, map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	})
	if err != nil || item == nil {
		return nil, err
	}
	var profile models.Profile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &profile, nil
}

func (s *DynamoStore) PutProfile(ctx context.Context, profile models.Profile) error {
	item, err := attributevalue.MarshalMap(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	return s.Dynamo.PutItem(ctx, models.ProfilesTable, item)
}

func (s *DynamoStore) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	items, err := s.Dynamo.ScanItems(ctx, models.ProfilesTable)
	if err != nil {
		return nil, err
	}
	var profiles []models.Profile
	if err := attributevalue.UnmarshalListOfMaps(items, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse profiles: %w", err)
	}
	return profiles, nil
}

func (s *DynamoStore) AppendSwipe(ctx context.Context, swipe models.SwipeEvent) error {
	item, err := attributevalue.MarshalMap(swipe)
	if err != nil {
		return fmt.Errorf("failed to marshal swipe: %w", err)
	}
	return s.Dynamo.PutItem(ctx, models.SwipesTable, item)
}

func (s *DynamoStore) SwipesByActor(ctx context.Context, actorID string) ([]models.SwipeEvent, error) {
	items, err := s.Dynamo.QueryItems(ctx, models.SwipesTable,
		"actorId = :actorId",
		map[string]types.AttributeValue{
			":actorId": &types.AttributeValueMemberS{Value: actorID},
		}, nil)
	if err != nil {
		return nil, err
	}
	var swipes []models.SwipeEvent
	if err := attributevalue.UnmarshalListOfMaps(items, &swipes); err != nil {
		return nil, fmt.Errorf("failed to parse swipes: %w", err)
	}
	return swipes, nil
}

func (s *DynamoStore) DeleteSwipe(ctx context.Context, actorID string, createdAt time.Time) error {
	return s.Dynamo.DeleteItem(ctx, models.SwipesTable, map[string]types.AttributeValue{
		"actorId":   &types.AttributeValueMemberS{Value: actorID},
		"createdAt": &types.AttributeValueMemberS{Value: createdAt.Format(time.RFC3339Nano)},
	})
}

func (s *DynamoStore) CountSwipesSince(ctx context.Context, since time.Time) (int, error) {
	items, err := s.Dynamo.ScanItems(ctx, models.SwipesTable)
	if err != nil {
		return 0, err
	}
	var swipes []models.SwipeEvent
	if err := attributevalue.UnmarshalListOfMaps(items, &swipes); err != nil {
		return 0, fmt.Errorf("failed to parse swipes: %w", err)
	}
	count := 0
	for _, swipe := range swipes {
		if swipe.CreatedAt.After(since) {
			count++
		}
	}
	return count, nil
}

func (s *DynamoStore) PutMatch(ctx context.Context, match models.MatchRecord) error {
	item, err := attributevalue.MarshalMap(match)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}
	return s.Dynamo.PutItem(ctx, models.MatchesTable, item)
}

func (s *DynamoStore) DeleteMatch(ctx context.Context, matchID string) error {
	return s.Dynamo.DeleteItem(ctx, models.MatchesTable, map[string]types.AttributeValue{
		"matchId": &types.AttributeValueMemberS{Value: matchID},
	})
}

func (s *DynamoStore) MatchFrom(ctx context.Context, user1ID, user2ID string) (*models.MatchRecord, error) {
	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.MatchesTable, MatchUser1Index,
		"user1Id = :user1Id",
		map[string]types.AttributeValue{
			":user1Id": &types.AttributeValueMemberS{Value: user1ID},
		}, nil)
	if err != nil {
		return nil, err
	}
	var matches []models.MatchRecord
	if err := attributevalue.UnmarshalListOfMaps(items, &matches); err != nil {
		return nil, fmt.Errorf("failed to parse matches: %w", err)
	}
	for i := range matches {
		if matches[i].User2ID == user2ID {
			return &matches[i], nil
		}
	}
	return nil, nil
}

func (s *DynamoStore) MatchesByUser(ctx context.Context, userID string) ([]models.MatchRecord, error) {
	var matches []models.MatchRecord
	seen := map[string]struct{}{}
	for _, index := range []struct {
		name string
		attr string
	}{
		{MatchUser1Index, "user1Id"},
		{MatchUser2Index, "user2Id"},
	} {
		items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.MatchesTable, index.name,
			fmt.Sprintf("%s = :userId", index.attr),
			map[string]types.AttributeValue{
				":userId": &types.AttributeValueMemberS{Value: userID},
			}, nil)
		if err != nil {
			return nil, err
		}
		var page []models.MatchRecord
		if err := attributevalue.UnmarshalListOfMaps(items, &page); err != nil {
			return nil, fmt.Errorf("failed to parse matches: %w", err)
		}
		for _, match := range page {
			if _, ok := seen[match.MatchID]; ok {
				continue
			}
			seen[match.MatchID] = struct{}{}
			matches = append(matches, match)
		}
	}
	return matches, nil
}

func (s *DynamoStore) ListMatches(ctx context.Context) ([]models.MatchRecord, error) {
	items, err := s.Dynamo.ScanItems(ctx, models.MatchesTable)
	if err != nil {
		return nil, err
	}
	var matches []models.MatchRecord
	if err := attributevalue.UnmarshalListOfMaps(items, &matches); err != nil {
		return nil, fmt.Errorf("failed to parse matches: %w", err)
	}
	return matches, nil
}

func (s *DynamoStore) SaveMessage(ctx context.Context, message models.Message) error {
	item, err := attributevalue.MarshalMap(messageItem{
		Message: message,
		PairKey: utils.PairKey(message.SenderID, message.ReceiverID),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	return s.Dynamo.PutItem(ctx, models.MessagesTable, item)
}

func (s *DynamoStore) MessagesBetween(ctx context.Context, userID, otherID string) ([]models.Message, error) {
	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.MessagesTable, MessagePairIndex,
		"pairKey = :pairKey",
		map[string]types.AttributeValue{
			":pairKey": &types.AttributeValueMemberS{Value: utils.PairKey(userID, otherID)},
		}, nil)
	if err != nil {
		return nil, err
	}
	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}
	return messages, nil
}

func (s *DynamoStore) CountMessages(ctx context.Context) (int, error) {
	items, err := s.Dynamo.ScanItems(ctx, models.MessagesTable)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func (s *DynamoStore) AppendBlock(ctx context.Context, block models.BlockRecord) error {
	item, err := attributevalue.MarshalMap(block)
	if err != nil {
		return fmt.Errorf("failed to marshal block: %w", err)
	}
	return s.Dynamo.PutItem(ctx, models.BlocksTable, item)
}

func (s *DynamoStore) BlocksByUser(ctx context.Context, blockerID string) ([]models.BlockRecord, error) {
	items, err := s.Dynamo.QueryItems(ctx, models.BlocksTable,
		"blockerId = :blockerId",
		map[string]types.AttributeValue{
			":blockerId": &types.AttributeValueMemberS{Value: blockerID},
		}, nil)
	if err != nil {
		return nil, err
	}
	var blocks []models.BlockRecord
	if err := attributevalue.UnmarshalListOfMaps(items, &blocks); err != nil {
		return nil, fmt.Errorf("failed to parse blocks: %w", err)
	}
	return blocks, nil
}

func (s *DynamoStore) AppendReport(ctx context.Context, report models.ReportRecord) error {
	item, err := attributevalue.MarshalMap(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	return s.Dynamo.PutItem(ctx, models.ReportsTable, item)
}
