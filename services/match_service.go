package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/JAMAL4664jfk/studentKonnect-sub000/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// MatchOutcome reports what a detection run found. Exactly one of Matched and
// AlreadyMatched is set when a mutual accept exists; both are false when the
// reverse edge is absent (or unreadable, which is treated the same way).
// CounterpartName is what the actor's celebration shows; ActorName is what
// the counterpart's celebration shows.
type MatchOutcome struct {
	Matched         bool
	AlreadyMatched  bool
	Match           *models.Match
	CounterpartName string
	ActorName       string
}

type MatchService struct {
	Dynamo DB
}

// DetectMatch runs after an accept edge actorID -> targetID has been
// recorded. It checks the reverse accept edge and, if present, creates the
// match row for the unordered pair. Both sides may run this concurrently;
// the pairKey condition makes the second insert collide, and that collision
// is reported as AlreadyMatched rather than an error.
//
// A failure on the reverse-edge query is fail-closed: it logs and reports
// "no match". It never fabricates a match; detection simply waits for a
// later accept by either side.
func (s *MatchService) DetectMatch(ctx context.Context, actorID, targetID string) (*MatchOutcome, error) {
	reverse, err := s.reverseAccept(ctx, actorID, targetID)
	if err != nil {
		log.Printf("❌ Match detection query failed for %s <- %s: %v", actorID, targetID, err)
		return &MatchOutcome{}, nil
	}
	if !reverse {
		log.Printf("⚠️ No reverse accept from %s to %s yet", targetID, actorID)
		return &MatchOutcome{}, nil
	}

	user1, user2 := models.SortPair(actorID, targetID)
	match := models.Match{
		PairKey:   models.PairKey(actorID, targetID),
		MatchID:   uuid.NewString(),
		User1ID:   user1,
		User2ID:   user2,
		Status:    models.MatchStatusActive,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	err = s.Dynamo.PutItemIfNotExists(ctx, models.MatchesTable, match, "attribute_not_exists(pairKey)")
	if err != nil {
		if errors.Is(err, ErrConditionalCheckFailed) {
			log.Printf("⚠️ Match for %s and %s already exists, skipping duplicate", actorID, targetID)
			existing, getErr := s.GetMatchByPair(ctx, actorID, targetID)
			if getErr != nil {
				log.Printf("❌ Failed to read back existing match: %v", getErr)
				return &MatchOutcome{AlreadyMatched: true}, nil
			}
			return &MatchOutcome{AlreadyMatched: true, Match: existing}, nil
		}
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	log.Printf("🎉 Match created: %s ❤️ %s", user1, user2)
	return &MatchOutcome{
		Matched:         true,
		Match:           &match,
		CounterpartName: s.displayName(ctx, targetID),
		ActorName:       s.displayName(ctx, actorID),
	}, nil
}

// reverseAccept reports whether targetID has an accept edge pointing at
// actorID.
func (s *MatchService) reverseAccept(ctx context.Context, actorID, targetID string) (bool, error) {
	key := map[string]types.AttributeValue{
		"actorId":  &types.AttributeValueMemberS{Value: targetID},
		"targetId": &types.AttributeValueMemberS{Value: actorID},
	}

	item, err := s.Dynamo.GetItem(ctx, models.InteractionsTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return false, nil
		}
		return false, err
	}

	var interaction models.Interaction
	if err := attributevalue.UnmarshalMap(item, &interaction); err != nil {
		return false, fmt.Errorf("failed to unmarshal reverse edge: %w", err)
	}
	return interaction.Action == models.ActionAccept, nil
}

// GetMatchByPair fetches the match row for an unordered pair.
func (s *MatchService) GetMatchByPair(ctx context.Context, a, b string) (*models.Match, error) {
	key := map[string]types.AttributeValue{
		"pairKey": &types.AttributeValueMemberS{Value: models.PairKey(a, b)},
	}

	item, err := s.Dynamo.GetItem(ctx, models.MatchesTable, key)
	if err != nil {
		return nil, err
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(item, &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}
	return &match, nil
}

// ListMatches returns the user's matches with counterpart display metadata,
// reading both pair slots via their GSIs.
func (s *MatchService) ListMatches(ctx context.Context, userID string) ([]models.MatchWithProfile, error) {
	var matches []models.Match
	for _, q := range []struct {
		index     string
		condition string
	}{
		{models.MatchUser1Index, "user1Id = :user"},
		{models.MatchUser2Index, "user2Id = :user"},
	} {
		expressionValues := map[string]types.AttributeValue{
			":user": &types.AttributeValueMemberS{Value: userID},
		}
		items, err := s.Dynamo.QueryAllItemsWithIndex(ctx, models.MatchesTable, q.index, q.condition, expressionValues, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch matches: %w", err)
		}
		for _, item := range items {
			var match models.Match
			if err := attributevalue.UnmarshalMap(item, &match); err != nil {
				log.Printf("❌ Error unmarshalling match: %v", err)
				continue
			}
			matches = append(matches, match)
		}
	}

	enriched := make([]models.MatchWithProfile, 0, len(matches))
	for _, match := range matches {
		counterpartID := match.Counterpart(userID)
		profile, err := s.counterpartProfile(ctx, counterpartID)
		if err != nil {
			log.Printf("⚠️ Counterpart profile %s unavailable: %v", counterpartID, err)
			profile = models.Profile{UserID: counterpartID}
		}
		enriched = append(enriched, models.MatchWithProfile{
			MatchID:     match.MatchID,
			CreatedAt:   match.CreatedAt,
			Counterpart: profile,
		})
	}
	return enriched, nil
}

func (s *MatchService) counterpartProfile(ctx context.Context, userID string) (models.Profile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.ProfilesTable, key)
	if err != nil {
		return models.Profile{}, err
	}

	var profile models.Profile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return models.Profile{}, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return profile, nil
}

// displayName resolves a name for the celebration notification. Falls back
// to the raw id when the profile cannot be read.
func (s *MatchService) displayName(ctx context.Context, userID string) string {
	profile, err := s.counterpartProfile(ctx, userID)
	if err != nil || profile.FullName == "" {
		return userID
	}
	return profile.FullName
}
