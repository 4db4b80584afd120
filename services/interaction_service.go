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
)

// InteractionService records directional decisions exactly once per
// (actor, target) pair. The first write wins; retries and duplicate
// submissions come back as the already-stored edge.
type InteractionService struct {
	Dynamo DB
}

// RecordDecision persists (actorID -> targetID, action). The returned bool is
// true when this call stored the edge and false when an edge already existed,
// which callers treat as success (idempotent retry).
func (s *InteractionService) RecordDecision(ctx context.Context, actorID, targetID, action string) (*models.Interaction, bool, error) {
	if actorID == "" || targetID == "" {
		return nil, false, errors.New("actorId and targetId are required")
	}
	if actorID == targetID {
		return nil, false, errors.New("actor cannot decide on themselves")
	}
	if action != models.ActionAccept && action != models.ActionReject {
		return nil, false, fmt.Errorf("invalid action %q", action)
	}

	interaction := models.Interaction{
		ActorID:   actorID,
		TargetID:  targetID,
		Action:    action,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	err := s.Dynamo.PutItemIfNotExists(ctx, models.InteractionsTable, interaction, "attribute_not_exists(actorId)")
	if err != nil {
		if errors.Is(err, ErrConditionalCheckFailed) {
			log.Printf("⚠️ Decision %s -> %s already recorded, keeping the stored edge", actorID, targetID)
			existing, getErr := s.GetInteraction(ctx, actorID, targetID)
			if getErr != nil {
				// The edge exists but could not be read back. Still a success
				// for the caller's purposes.
				log.Printf("❌ Failed to read back existing decision %s -> %s: %v", actorID, targetID, getErr)
				return &interaction, false, nil
			}
			return existing, false, nil
		}
		log.Printf("❌ Failed to record decision %s -> %s: %v", actorID, targetID, err)
		return nil, false, err
	}

	log.Printf("✅ Decision recorded: %s -> %s (%s)", actorID, targetID, action)
	return &interaction, true, nil
}

// GetInteraction fetches the edge for an ordered pair, or ErrItemNotFound.
func (s *InteractionService) GetInteraction(ctx context.Context, actorID, targetID string) (*models.Interaction, error) {
	key := map[string]types.AttributeValue{
		"actorId":  &types.AttributeValueMemberS{Value: actorID},
		"targetId": &types.AttributeValueMemberS{Value: targetID},
	}

	item, err := s.Dynamo.GetItem(ctx, models.InteractionsTable, key)
	if err != nil {
		return nil, err
	}

	var interaction models.Interaction
	if err := attributevalue.UnmarshalMap(item, &interaction); err != nil {
		return nil, fmt.Errorf("failed to unmarshal interaction: %w", err)
	}
	return &interaction, nil
}

// DecidedTargets returns every target the actor already has an edge to,
// regardless of action. The queue provider excludes these, so the read must
// be exhaustive: a truncated page would re-show decided profiles.
func (s *InteractionService) DecidedTargets(ctx context.Context, actorID string) (map[string]bool, error) {
	keyCondition := "actorId = :actor"
	expressionValues := map[string]types.AttributeValue{
		":actor": &types.AttributeValueMemberS{Value: actorID},
	}

	items, err := s.Dynamo.QueryAllItems(ctx, models.InteractionsTable, keyCondition, expressionValues, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch decided targets: %w", err)
	}

	decided := make(map[string]bool, len(items))
	for _, item := range items {
		var interaction models.Interaction
		if err := attributevalue.UnmarshalMap(item, &interaction); err != nil {
			log.Printf("❌ Error unmarshalling interaction: %v", err)
			continue
		}
		decided[interaction.TargetID] = true
	}
	return decided, nil
}

// AdmirersOf returns the accept edges pointing at a user (used by the "who
// liked you" surface).
func (s *InteractionService) AdmirersOf(ctx context.Context, targetID string) ([]models.Interaction, error) {
	keyCondition := "targetId = :target"
	expressionValues := map[string]types.AttributeValue{
		":target": &types.AttributeValueMemberS{Value: targetID},
	}

	items, err := s.Dynamo.QueryAllItemsWithIndex(ctx, models.InteractionsTable, models.TargetIDIndex, keyCondition, expressionValues, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch admirers: %w", err)
	}

	var accepts []models.Interaction
	for _, item := range items {
		var interaction models.Interaction
		if err := attributevalue.UnmarshalMap(item, &interaction); err != nil {
			log.Printf("❌ Error unmarshalling interaction: %v", err)
			continue
		}
		if interaction.Action == models.ActionAccept {
			accepts = append(accepts, interaction)
		}
	}
	return accepts, nil
}
