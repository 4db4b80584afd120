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

// ConversationService bootstraps the single canonical conversation for a
// participant pair. It is feature-agnostic: the dating match path and the
// marketplace "contact seller" path both go through FindOrCreate.
type ConversationService struct {
	Dynamo DB
}

// FindOrCreate returns the conversation for the unordered pair (idA, idB),
// creating it if none exists. The returned bool is true when this call
// created the row. Callers do not need to canonicalize the order; both ids
// sort to the same pairKey, and a loser of a concurrent create collides on
// the storage constraint and re-fetches the winner's row.
func (s *ConversationService) FindOrCreate(ctx context.Context, idA, idB string) (*models.Conversation, bool, error) {
	if idA == "" || idB == "" {
		return nil, false, errors.New("both participant ids are required")
	}
	if idA == idB {
		return nil, false, errors.New("a conversation needs two distinct participants")
	}

	existing, err := s.GetByPair(ctx, idA, idB)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrItemNotFound) {
		return nil, false, fmt.Errorf("failed to look up conversation: %w", err)
	}

	participant1, participant2 := models.SortPair(idA, idB)
	conversation := models.Conversation{
		PairKey:        models.PairKey(idA, idB),
		ConversationID: uuid.NewString(),
		Participant1ID: participant1,
		Participant2ID: participant2,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	err = s.Dynamo.PutItemIfNotExists(ctx, models.ConversationsTable, conversation, "attribute_not_exists(pairKey)")
	if err != nil {
		if errors.Is(err, ErrConditionalCheckFailed) {
			// Someone else created it between our lookup and insert.
			log.Printf("⚠️ Conversation for %s and %s already exists, re-fetching", participant1, participant2)
			existing, getErr := s.GetByPair(ctx, idA, idB)
			if getErr != nil {
				return nil, false, fmt.Errorf("conversation exists but could not be fetched: %w", getErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to create conversation: %w", err)
	}

	log.Printf("✅ Conversation created: %s (%s, %s)", conversation.ConversationID, participant1, participant2)
	return &conversation, true, nil
}

// FindOrCreateForListing is the marketplace path: bootstrap the buyer/seller
// conversation and, only when this call created it, seed an opening system
// message referencing the listing. Dating-triggered bootstraps seed nothing.
func (s *ConversationService) FindOrCreateForListing(ctx context.Context, buyerID, sellerID, listingTitle, listingPrice string) (*models.Conversation, bool, error) {
	conversation, created, err := s.FindOrCreate(ctx, buyerID, sellerID)
	if err != nil {
		return nil, false, err
	}
	if !created {
		return conversation, false, nil
	}

	seed := models.Message{
		ConversationID: conversation.ConversationID,
		MessageID:      uuid.NewString(),
		SenderID:       models.SenderSystem,
		Content:        fmt.Sprintf("Conversation started about the listing \"%s\" (%s).", listingTitle, listingPrice),
		IsUnread:       true,
		System:         true,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Dynamo.PutItem(ctx, models.MessagesTable, seed); err != nil {
		// The conversation itself is fine; the missing seed message is not
		// worth failing the user's explicit action over.
		log.Printf("❌ Failed to seed listing message for conversation %s: %v", conversation.ConversationID, err)
	}
	return conversation, true, nil
}

// GetByPair fetches the conversation for an unordered pair, in either stored
// order, or ErrItemNotFound.
func (s *ConversationService) GetByPair(ctx context.Context, idA, idB string) (*models.Conversation, error) {
	key := map[string]types.AttributeValue{
		"pairKey": &types.AttributeValueMemberS{Value: models.PairKey(idA, idB)},
	}

	item, err := s.Dynamo.GetItem(ctx, models.ConversationsTable, key)
	if err != nil {
		return nil, err
	}

	var conversation models.Conversation
	if err := attributevalue.UnmarshalMap(item, &conversation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversation: %w", err)
	}
	return &conversation, nil
}
