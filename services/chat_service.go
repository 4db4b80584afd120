package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/JAMAL4664jfk/studentKonnect-sub000/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ChatService struct
type ChatService struct {
	Dynamo DB
}

// SendMessage stores a new message in a conversation and returns it with its
// assigned id and timestamp.
func (s *ChatService) SendMessage(ctx context.Context, conversationID, senderID, content string) (*models.Message, error) {
	message := models.Message{
		ConversationID: conversationID,
		MessageID:      uuid.NewString(),
		SenderID:       senderID,
		Content:        content,
		IsUnread:       true,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.Dynamo.PutItem(ctx, models.MessagesTable, message); err != nil {
		log.Printf("❌ Failed to store message: %v", err)
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	log.Printf("📩 Message stored for conversation %s", conversationID)
	return &message, nil
}

// GetMessages fetches messages for a conversation sorted newest first.
func (s *ChatService) GetMessages(ctx context.Context, conversationID string, limit int) ([]models.Message, error) {
	keyCondition := "conversationId = :conversationId"
	expressionValues := map[string]types.AttributeValue{
		":conversationId": &types.AttributeValueMemberS{Value: conversationID},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.MessagesTable, keyCondition, expressionValues, nil, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt > messages[j].CreatedAt
	})

	log.Printf("✅ Found %d messages for conversation %s", len(messages), conversationID)
	return messages, nil
}

// MarkMessagesAsRead marks the messages the reader received (not the ones
// they sent) as read.
func (s *ChatService) MarkMessagesAsRead(ctx context.Context, conversationID, readerID string) error {
	messages, err := s.GetMessages(ctx, conversationID, 100)
	if err != nil {
		return err
	}

	for _, message := range messages {
		if message.SenderID == readerID || !message.IsUnread {
			continue
		}

		key := map[string]types.AttributeValue{
			"conversationId": &types.AttributeValueMemberS{Value: conversationID},
			"messageId":      &types.AttributeValueMemberS{Value: message.MessageID},
		}
		updateExpression := "SET isUnread = :false"
		expressionValues := map[string]types.AttributeValue{
			":false": &types.AttributeValueMemberBOOL{Value: false},
		}

		if _, err := s.Dynamo.UpdateItem(ctx, models.MessagesTable, updateExpression, key, expressionValues, nil); err != nil {
			log.Printf("❌ Failed to mark message %s as read: %v", message.MessageID, err)
		}
	}

	log.Printf("✅ Marked messages as read for %s in conversation %s", readerID, conversationID)
	return nil
}
