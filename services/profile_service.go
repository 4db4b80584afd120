package services

import (
	"context"
	"fmt"
	"time"

	"github.com/JAMAL4664jfk/studentKonnect-sub000/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type UserProfileService struct {
	Dynamo DB
}

// AddUserProfile adds a new user profile
func (ups *UserProfileService) AddUserProfile(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	if profile.UserID == "" {
		return nil, fmt.Errorf("userId is required")
	}
	if profile.CreatedAt == "" {
		profile.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := ups.Dynamo.PutItem(ctx, models.ProfilesTable, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetUserProfile retrieves a user profile by ID
func (ups *UserProfileService) GetUserProfile(ctx context.Context, userID string) (*models.Profile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ups.Dynamo.GetItem(ctx, models.ProfilesTable, key)
	if err != nil {
		return nil, err
	}

	var profile models.Profile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}
