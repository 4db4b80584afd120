package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/JAMAL4664jfk/studentKonnect-sub000/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOrCreateCreatesCanonicalPair(t *testing.T) {
	db := newFakeDB()
	svc := &ConversationService{Dynamo: db}

	conversation, created, err := svc.FindOrCreate(context.Background(), "zara", "alice")
	require.NoError(t, err)
	assert.True(t, created)
	// Stored sorted regardless of argument order.
	assert.Equal(t, "alice", conversation.Participant1ID)
	assert.Equal(t, "zara", conversation.Participant2ID)
	assert.NotEmpty(t, conversation.ConversationID)
	assert.Equal(t, 1, db.count(models.ConversationsTable))
}

func TestFindOrCreateEitherOrderReturnsSameConversation(t *testing.T) {
	db := newFakeDB()
	svc := &ConversationService{Dynamo: db}
	ctx := context.Background()

	first, created, err := svc.FindOrCreate(ctx, "alice", "bob")
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := svc.FindOrCreate(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ConversationID, second.ConversationID)
	assert.Equal(t, 1, db.count(models.ConversationsTable))
}

func TestFindOrCreateConcurrentCallersCollapse(t *testing.T) {
	db := newFakeDB()
	svc := &ConversationService{Dynamo: db}
	ctx := context.Background()

	// Two callers race with opposite argument orders. The storage constraint
	// lets one insert win; the loser re-fetches. Both must end up with the
	// same single conversation.
	pairs := [][2]string{{"alice", "bob"}, {"bob", "alice"}}
	ids := make([]string, len(pairs))
	var wg sync.WaitGroup
	for i, pair := range pairs {
		wg.Add(1)
		go func(i int, a, b string) {
			defer wg.Done()
			conversation, _, err := svc.FindOrCreate(ctx, a, b)
			if assert.NoError(t, err) {
				ids[i] = conversation.ConversationID
			}
		}(i, pair[0], pair[1])
	}
	wg.Wait()

	assert.NotEmpty(t, ids[0])
	assert.Equal(t, ids[0], ids[1])
	assert.Equal(t, 1, db.count(models.ConversationsTable))
}

func TestFindOrCreateRejectsDegeneratePairs(t *testing.T) {
	svc := &ConversationService{Dynamo: newFakeDB()}
	ctx := context.Background()

	_, _, err := svc.FindOrCreate(ctx, "alice", "alice")
	assert.Error(t, err)
	_, _, err = svc.FindOrCreate(ctx, "", "bob")
	assert.Error(t, err)
}

func TestContactSellerSeedsListingMessage(t *testing.T) {
	db := newFakeDB()
	svc := &ConversationService{Dynamo: db}

	conversation, created, err := svc.FindOrCreateForListing(context.Background(), "buyer", "seller", "Casio FX-991", "₹900")
	require.NoError(t, err)
	require.True(t, created)

	chat := &ChatService{Dynamo: db}
	messages, err := chat.GetMessages(context.Background(), conversation.ConversationID, 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	seed := messages[0]
	assert.Equal(t, models.SenderSystem, seed.SenderID)
	assert.True(t, seed.System)
	assert.True(t, strings.Contains(seed.Content, "Casio FX-991"))
	assert.True(t, strings.Contains(seed.Content, "₹900"))
}

func TestContactSellerExistingConversationSeedsNothing(t *testing.T) {
	db := newFakeDB()
	svc := &ConversationService{Dynamo: db}
	ctx := context.Background()

	first, _, err := svc.FindOrCreateForListing(ctx, "buyer", "seller", "Desk lamp", "₹300")
	require.NoError(t, err)

	second, created, err := svc.FindOrCreateForListing(ctx, "seller", "buyer", "Desk lamp", "₹300")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ConversationID, second.ConversationID)
	assert.Equal(t, 1, db.count(models.MessagesTable))
}

func TestDatingBootstrapSeedsNoMessage(t *testing.T) {
	db := newFakeDB()
	svc := &ConversationService{Dynamo: db}

	_, created, err := svc.FindOrCreate(context.Background(), "alice", "bob")
	require.NoError(t, err)
	require.True(t, created)
	assert.Equal(t, 0, db.count(models.MessagesTable))
}

func TestConversationStoredUnderPairKey(t *testing.T) {
	db := newFakeDB()
	svc := &ConversationService{Dynamo: db}

	conversation, _, err := svc.FindOrCreate(context.Background(), "bob", "alice")
	require.NoError(t, err)

	item, err := db.GetItem(context.Background(), models.ConversationsTable, mustKey(t, conversation.PairKey))
	require.NoError(t, err)

	var stored models.Conversation
	require.NoError(t, attributevalue.UnmarshalMap(item, &stored))
	assert.Equal(t, models.PairKey("alice", "bob"), stored.PairKey)
}
