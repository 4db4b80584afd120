package models

import "strings"

// Conversation is the single canonical channel between two participants.
// Participants are stored sorted (Participant1ID < Participant2ID) and PairKey
// is the partition key, which is what makes "at most one conversation per
// pair" enforceable as a storage constraint instead of an app-level check.
type Conversation struct {
	PairKey        string `dynamodbav:"pairKey" json:"-"`
	ConversationID string `dynamodbav:"conversationId" json:"conversationId"`
	Participant1ID string `dynamodbav:"participant1Id" json:"participant1Id"`
	Participant2ID string `dynamodbav:"participant2Id" json:"participant2Id"`
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"`
}

// ConversationsTable is the DynamoDB table name for conversations
const ConversationsTable = "Conversations"

// Counterpart returns the other participant of the conversation.
func (c Conversation) Counterpart(userID string) string {
	if c.Participant1ID == userID {
		return c.Participant2ID
	}
	return c.Participant1ID
}

// PairKey canonicalizes an unordered id pair into the stored key: the smaller
// id always precedes the larger, so both call orders map to the same row.
func PairKey(a, b string) string {
	if strings.Compare(b, a) < 0 {
		a, b = b, a
	}
	return a + "#" + b
}

// SortPair returns the pair in canonical storage order.
func SortPair(a, b string) (string, string) {
	if strings.Compare(b, a) < 0 {
		return b, a
	}
	return a, b
}
