package models

type Message struct {
	ConversationID string `dynamodbav:"conversationId" json:"conversationId"` // Partition Key
	MessageID      string `dynamodbav:"messageId" json:"messageId"`           // Sort Key
	SenderID       string `dynamodbav:"senderId" json:"senderId"`
	Content        string `dynamodbav:"content" json:"content"`
	IsUnread       bool   `dynamodbav:"isUnread" json:"isUnread"`
	System         bool   `dynamodbav:"system,omitempty" json:"system,omitempty"`
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"`
}

// MessagesTable is the DynamoDB table name for conversation messages
const MessagesTable = "Messages"
