package models

// Interaction is a directed decision edge actor -> target. At most one edge
// exists per ordered pair; the table enforces it via the composite key and a
// conditional put, so a retried submission lands on the same row.
type Interaction struct {
	ActorID   string `dynamodbav:"actorId" json:"actorId"`   // Partition Key
	TargetID  string `dynamodbav:"targetId" json:"targetId"` // Sort Key
	Action    string `dynamodbav:"action" json:"action"`     // accept, reject
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// InteractionsTable is the DynamoDB table name for decision edges
const InteractionsTable = "DatingInteractions"

// TargetIDIndex is the GSI used to look up edges pointing at a user
const TargetIDIndex = "targetId-index"
