package models

// Match pairs two users after a mutual accept. The unordered pair is unique:
// PairKey is the partition key, so whichever side's detection wins the insert,
// the loser collides on the same row instead of creating a second one.
type Match struct {
	PairKey   string `dynamodbav:"pairKey" json:"-"`
	MatchID   string `dynamodbav:"matchId" json:"matchId"`
	User1ID   string `dynamodbav:"user1Id" json:"user1Id"` // lexicographically smaller id
	User2ID   string `dynamodbav:"user2Id" json:"user2Id"`
	Status    string `dynamodbav:"status" json:"status"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// MatchesTable is the DynamoDB table name for matches
const MatchesTable = "DatingMatches"

// GSIs for listing a user's matches from either pair slot
const (
	MatchUser1Index = "user1Id-index"
	MatchUser2Index = "user2Id-index"
)

// Counterpart returns the other participant of the match.
func (m Match) Counterpart(userID string) string {
	if m.User1ID == userID {
		return m.User2ID
	}
	return m.User1ID
}

// MatchWithProfile is the navigation handoff payload: the match plus the
// counterpart's display metadata.
type MatchWithProfile struct {
	MatchID     string  `json:"matchId"`
	CreatedAt   string  `json:"createdAt"`
	Counterpart Profile `json:"counterpart"`
}
