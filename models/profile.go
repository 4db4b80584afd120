package models

// Profile is the normalized candidate card shown in the decision queue.
// Rows coming from DynamoDB and the local sample set are both mapped into
// this one shape before anything downstream sees them.
type Profile struct {
	UserID    string   `dynamodbav:"userId" json:"userId"`
	FullName  string   `dynamodbav:"fullName" json:"fullName"`
	Age       int      `dynamodbav:"age,omitempty" json:"age,omitempty"`
	Campus    string   `dynamodbav:"campus,omitempty" json:"campus,omitempty"`
	Bio       string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	Photos    []string `dynamodbav:"photos,omitempty" json:"photos,omitempty"`
	Verified  bool     `dynamodbav:"verified" json:"verified"`
	CreatedAt string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// ProfilesTable is the DynamoDB table name for user profiles
const ProfilesTable = "Profiles"

// ProfileQueue is the result of a queue load for one viewer. Source tells
// callers (and integration tests) whether the profiles came from the backend
// or from the built-in fallback set.
type ProfileQueue struct {
	ViewerID string    `json:"viewerId"`
	Source   string    `json:"source"`
	Profiles []Profile `json:"profiles"`
}
