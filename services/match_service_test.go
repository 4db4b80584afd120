package services

import (
	"context"
	"errors"
	"testing"

	"github.com/JAMAL4664jfk/studentKonnect-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAccept(t *testing.T, db *fakeDB, actorID, targetID string) {
	t.Helper()
	svc := &InteractionService{Dynamo: db}
	_, _, err := svc.RecordDecision(context.Background(), actorID, targetID, models.ActionAccept)
	require.NoError(t, err)
}

func seedProfile(t *testing.T, db *fakeDB, userID, fullName string) {
	t.Helper()
	svc := &UserProfileService{Dynamo: db}
	_, err := svc.AddUserProfile(context.Background(), models.Profile{UserID: userID, FullName: fullName})
	require.NoError(t, err)
}

func TestDetectMatchNoReverseEdge(t *testing.T) {
	db := newFakeDB()
	svc := &MatchService{Dynamo: db}
	seedAccept(t, db, "alice", "bob")

	outcome, err := svc.DetectMatch(context.Background(), "alice", "bob")
	require.NoError(t, err)
	assert.False(t, outcome.Matched)
	assert.False(t, outcome.AlreadyMatched)
	assert.Equal(t, 0, db.count(models.MatchesTable))
}

func TestDetectMatchReverseRejectIsNoMatch(t *testing.T) {
	db := newFakeDB()
	svc := &MatchService{Dynamo: db}
	interactions := &InteractionService{Dynamo: db}
	_, _, err := interactions.RecordDecision(context.Background(), "bob", "alice", models.ActionReject)
	require.NoError(t, err)
	seedAccept(t, db, "alice", "bob")

	outcome, err := svc.DetectMatch(context.Background(), "alice", "bob")
	require.NoError(t, err)
	assert.False(t, outcome.Matched)
	assert.Equal(t, 0, db.count(models.MatchesTable))
}

func TestDetectMatchMutualAccept(t *testing.T) {
	db := newFakeDB()
	svc := &MatchService{Dynamo: db}
	seedProfile(t, db, "bob", "Bob Varghese")
	seedAccept(t, db, "bob", "alice")
	seedAccept(t, db, "alice", "bob")

	outcome, err := svc.DetectMatch(context.Background(), "alice", "bob")
	require.NoError(t, err)
	assert.True(t, outcome.Matched)
	assert.False(t, outcome.AlreadyMatched)
	require.NotNil(t, outcome.Match)
	assert.Equal(t, "alice", outcome.Match.User1ID)
	assert.Equal(t, "bob", outcome.Match.User2ID)
	assert.Equal(t, "Bob Varghese", outcome.CounterpartName)
	assert.Equal(t, 1, db.count(models.MatchesTable))
}

func TestDetectMatchNamesBothParticipants(t *testing.T) {
	db := newFakeDB()
	svc := &MatchService{Dynamo: db}
	seedProfile(t, db, "alice", "Alice D'Souza")
	seedProfile(t, db, "bob", "Bob Varghese")
	seedAccept(t, db, "bob", "alice")
	seedAccept(t, db, "alice", "bob")

	// Each participant's celebration names the other person, never themselves.
	outcome, err := svc.DetectMatch(context.Background(), "alice", "bob")
	require.NoError(t, err)
	require.True(t, outcome.Matched)
	assert.Equal(t, "Bob Varghese", outcome.CounterpartName)
	assert.Equal(t, "Alice D'Souza", outcome.ActorName)
}

func TestDetectMatchUniqueAcrossBothSides(t *testing.T) {
	db := newFakeDB()
	svc := &MatchService{Dynamo: db}
	seedAccept(t, db, "bob", "alice")
	seedAccept(t, db, "alice", "bob")
	ctx := context.Background()

	// Both participants independently run detection after their accept, in
	// either direction. Exactly one match row may exist afterwards, and only
	// one run reports a fresh match (one celebration).
	first, err := svc.DetectMatch(ctx, "alice", "bob")
	require.NoError(t, err)
	second, err := svc.DetectMatch(ctx, "bob", "alice")
	require.NoError(t, err)

	assert.True(t, first.Matched)
	assert.False(t, second.Matched)
	assert.True(t, second.AlreadyMatched)
	require.NotNil(t, second.Match)
	assert.Equal(t, first.Match.MatchID, second.Match.MatchID)
	assert.Equal(t, 1, db.count(models.MatchesTable))
}

func TestDetectMatchRepeatedDetectionSingleRow(t *testing.T) {
	db := newFakeDB()
	svc := &MatchService{Dynamo: db}
	seedAccept(t, db, "bob", "alice")
	seedAccept(t, db, "alice", "bob")
	ctx := context.Background()

	celebrations := 0
	for i := 0; i < 5; i++ {
		outcome, err := svc.DetectMatch(ctx, "alice", "bob")
		require.NoError(t, err)
		if outcome.Matched {
			celebrations++
		}
	}
	assert.Equal(t, 1, celebrations)
	assert.Equal(t, 1, db.count(models.MatchesTable))
}

func TestDetectMatchQueryFailureFailsClosed(t *testing.T) {
	db := newFakeDB()
	svc := &MatchService{Dynamo: db}
	seedAccept(t, db, "bob", "alice")
	seedAccept(t, db, "alice", "bob")
	db.failWith("get", models.InteractionsTable, errors.New("backend unavailable"))

	// A transient reverse-edge query failure defers detection; it never
	// fabricates a match and never surfaces an error.
	outcome, err := svc.DetectMatch(context.Background(), "alice", "bob")
	require.NoError(t, err)
	assert.False(t, outcome.Matched)
	assert.False(t, outcome.AlreadyMatched)
	assert.Equal(t, 0, db.count(models.MatchesTable))

	// Once the backend recovers, a later detection still finds the pair.
	db.failWith("get", models.InteractionsTable, nil)
	outcome, err = svc.DetectMatch(context.Background(), "alice", "bob")
	require.NoError(t, err)
	assert.True(t, outcome.Matched)
}

func TestListMatches(t *testing.T) {
	db := newFakeDB()
	svc := &MatchService{Dynamo: db}
	ctx := context.Background()
	seedProfile(t, db, "bob", "Bob Varghese")
	seedProfile(t, db, "zara", "Zara Khan")
	seedAccept(t, db, "bob", "alice")
	seedAccept(t, db, "alice", "bob")
	seedAccept(t, db, "zara", "alice")
	seedAccept(t, db, "alice", "zara")

	_, err := svc.DetectMatch(ctx, "alice", "bob")
	require.NoError(t, err)
	_, err = svc.DetectMatch(ctx, "alice", "zara")
	require.NoError(t, err)

	matches, err := svc.ListMatches(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, matches, 2)

	names := map[string]bool{}
	for _, m := range matches {
		names[m.Counterpart.FullName] = true
		assert.NotEmpty(t, m.MatchID)
	}
	assert.True(t, names["Bob Varghese"])
	assert.True(t, names["Zara Khan"])
}

func TestAcceptScenarioNoPriorReverseEdge(t *testing.T) {
	// Viewer V accepts C with no prior accept from C: the edge is stored,
	// no match row appears.
	db := newFakeDB()
	interactions := &InteractionService{Dynamo: db}
	matches := &MatchService{Dynamo: db}
	ctx := context.Background()

	_, recorded, err := interactions.RecordDecision(ctx, "V", "C", models.ActionAccept)
	require.NoError(t, err)
	require.True(t, recorded)

	outcome, err := matches.DetectMatch(ctx, "V", "C")
	require.NoError(t, err)
	assert.False(t, outcome.Matched)
	assert.Equal(t, 1, db.count(models.InteractionsTable))
	assert.Equal(t, 0, db.count(models.MatchesTable))
}
