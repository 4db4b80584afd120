package services

import (
	"context"
	"errors"
	"log"
	"sort"

	"github.com/JAMAL4664jfk/studentKonnect-sub000/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

// queuePageSize caps how many candidates one LoadQueue call hands to the
// decision engine. Refilling is an explicit new LoadQueue, never a mid-session
// refetch.
const queuePageSize = 50

// ProfileQueueService builds the ordered candidate queue for a viewer,
// excluding the viewer themselves and everyone the viewer already decided on.
type ProfileQueueService struct {
	Dynamo       DB
	Interactions *InteractionService
}

// LoadQueue returns the decision queue for viewerID. When the backend is
// unreachable it degrades to the built-in sample set so the decision engine
// stays exercisable; the Source field marks the degradation so callers can
// surface an advisory and tests can tell the two apart.
func (s *ProfileQueueService) LoadQueue(ctx context.Context, viewerID string) (*models.ProfileQueue, error) {
	if viewerID == "" {
		return nil, errors.New("viewerId is required")
	}

	decided, err := s.Interactions.DecidedTargets(ctx, viewerID)
	if err != nil {
		// Serving an unfiltered queue would re-show decided profiles, which
		// is a correctness bug. Degrade instead.
		log.Printf("❌ Failed to load decided set for %s, serving fallback queue: %v", viewerID, err)
		return s.fallbackQueue(viewerID), nil
	}

	items, err := s.Dynamo.ScanAllItems(ctx, models.ProfilesTable)
	if err != nil {
		log.Printf("❌ Failed to load profiles for %s, serving fallback queue: %v", viewerID, err)
		return s.fallbackQueue(viewerID), nil
	}

	var candidates []models.Profile
	for _, item := range items {
		var profile models.Profile
		if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
			log.Printf("❌ Error unmarshalling profile: %v", err)
			continue
		}
		if profile.UserID == viewerID || decided[profile.UserID] {
			continue
		}
		candidates = append(candidates, profile)
	}

	// Newest profiles first. RFC3339 strings order correctly as text.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].CreatedAt > candidates[j].CreatedAt
	})
	if len(candidates) > queuePageSize {
		candidates = candidates[:queuePageSize]
	}

	log.Printf("✅ Loaded queue for %s: %d candidates", viewerID, len(candidates))
	return &models.ProfileQueue{
		ViewerID: viewerID,
		Source:   models.QueueSourceNetwork,
		Profiles: candidates,
	}, nil
}

func (s *ProfileQueueService) fallbackQueue(viewerID string) *models.ProfileQueue {
	samples := SampleProfiles()
	candidates := make([]models.Profile, 0, len(samples))
	for _, profile := range samples {
		if profile.UserID == viewerID {
			continue
		}
		candidates = append(candidates, profile)
	}
	return &models.ProfileQueue{
		ViewerID: viewerID,
		Source:   models.QueueSourceFallback,
		Profiles: candidates,
	}
}
