package models

// Decision actions stored on interaction edges
const (
	ActionAccept = "accept"
	ActionReject = "reject"
)

// Queue sources
const (
	QueueSourceNetwork  = "network"
	QueueSourceFallback = "fallback"
)

// Match statuses
const (
	MatchStatusActive   = "active"
	MatchStatusArchived = "archived"
)

// SenderSystem marks messages written by the app itself (e.g. the listing
// seed message) rather than a participant.
const SenderSystem = "system"
