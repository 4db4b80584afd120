package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/JAMAL4664jfk/studentKonnect-sub000/models"
	"github.com/JAMAL4664jfk/studentKonnect-sub000/services"

	"github.com/gorilla/mux"
)

// Notifier pushes user-visible events over the realtime channel. The socket
// server implements it; a nil notifier is allowed and drops events.
type Notifier interface {
	NotifyUser(userID, event string, payload interface{})
}

// InteractionController struct
type InteractionController struct {
	InteractionService  *services.InteractionService
	MatchService        *services.MatchService
	ConversationService *services.ConversationService
	Notifier            Notifier
}

// NewInteractionController initializes the controller
func NewInteractionController(
	interactionService *services.InteractionService,
	matchService *services.MatchService,
	conversationService *services.ConversationService,
	notifier Notifier,
) *InteractionController {
	return &InteractionController{
		InteractionService:  interactionService,
		MatchService:        matchService,
		ConversationService: conversationService,
		Notifier:            notifier,
	}
}

type decisionRequest struct {
	ActorID  string `json:"actorId"`
	TargetID string `json:"targetId"`
}

// HandleAccept - Record an accept and run match detection
func (c *InteractionController) HandleAccept(w http.ResponseWriter, r *http.Request) {
	var request decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	log.Printf("💖 %s accepted %s", request.ActorID, request.TargetID)

	_, recorded, err := c.InteractionService.RecordDecision(r.Context(), request.ActorID, request.TargetID, models.ActionAccept)
	if err != nil {
		http.Error(w, `{"error": "Failed to record decision"}`, http.StatusInternalServerError)
		return
	}

	outcome, err := c.MatchService.DetectMatch(r.Context(), request.ActorID, request.TargetID)
	if err != nil {
		http.Error(w, `{"error": "Failed to check for a match"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"status":         "success",
		"recorded":       recorded,
		"matched":        outcome.Matched,
		"alreadyMatched": outcome.AlreadyMatched,
		"message":        "User liked",
	}

	if outcome.Matched {
		response["matchId"] = outcome.Match.MatchID
		response["counterpartName"] = outcome.CounterpartName
		response["message"] = fmt.Sprintf("It's a match with %s!", outcome.CounterpartName)

		// Bootstrap the conversation for the pair so both sides can navigate
		// straight into chat. Dating bootstraps seed no message.
		conversation, _, convErr := c.ConversationService.FindOrCreate(r.Context(), request.ActorID, request.TargetID)
		if convErr != nil {
			log.Printf("❌ Failed to bootstrap conversation for match %s: %v", outcome.Match.MatchID, convErr)
		} else {
			response["conversationId"] = conversation.ConversationID
		}

		// Exactly one celebration, on the confirmed-new path only. Each side
		// is told the other participant's name.
		if c.Notifier != nil {
			c.Notifier.NotifyUser(request.ActorID, "match", map[string]interface{}{
				"matchId":         outcome.Match.MatchID,
				"counterpartName": outcome.CounterpartName,
			})
			c.Notifier.NotifyUser(request.TargetID, "match", map[string]interface{}{
				"matchId":         outcome.Match.MatchID,
				"counterpartName": outcome.ActorName,
			})
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// HandleGetAdmirers - Fetch the accepts pointing at a user
func (c *InteractionController) HandleGetAdmirers(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, `{"error": "userId is required"}`, http.StatusBadRequest)
		return
	}

	admirers, err := c.InteractionService.AdmirersOf(r.Context(), userID)
	if err != nil {
		http.Error(w, `{"error": "Failed to fetch admirers"}`, http.StatusInternalServerError)
		return
	}
	if admirers == nil {
		admirers = []models.Interaction{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(admirers)
}

// HandleReject - Record a reject; no detection runs
func (c *InteractionController) HandleReject(w http.ResponseWriter, r *http.Request) {
	var request decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	log.Printf("💔 %s rejected %s", request.ActorID, request.TargetID)

	_, recorded, err := c.InteractionService.RecordDecision(r.Context(), request.ActorID, request.TargetID, models.ActionReject)
	if err != nil {
		http.Error(w, `{"error": "Failed to record decision"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":   "success",
		"recorded": recorded,
		"message":  "User passed",
	})
}
