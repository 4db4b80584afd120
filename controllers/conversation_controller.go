package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/JAMAL4664jfk/studentKonnect-sub000/services"
)

// ConversationController struct
type ConversationController struct {
	ConversationService *services.ConversationService
}

// NewConversationController initializes the controller
func NewConversationController(service *services.ConversationService) *ConversationController {
	return &ConversationController{ConversationService: service}
}

// HandleFindOrCreate - Find or create the canonical conversation for a pair
func (c *ConversationController) HandleFindOrCreate(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ParticipantA string `json:"participantA"`
		ParticipantB string `json:"participantB"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	conversation, created, err := c.ConversationService.FindOrCreate(r.Context(), request.ParticipantA, request.ParticipantB)
	if err != nil {
		// This one blocks an action the user explicitly initiated, so it is
		// surfaced rather than swallowed.
		log.Printf("❌ Failed to find or create conversation: %v", err)
		http.Error(w, `{"error": "Failed to open conversation"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"conversationId": conversation.ConversationID,
		"created":        created,
	})
}

// HandleContactSeller - Marketplace path: bootstrap and seed a listing message
func (c *ConversationController) HandleContactSeller(w http.ResponseWriter, r *http.Request) {
	var request struct {
		BuyerID      string `json:"buyerId"`
		SellerID     string `json:"sellerId"`
		ListingTitle string `json:"listingTitle"`
		ListingPrice string `json:"listingPrice"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	log.Printf("🛍️ %s contacting seller %s about %q", request.BuyerID, request.SellerID, request.ListingTitle)

	conversation, created, err := c.ConversationService.FindOrCreateForListing(r.Context(), request.BuyerID, request.SellerID, request.ListingTitle, request.ListingPrice)
	if err != nil {
		log.Printf("❌ Failed to contact seller: %v", err)
		http.Error(w, `{"error": "Failed to open conversation"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"conversationId": conversation.ConversationID,
		"created":        created,
	})
}
