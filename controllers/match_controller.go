package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/JAMAL4664jfk/studentKonnect-sub000/services"

	"github.com/gorilla/mux"
)

// MatchController struct
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController initializes the controller
func NewMatchController(service *services.MatchService) *MatchController {
	return &MatchController{MatchService: service}
}

// HandleListMatches - Fetch a user's matches with counterpart metadata
func (c *MatchController) HandleListMatches(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, `{"error": "userId is required"}`, http.StatusBadRequest)
		return
	}

	matches, err := c.MatchService.ListMatches(r.Context(), userID)
	if err != nil {
		http.Error(w, `{"error": "Failed to fetch matches"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(matches)
}
