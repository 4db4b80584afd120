package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/JAMAL4664jfk/studentKonnect-sub000/models"
	"github.com/JAMAL4664jfk/studentKonnect-sub000/services"

	"github.com/gorilla/mux"
)

// QueueController struct
type QueueController struct {
	QueueService *services.ProfileQueueService
}

// NewQueueController initializes the controller
func NewQueueController(service *services.ProfileQueueService) *QueueController {
	return &QueueController{QueueService: service}
}

// HandleLoadQueue - Load the decision queue for a viewer
func (c *QueueController) HandleLoadQueue(w http.ResponseWriter, r *http.Request) {
	viewerID := mux.Vars(r)["userId"]

	queue, err := c.QueueService.LoadQueue(r.Context(), viewerID)
	if err != nil {
		http.Error(w, `{"error": "Failed to load queue"}`, http.StatusBadRequest)
		return
	}

	response := map[string]interface{}{
		"viewerId": queue.ViewerID,
		"source":   queue.Source,
		"profiles": queue.Profiles,
	}
	// The fallback set is served silently functional but flagged, so clients
	// can show a non-blocking advisory.
	if queue.Source == models.QueueSourceFallback {
		response["advisory"] = "Showing sample profiles while the backend is unreachable"
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
