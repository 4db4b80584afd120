package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/JAMAL4664jfk/studentKonnect-sub000/services"
)

// MediaController struct
type MediaController struct {
	MediaService *services.MediaService
}

// NewMediaController initializes the controller
func NewMediaController(service *services.MediaService) *MediaController {
	return &MediaController{MediaService: service}
}

// HandleUploadURL - Presign an upload URL for a profile photo
func (c *MediaController) HandleUploadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if payload.FileName == "" || payload.FileType == "" {
		http.Error(w, `{"error": "fileName and fileType are required"}`, http.StatusBadRequest)
		return
	}

	url, key, err := c.MediaService.GenerateUploadURL(r.Context(), payload.FileName, payload.FileType)
	if err != nil {
		log.Printf("❌ Failed to presign upload URL: %v", err)
		http.Error(w, `{"error": "Failed to generate upload URL"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"uploadUrl": url, "key": key})
}

// HandleReadURL - Presign a read URL for a stored photo
func (c *MediaController) HandleReadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, `{"error": "key is required"}`, http.StatusBadRequest)
		return
	}

	url, err := c.MediaService.GenerateReadURL(r.Context(), key)
	if err != nil {
		log.Printf("❌ Failed to presign read URL: %v", err)
		http.Error(w, `{"error": "Failed to generate read URL"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"readUrl": url})
}
