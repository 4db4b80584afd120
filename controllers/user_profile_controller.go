package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/JAMAL4664jfk/studentKonnect-sub000/models"
	"github.com/JAMAL4664jfk/studentKonnect-sub000/services"

	"github.com/gorilla/mux"
)

// UserProfileController struct
type UserProfileController struct {
	UserProfileService *services.UserProfileService
}

// NewUserProfileController initializes the controller
func NewUserProfileController(service *services.UserProfileService) *UserProfileController {
	return &UserProfileController{UserProfileService: service}
}

// HandleAddProfile - Create or replace a profile
func (c *UserProfileController) HandleAddProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	saved, err := c.UserProfileService.AddUserProfile(r.Context(), profile)
	if err != nil {
		http.Error(w, `{"error": "Failed to save profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(saved)
}

// HandleGetProfile - Fetch a profile by user id
func (c *UserProfileController) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := c.UserProfileService.GetUserProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error": "Failed to fetch profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}
