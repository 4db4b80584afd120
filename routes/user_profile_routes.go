package routes

import (
	"github.com/JAMAL4664jfk/studentKonnect-sub000/controllers"
	"github.com/JAMAL4664jfk/studentKonnect-sub000/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes for profile management under /api/profiles
func RegisterUserProfileRoutes(r *mux.Router, userProfileService *services.UserProfileService) {
	controller := controllers.NewUserProfileController(userProfileService)

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()
	profileRouter.HandleFunc("", controller.HandleAddProfile).Methods("POST")
	profileRouter.HandleFunc("/{userId}", controller.HandleGetProfile).Methods("GET")
}
