package routes

import (
	"github.com/JAMAL4664jfk/studentKonnect-sub000/controllers"
	"github.com/JAMAL4664jfk/studentKonnect-sub000/services"

	"github.com/gorilla/mux"
)

// RegisterMediaRoutes sets up routes for presigned media URLs under /api/media
func RegisterMediaRoutes(r *mux.Router, mediaService *services.MediaService) {
	controller := controllers.NewMediaController(mediaService)

	mediaRouter := r.PathPrefix("/api/media").Subrouter()
	mediaRouter.HandleFunc("/uploadUrl", controller.HandleUploadURL).Methods("POST")
	mediaRouter.HandleFunc("/readUrl", controller.HandleReadURL).Methods("GET")
}
