package routes

import (
	"github.com/JAMAL4664jfk/studentKonnect-sub000/controllers"
	"github.com/JAMAL4664jfk/studentKonnect-sub000/services"

	"github.com/gorilla/mux"
)

// RegisterQueueRoutes sets up routes for the decision queue under /api/queue
func RegisterQueueRoutes(r *mux.Router, queueService *services.ProfileQueueService) {
	controller := controllers.NewQueueController(queueService)

	queueRouter := r.PathPrefix("/api/queue").Subrouter()
	queueRouter.HandleFunc("/{userId}", controller.HandleLoadQueue).Methods("GET")
}
