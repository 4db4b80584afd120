package routes

import (
	"github.com/JAMAL4664jfk/studentKonnect-sub000/controllers"
	"github.com/JAMAL4664jfk/studentKonnect-sub000/services"

	"github.com/gorilla/mux"
)

// RegisterInteractionRoutes sets up routes for decision recording under /api/interactions
func RegisterInteractionRoutes(
	r *mux.Router,
	interactionService *services.InteractionService,
	matchService *services.MatchService,
	conversationService *services.ConversationService,
	notifier controllers.Notifier,
) {
	controller := controllers.NewInteractionController(interactionService, matchService, conversationService, notifier)

	interactionRouter := r.PathPrefix("/api/interactions").Subrouter()
	interactionRouter.HandleFunc("/accept", controller.HandleAccept).Methods("POST")
	interactionRouter.HandleFunc("/reject", controller.HandleReject).Methods("POST")
	interactionRouter.HandleFunc("/admirers/{userId}", controller.HandleGetAdmirers).Methods("GET")
}
