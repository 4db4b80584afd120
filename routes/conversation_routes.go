package routes

import (
	"github.com/JAMAL4664jfk/studentKonnect-sub000/controllers"
	"github.com/JAMAL4664jfk/studentKonnect-sub000/services"

	"github.com/gorilla/mux"
)

// RegisterConversationRoutes sets up routes for conversation bootstrap under /api/conversations
func RegisterConversationRoutes(r *mux.Router, conversationService *services.ConversationService) {
	controller := controllers.NewConversationController(conversationService)

	conversationRouter := r.PathPrefix("/api/conversations").Subrouter()
	conversationRouter.HandleFunc("/findOrCreate", controller.HandleFindOrCreate).Methods("POST")
	conversationRouter.HandleFunc("/contactSeller", controller.HandleContactSeller).Methods("POST")
}
