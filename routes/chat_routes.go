package routes

import (
	"github.com/JAMAL4664jfk/studentKonnect-sub000/controllers"
	"github.com/JAMAL4664jfk/studentKonnect-sub000/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for chat-related operations under /api/chat
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService, notifier controllers.Notifier) {
	controller := controllers.NewChatController(chatService, notifier)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()
	chatRouter.HandleFunc("/send", controller.HandleSendMessage).Methods("POST")
	chatRouter.HandleFunc("/messages", controller.HandleGetMessages).Methods("POST")
	chatRouter.HandleFunc("/markRead", controller.HandleMarkRead).Methods("POST")
}
