package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/JAMAL4664jfk/studentKonnect-sub000/services"
)

// ChatController struct
type ChatController struct {
	ChatService *services.ChatService
	Notifier    Notifier
}

// NewChatController initializes the controller
func NewChatController(service *services.ChatService, notifier Notifier) *ChatController {
	return &ChatController{ChatService: service, Notifier: notifier}
}

// HandleSendMessage - Store a message and broadcast it to the conversation
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ConversationID string `json:"conversationId"`
		SenderID       string `json:"senderId"`
		Content        string `json:"content"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.ConversationID == "" || request.SenderID == "" || request.Content == "" {
		http.Error(w, `{"error": "conversationId, senderId and content are required"}`, http.StatusBadRequest)
		return
	}

	message, err := c.ChatService.SendMessage(r.Context(), request.ConversationID, request.SenderID, request.Content)
	if err != nil {
		http.Error(w, `{"error": "Failed to send message"}`, http.StatusInternalServerError)
		return
	}

	if c.Notifier != nil {
		c.Notifier.NotifyUser(request.ConversationID, "message", message)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(message)
}

// HandleGetMessages - Fetch messages for a conversation
func (c *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ConversationID string `json:"conversationId"`
		Limit          int    `json:"limit"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.Limit <= 0 {
		request.Limit = 50
	}

	messages, err := c.ChatService.GetMessages(r.Context(), request.ConversationID, request.Limit)
	if err != nil {
		http.Error(w, `{"error": "Failed to fetch messages"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}

// HandleMarkRead - Mark the reader's received messages as read
func (c *ChatController) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ConversationID string `json:"conversationId"`
		ReaderID       string `json:"readerId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.ChatService.MarkMessagesAsRead(r.Context(), request.ConversationID, request.ReaderID); err != nil {
		http.Error(w, `{"error": "Failed to mark messages as read"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}
