package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/JAMAL4664jfk/studentKonnect-sub000/routes"
	"github.com/JAMAL4664jfk/studentKonnect-sub000/services"
	"github.com/JAMAL4664jfk/studentKonnect-sub000/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Services
	userProfileService := &services.UserProfileService{Dynamo: dynamoService}
	interactionService := &services.InteractionService{Dynamo: dynamoService}
	queueService := &services.ProfileQueueService{Dynamo: dynamoService, Interactions: interactionService}
	matchService := &services.MatchService{Dynamo: dynamoService}
	conversationService := &services.ConversationService{Dynamo: dynamoService}
	chatService := &services.ChatService{Dynamo: dynamoService}
	mediaService := services.NewMediaService()

	// Realtime channel
	socketServer := socket.NewServer()
	go socketServer.Run()
	defer socketServer.Close()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to StudentKonnect")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterQueueRoutes(r, queueService)
	routes.RegisterInteractionRoutes(r, interactionService, matchService, conversationService, socketServer)
	routes.RegisterMatchRoutes(r, matchService)
	routes.RegisterConversationRoutes(r, conversationService)
	routes.RegisterChatRoutes(r, chatService, socketServer)
	routes.RegisterMediaRoutes(r, mediaService)
	r.Handle("/socket.io/", socketServer.Handler())

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
