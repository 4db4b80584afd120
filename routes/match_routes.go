package routes

import (
	"github.com/JAMAL4664jfk/studentKonnect-sub000/controllers"
	"github.com/JAMAL4664jfk/studentKonnect-sub000/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for match listing under /api/matches
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService) {
	controller := controllers.NewMatchController(matchService)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()
	matchRouter.HandleFunc("/{userId}", controller.HandleListMatches).Methods("GET")
}
