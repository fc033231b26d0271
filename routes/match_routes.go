package routes

import (
	"lovelink_server/controllers"
	"lovelink_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for match listings under /api/match
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService) {
	controller := controllers.NewMatchController(matchService)

	matchRouter := r.PathPrefix("/api/match").Subrouter()
	matchRouter.HandleFunc("/matches/{userId}", controller.HandleGetMatches).Methods("GET")
	matchRouter.HandleFunc("/likedMe/{userId}", controller.HandleGetLikedMe).Methods("GET")
}
