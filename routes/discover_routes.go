package routes

import (
	"lovelink_server/controllers"
	"lovelink_server/services"

	"github.com/gorilla/mux"
)

// RegisterDiscoverRoutes sets up routes for the discovery queue under /api/discover
func RegisterDiscoverRoutes(r *mux.Router, discoverService *services.DiscoverService) {
	controller := controllers.NewDiscoverController(discoverService)

	discoverRouter := r.PathPrefix("/api/discover").Subrouter()
	discoverRouter.HandleFunc("/{userId}", controller.HandleGetDiscoverProfiles).Methods("GET")
}
