package routes

import (
	"lovelink_server/controllers"
	"lovelink_server/services"

	"github.com/gorilla/mux"
)

// RegisterSwipeRoutes sets up routes for swipe operations under /api/swipe
func RegisterSwipeRoutes(r *mux.Router, swipeService *services.SwipeService) {
	controller := controllers.NewSwipeController(swipeService)

	swipeRouter := r.PathPrefix("/api/swipe").Subrouter()
	swipeRouter.HandleFunc("", controller.HandleSwipe).Methods("POST")
	swipeRouter.HandleFunc("/rewind", controller.HandleRewind).Methods("POST")
}
