package routes

import (
	"lovelink_server/controllers"
	"lovelink_server/services"

	"github.com/gorilla/mux"
)

// RegisterModerationRoutes sets up block/report routes under /api/moderation
func RegisterModerationRoutes(r *mux.Router, moderationService *services.ModerationService) {
	controller := controllers.NewModerationController(moderationService)

	moderationRouter := r.PathPrefix("/api/moderation").Subrouter()
	moderationRouter.HandleFunc("/block", controller.HandleBlock).Methods("POST")
	moderationRouter.HandleFunc("/report", controller.HandleReport).Methods("POST")
	moderationRouter.HandleFunc("/verifyPhoto", controller.HandleVerifyPhoto).Methods("POST")
}
