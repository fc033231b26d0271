package routes

import (
	"lovelink_server/controllers"
	"lovelink_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up account, profile and subscription routes
// under /api/profile
func RegisterUserProfileRoutes(r *mux.Router, userProfileService *services.UserProfileService) {
	controller := controllers.NewUserProfileController(userProfileService)

	profileRouter := r.PathPrefix("/api/profile").Subrouter()
	profileRouter.HandleFunc("/account", controller.HandleCreateAccount).Methods("POST")
	profileRouter.HandleFunc("/account/{userId}", controller.HandleGetAccount).Methods("GET")
	profileRouter.HandleFunc("", controller.HandleUpdateProfile).Methods("PUT")
	profileRouter.HandleFunc("/quiz", controller.HandleGetQuiz).Methods("GET")
	profileRouter.HandleFunc("/subscribe", controller.HandleSubscribe).Methods("POST")
	profileRouter.HandleFunc("/superlikes", controller.HandlePurchaseSuperLikes).Methods("POST")
	profileRouter.HandleFunc("/boost", controller.HandleActivateBoost).Methods("POST")
}
