package routes

import (
	"lovelink_server/controllers"
	"lovelink_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for messaging under /api/chat
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService) {
	controller := controllers.NewChatController(chatService)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()
	chatRouter.HandleFunc("/conversation", controller.HandleGetConversation).Methods("GET")
	chatRouter.HandleFunc("/send", controller.HandleSendMessage).Methods("POST")
	chatRouter.HandleFunc("/markRead", controller.HandleMarkRead).Methods("POST")
	chatRouter.HandleFunc("/gifts", controller.HandleGetGifts).Methods("GET")
}
