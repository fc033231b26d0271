package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"lovelink_server/models"
	"lovelink_server/services"
)

// ChatController struct
type ChatController struct {
	ChatService *services.ChatService
}

// NewChatController initializes the chat controller
func NewChatController(service *services.ChatService) *ChatController {
	return &ChatController{ChatService: service}
}

// HandleGetConversation fetches the thread between two users
func (cc *ChatController) HandleGetConversation(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	targetID := r.URL.Query().Get("targetUserId")
	if userID == "" || targetID == "" {
		http.Error(w, "userId and targetUserId are required", http.StatusBadRequest)
		return
	}

	profile, messages, err := cc.ChatService.GetConversation(r.Context(), userID, targetID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Println("Error fetching conversation:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"profile":  profile,
		"messages": messages,
	})
}

// HandleSendMessage stores a new message or gift
func (cc *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		SenderID   string `json:"senderId"`
		ReceiverID string `json:"receiverId"`
		Content    string `json:"content"`
		GiftID     string `json:"giftId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.SenderID == "" || request.ReceiverID == "" {
		http.Error(w, "senderId and receiverId are required", http.StatusBadRequest)
		return
	}

	message, err := cc.ChatService.SendMessage(r.Context(), request.SenderID, request.ReceiverID, request.Content, request.GiftID)
	if err != nil {
		log.Println("Error sending message:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(message)
}

// HandleMarkRead marks messages the target sent to the user as read
func (cc *ChatController) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID       string `json:"userId"`
		TargetUserID string `json:"targetUserId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == "" || request.TargetUserID == "" {
		http.Error(w, "userId and targetUserId are required", http.StatusBadRequest)
		return
	}

	if err := cc.ChatService.MarkMessagesRead(r.Context(), request.UserID, request.TargetUserID); err != nil {
		log.Println("Error marking messages read:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Messages marked as read"})
}

// HandleGetGifts returns the virtual gift catalog
func (cc *ChatController) HandleGetGifts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.VirtualGifts)
}
