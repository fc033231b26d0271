package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"lovelink_server/models"
	"lovelink_server/services"
)

// SwipeController handles HTTP requests for swipe and rewind actions
type SwipeController struct {
	SwipeService *services.SwipeService
}

// NewSwipeController creates a new SwipeController instance
func NewSwipeController(swipeService *services.SwipeService) *SwipeController {
	return &SwipeController{SwipeService: swipeService}
}

// HandleSwipe processes a like, pass or superlike.
// Limit violations come back as 200 with an error code so the client can
// show its upsell prompt instead of an error page.
func (sc *SwipeController) HandleSwipe(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID       string `json:"userId"`
		TargetUserID string `json:"targetUserId"`
		Action       string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == "" || request.TargetUserID == "" || request.Action == "" {
		http.Error(w, "userId, targetUserId, and action are required", http.StatusBadRequest)
		return
	}
	switch request.Action {
	case models.SwipeActionLike, models.SwipeActionPass, models.SwipeActionSuperLike:
	default:
		http.Error(w, "invalid action", http.StatusBadRequest)
		return
	}

	result, err := sc.SwipeService.Swipe(r.Context(), request.UserID, request.TargetUserID, request.Action)
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLikeLimitReached), errors.Is(err, services.ErrInsufficientSuperLikes):
			json.NewEncoder(w).Encode(map[string]interface{}{
				"match": false,
				"error": services.ErrorCode(err),
			})
		case errors.Is(err, services.ErrAccountNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			log.Println("Error processing swipe:", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	json.NewEncoder(w).Encode(result)
}

// HandleRewind undoes the caller's most recent swipe
func (sc *SwipeController) HandleRewind(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.UserID == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	result, err := sc.SwipeService.Rewind(r.Context(), request.UserID)
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRewindNotAllowed):
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"error":   services.ErrorCode(err),
			})
		case errors.Is(err, services.ErrAccountNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			log.Println("Error processing rewind:", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	json.NewEncoder(w).Encode(result)
}
