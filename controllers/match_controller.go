package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"lovelink_server/services"

	"github.com/gorilla/mux"
)

// MatchController handles HTTP requests for match listings
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matchService *services.MatchService) *MatchController {
	return &MatchController{MatchService: matchService}
}

// HandleGetMatches returns the user's matched conversations
func (mc *MatchController) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	summaries, err := mc.MatchService.GetCurrentMatches(r.Context(), userID)
	if err != nil {
		log.Println("Error fetching matches:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summaries)
}

// HandleGetLikedMe returns profiles with an unresolved like toward the user.
// Whether the client may show them (or only blurred teasers) is decided by
// the caller from the account's tier.
func (mc *MatchController) HandleGetLikedMe(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	profiles, err := mc.MatchService.GetUsersWhoLikedMe(r.Context(), userID)
	if err != nil {
		log.Println("Error fetching likes:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profiles)
}
