package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"lovelink_server/services"

	"github.com/gorilla/mux"
)

// DiscoverController handles HTTP requests for the discovery queue
type DiscoverController struct {
	DiscoverService *services.DiscoverService
}

// NewDiscoverController creates a new DiscoverController instance
func NewDiscoverController(discoverService *services.DiscoverService) *DiscoverController {
	return &DiscoverController{DiscoverService: discoverService}
}

// HandleGetDiscoverProfiles returns the ranked candidate queue for a user
func (dc *DiscoverController) HandleGetDiscoverProfiles(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	profiles, err := dc.DiscoverService.GetDiscoverProfiles(r.Context(), userID)
	if err != nil {
		log.Println("Error building discover queue:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profiles)
}
