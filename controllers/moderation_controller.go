package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"lovelink_server/services"
)

// ModerationController handles HTTP requests for blocks, reports and photo
// verification
type ModerationController struct {
	ModerationService *services.ModerationService
}

// NewModerationController creates a new ModerationController instance
func NewModerationController(moderationService *services.ModerationService) *ModerationController {
	return &ModerationController{ModerationService: moderationService}
}

// HandleBlock records a block and removes the pair's match records
func (mc *ModerationController) HandleBlock(w http.ResponseWriter, r *http.Request) {
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

	if err := mc.ModerationService.BlockUser(r.Context(), request.UserID, request.TargetUserID); err != nil {
		log.Println("Error blocking user:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "User blocked"})
}

// HandleReport appends an abuse report
func (mc *ModerationController) HandleReport(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID       string `json:"userId"`
		TargetUserID string `json:"targetUserId"`
		Reason       string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == "" || request.TargetUserID == "" || request.Reason == "" {
		http.Error(w, "userId, targetUserId, and reason are required", http.StatusBadRequest)
		return
	}

	report, err := mc.ModerationService.ReportUser(r.Context(), request.UserID, request.TargetUserID, request.Reason)
	if err != nil {
		log.Println("Error reporting user:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// HandleVerifyPhoto runs an uploaded photo past the verification oracle
func (mc *ModerationController) HandleVerifyPhoto(w http.ResponseWriter, r *http.Request) {
	var request struct {
		PhotoKey string `json:"photoKey"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.PhotoKey == "" {
		http.Error(w, "photoKey is required", http.StatusBadRequest)
		return
	}

	verification, err := mc.ModerationService.VerifyPhoto(r.Context(), request.PhotoKey)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(verification)
}
