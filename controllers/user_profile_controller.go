package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"lovelink_server/models"
	"lovelink_server/services"

	"github.com/gorilla/mux"
)

// UserProfileController handles HTTP requests for accounts, profiles and
// monetization actions
type UserProfileController struct {
	UserProfileService *services.UserProfileService
}

// NewUserProfileController creates a new UserProfileController instance
func NewUserProfileController(userProfileService *services.UserProfileService) *UserProfileController {
	return &UserProfileController{UserProfileService: userProfileService}
}

// HandleCreateAccount registers a new account
func (upc *UserProfileController) HandleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Email == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}

	account, err := upc.UserProfileService.CreateAccount(r.Context(), request.Email)
	if err != nil {
		log.Println("Error creating account:", err)
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(account)
}

// HandleGetAccount fetches an account by user id
func (upc *UserProfileController) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	account, err := upc.UserProfileService.GetAccount(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(account)
}

// HandleUpdateProfile stores profile attributes and marks onboarding complete
func (upc *UserProfileController) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if profile.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	updated, err := upc.UserProfileService.UpdateProfile(r.Context(), profile)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Println("Error updating profile:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

// HandleGetQuiz returns the onboarding quiz questions
func (upc *UserProfileController) HandleGetQuiz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(services.QuizQuestions)
}

// HandleSubscribe switches the account's subscription tier
func (upc *UserProfileController) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
		Tier   string `json:"tier"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == "" || request.Tier == "" {
		http.Error(w, "userId and tier are required", http.StatusBadRequest)
		return
	}

	account, err := upc.UserProfileService.Subscribe(r.Context(), request.UserID, request.Tier)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(account)
}

// HandlePurchaseSuperLikes credits purchased super likes
func (upc *UserProfileController) HandlePurchaseSuperLikes(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID   string `json:"userId"`
		Quantity int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.UserID == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	account, err := upc.UserProfileService.PurchaseSuperLikes(r.Context(), request.UserID, request.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(account)
}

// HandleActivateBoost consumes a boost for temporary ranking priority
func (upc *UserProfileController) HandleActivateBoost(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.UserID == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	account, err := upc.UserProfileService.ActivateBoost(r.Context(), request.UserID)
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInsufficientBoosts):
			json.NewEncoder(w).Encode(map[string]string{"error": services.ErrorCode(err)})
		case errors.Is(err, services.ErrAccountNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			log.Println("Error activating boost:", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	json.NewEncoder(w).Encode(account)
}
