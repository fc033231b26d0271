package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"lovelink_server/services"
)

// AdminController handles HTTP requests for the admin dashboard
type AdminController struct {
	AdminService *services.AdminService
}

// NewAdminController creates a new AdminController instance
func NewAdminController(adminService *services.AdminService) *AdminController {
	return &AdminController{AdminService: adminService}
}

// HandleGetMetrics returns a fresh metrics snapshot
func (ac *AdminController) HandleGetMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := ac.AdminService.GetMetrics(r.Context())
	if err != nil {
		log.Println("Error computing metrics:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(metrics)
}
