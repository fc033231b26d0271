package routes

import (
	"lovelink_server/controllers"
	"lovelink_server/services"

	"github.com/gorilla/mux"
)

// RegisterAdminRoutes sets up the admin dashboard routes under /api/admin
func RegisterAdminRoutes(r *mux.Router, adminService *services.AdminService) {
	controller := controllers.NewAdminController(adminService)

	adminRouter := r.PathPrefix("/api/admin").Subrouter()
	adminRouter.HandleFunc("/metrics", controller.HandleGetMetrics).Methods("GET")
}
