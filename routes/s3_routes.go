package routes

import (
	"lovelink_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up photo storage routes under /api/s3
func RegisterS3Routes(r *mux.Router) {
	s3Router := r.PathPrefix("/api/s3").Subrouter()
	s3Router.HandleFunc("/uploadUrl", controllers.GeneratePresignedURL).Methods("POST")
	s3Router.HandleFunc("/readUrl", controllers.GetPresignedReadURL).Methods("POST")
}
