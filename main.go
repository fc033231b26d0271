package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"lovelink_server/routes"
	"lovelink_server/services"
	"lovelink_server/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Select the storage backend. STORAGE_BACKEND=memory runs on the seeded
	// in-process store; anything else uses DynamoDB.
	var store services.Store
	if os.Getenv("STORAGE_BACKEND") == "memory" {
		log.Println("Using in-memory store with demo data...")
		memoryStore := services.NewMemoryStore()
		if err := memoryStore.SeedDemoData(context.Background()); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		store = memoryStore
	} else {
		log.Println("Initializing DynamoDB client...")
		dynamoClient := services.InitializeDynamoDBClient()
		store = &services.DynamoStore{Dynamo: &services.DynamoService{Client: dynamoClient}}
		log.Println("DynamoDB client initialized.")
	}

	// Initialize Services
	userProfileService := &services.UserProfileService{Store: store}
	discoverService := &services.DiscoverService{Store: store}
	swipeService := services.NewSwipeService(store)
	matchService := &services.MatchService{Store: store}
	chatService := &services.ChatService{Store: store}
	moderationService := services.NewModerationService(store)
	adminService := &services.AdminService{Store: store}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to LoveLink")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterDiscoverRoutes(r, discoverService)
	routes.RegisterSwipeRoutes(r, swipeService)
	routes.RegisterMatchRoutes(r, matchService)
	routes.RegisterChatRoutes(r, chatService)
	routes.RegisterModerationRoutes(r, moderationService)
	routes.RegisterAdminRoutes(r, adminService)
	routes.RegisterS3Routes(r)

	// Mount the Socket.IO chat relay
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()
	r.Handle("/socket.io/", socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
