package main

import (
	"context"
	"fmt"
	"log"

	"gamevault/backend/internal/config"
	"gamevault/backend/internal/database"
	"gamevault/backend/internal/handler"
	"gamevault/backend/internal/storage"
)

func init() {
	config.LoadConfig()
}

// @title           GameVault API
// @version         1.0
// @description     This is the API for the GameVault catalog.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	if err := database.SeedIfEmpty(database.DB); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	store := storage.New(database.DB)

	// Make sure every genre/platform label on a game has a catalog row.
	if err := store.SyncCatalog(context.Background()); err != nil {
		log.Fatalf("Failed to sync catalog labels: %v", err)
	}

	router := handler.Router(handler.New(store))

	addr := ":" + config.AppConfig.Port
	fmt.Println("Server is running on " + addr)
	fmt.Println("Swagger UI is available at http://localhost" + addr + "/swagger/index.html")
	log.Fatal(router.Run(addr))
}
