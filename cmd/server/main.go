package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"campus-transit-service/internal/adapters/directions"
	"campus-transit-service/internal/adapters/repositories"
	"campus-transit-service/internal/api"
	"campus-transit-service/internal/config"
	"campus-transit-service/internal/services"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Google Directions) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/buildings.json")
	port := config.Get("PORT", "8080")
	tzName := config.Get("SHUTTLE_TZ", "America/Toronto")
	override := config.GetBool("SHUTTLE_OVERRIDE", false)

	apiKey := os.Getenv("DIRECTIONS_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		log.Fatal("DIRECTIONS_API_KEY is required")
	}

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed the campus dataset on startup for local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	provider, err := directions.NewGoogleDirectionsProvider(apiKey)
	if err != nil {
		log.Fatal(err)
	}

	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Fatalf("load shuttle time zone %q: %v", tzName, err)
	}
	schedule := services.NewShuttleSchedule(loc, override)
	if override {
		log.Println("Shuttle schedule override enabled (season/weekday checks relaxed)")
	}

	repo := repositories.NewSqliteBuildingRepository(db)
	router := api.NewRouter(repo, provider, schedule)

	// Timeouts leave headroom for the two concurrent directions calls.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
