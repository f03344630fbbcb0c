package api

import (
	"net/http"

	"campus-transit-service/internal/api/handlers"
	"campus-transit-service/internal/ports"
	"campus-transit-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.BuildingRepository, provider ports.DirectionsProvider, schedule *services.ShuttleSchedule) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{
		Provider: provider,
		Schedule: schedule,
	}
	buildingHandler := &handlers.BuildingHandler{Repo: repo}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/routes", routeHandler.Options)
	mux.HandleFunc("/buildings", buildingHandler.List)
	mux.HandleFunc("/campuses", buildingHandler.Campuses)

	return loggingMiddleware(mux)
}
