package handlers

import (
	"log"
	"net/http"
	"strings"

	"campus-transit-service/internal/api/dto"
	"campus-transit-service/internal/ports"
)

// BuildingHandler exposes read-only campus dataset endpoints.
type BuildingHandler struct {
	Repo ports.BuildingRepository
}

func (h *BuildingHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	buildings, err := h.Repo.ListBuildings(r.Context())
	if err != nil {
		log.Printf("list buildings failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	campus := strings.TrimSpace(r.URL.Query().Get("campus"))

	res := dto.ListBuildingsResponse{Buildings: make([]dto.BuildingResponse, 0, len(buildings))}
	for _, b := range buildings {
		if campus != "" && !strings.EqualFold(b.Campus, campus) {
			continue
		}
		res.Buildings = append(res.Buildings, dto.BuildingResponse{
			Code:     b.Code,
			Name:     b.Name,
			Campus:   b.Campus,
			Address:  b.Address,
			Location: dto.CoordinateResponse{Lat: b.Location.Lat, Lng: b.Location.Lng},
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *BuildingHandler) Campuses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	campuses, err := h.Repo.ListCampuses(r.Context())
	if err != nil {
		log.Printf("list campuses failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListCampusesResponse{Campuses: make([]dto.CampusResponse, 0, len(campuses))}
	for _, c := range campuses {
		res.Campuses = append(res.Campuses, dto.CampusResponse{
			Code:     c.Code,
			Name:     c.Name,
			Location: dto.CoordinateResponse{Lat: c.Location.Lat, Lng: c.Location.Lng},
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
