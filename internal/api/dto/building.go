package dto

type CoordinateResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type BuildingResponse struct {
	Code     string             `json:"code"`
	Name     string             `json:"name"`
	Campus   string             `json:"campus"`
	Address  string             `json:"address"`
	Location CoordinateResponse `json:"location"`
}

type ListBuildingsResponse struct {
	Buildings []BuildingResponse `json:"buildings"`
}

type CampusResponse struct {
	Code     string             `json:"code"`
	Name     string             `json:"name"`
	Location CoordinateResponse `json:"location"`
}

type ListCampusesResponse struct {
	Campuses []CampusResponse `json:"campuses"`
}
