package dto

import "time"

type MetricResponse struct {
	Value int    `json:"value"`
	Text  string `json:"text"`
}

type RouteResponse struct {
	Mode          string         `json:"mode"`
	Duration      MetricResponse `json:"duration"`
	Distance      MetricResponse `json:"distance"`
	Polyline      string         `json:"polyline,omitempty"`
	NextDeparture *time.Time     `json:"nextDeparture,omitempty"`
	ScheduleNote  string         `json:"scheduleNote,omitempty"`
}

type ListRoutesResponse struct {
	Routes []RouteResponse `json:"routes"`
}
