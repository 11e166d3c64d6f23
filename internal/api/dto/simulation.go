package dto

import "transport-tycoon/internal/adapters/recorder"

type SimulationRequest struct {
	Destinations  string `json:"destinations"`
	IncludeEvents bool   `json:"include_events"`
}

type SimulationResponse struct {
	RunID     string                 `json:"run_id"`
	Ticks     int                    `json:"ticks"`
	Delivered map[string][]int       `json:"delivered"`
	Events    []recorder.EventRecord `json:"events,omitempty"`
}
