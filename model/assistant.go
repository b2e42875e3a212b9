package model

import "time"

// ChatRequest for the assistant chat endpoint. Context selects the system
// prompt variant: general, service_search or booking_help.
type ChatRequest struct {
	Message string `json:"message"`
	Context string `json:"context"`
}

type ChatResponse struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// SuggestRequest for category suggestions based on a free-form description.
type SuggestRequest struct {
	Description string `json:"description"`
	Location    string `json:"location"`
}

type SuggestResponse struct {
	Suggestions string    `json:"suggestions"`
	Timestamp   time.Time `json:"timestamp"`
}
