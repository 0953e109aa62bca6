package api

import "time"

// Public JSON types returned by the API. These are intentionally decoupled
// from the core and responder types so the wire shape the front-end depends
// on stays fixed while internals move.

// ProgressEntryView is one element of GET /api/history.
type ProgressEntryView struct {
	Week     string      `json:"week"`
	Date     string      `json:"date"` // YYYY-MM-DD
	ImageURL string      `json:"image_url"`
	Status   string      `json:"status"`
	Score    int         `json:"score"`
	Metrics  MetricsView `json:"metrics"`
}

// MetricsView holds the four per-symptom scores.
type MetricsView struct {
	Redness      int `json:"redness"`
	Inflammation int `json:"inflammation"`
	Scaling      int `json:"scaling"`
	Texture      int `json:"texture"`
}

// AnalysisResponse is the payload for POST /api/analyze.
type AnalysisResponse struct {
	Prediction string      `json:"prediction"`
	Confidence float64     `json:"confidence"`
	Symptoms   []string    `json:"symptoms"`
	Triggers   []string    `json:"triggers"`
	Routine    RoutineView `json:"routine"`
	Warnings   []string    `json:"warnings"`
}

// RoutineView is the daily care split inside AnalysisResponse.
type RoutineView struct {
	Morning   string `json:"morning"`
	Night     string `json:"night"`
	Treatment string `json:"treatment"`
}

// SkinCareResponse is the payload for POST /api/analyze-skin-care.
type SkinCareResponse struct {
	SkinType        string   `json:"skin_type"`
	SkinColor       string   `json:"skin_color"`
	Recommendations []string `json:"recommendations"`
}

// StatsResponse is the payload for GET /api/stats.
type StatsResponse struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// ProgressResponse is the payload for POST /api/progress.
type ProgressResponse struct {
	Message  string            `json:"message"`
	Analysis string            `json:"analysis"`
	NewEntry ProgressEntryView `json:"new_entry"`
}

// ChatRequest is the body for POST /api/chat. Message may be absent.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the payload for POST /api/chat.
type ChatResponse struct {
	Response string `json:"response"`
}

// HealthResponse is the payload for GET /healthz.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"` // RFC3339
}

// APIError is a standard error payload.
type APIError struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"` // RFC3339
}

// TimeNow abstracts time for tests; overridden in tests.
var TimeNow = func() time.Time { return time.Now() }
