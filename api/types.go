package api

import "time"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	blogPostHandler    blogPostHandler
	courseHandler      courseHandler
	projectHandler     projectHandler
	leaderboardHandler leaderboardHandler
	healthHandler      healthHandler
}

// HealthResponse is the body of GET /api/health
type HealthResponse struct {
	Status      string         `json:"status" example:"ok"`
	InstanceID  string         `json:"instanceId"`
	StartedAt   time.Time      `json:"startedAt"`
	Uptime      string         `json:"uptime" example:"1h2m3s"`
	Collections map[string]int `json:"collections"`
}
