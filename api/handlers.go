package api

import (
	"time"

	"github.com/rpupo63/content-mock-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, startupTime time.Time, instanceID string) *routeHandlers {
	return &routeHandlers{
		blogPostHandler:    newBlogPostHandler(database.BlogPostRepo()),
		courseHandler:      newCourseHandler(database.CourseRepo()),
		projectHandler:     newProjectHandler(database.ProjectRepo()),
		leaderboardHandler: newLeaderboardHandler(database.LeaderboardRepo()),
		healthHandler:      newHealthHandler(database, startupTime, instanceID),
	}
}
