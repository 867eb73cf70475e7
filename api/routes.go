package api

import (
	"io"

	"github.com/go-chi/chi/v5"
)

// setupRoutes registers the read-only content endpoints under /api
func setupRoutes(r chi.Router, handlers *routeHandlers, logOutput io.Writer) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware(logOutput))

		// Blog Post Handler endpoints
		r.Get("/posts", handlers.blogPostHandler.getAllBlogPosts())
		r.Get("/posts/{slug}", handlers.blogPostHandler.getBlogPost())

		// Course Handler endpoints
		r.Get("/courses", handlers.courseHandler.getAllCourses())
		r.Get("/courses/{courseID}", handlers.courseHandler.getCourse())

		// Project Handler endpoints
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())

		r.Get("/leaderboard", handlers.leaderboardHandler.getLeaderboard())

		r.Get("/health", handlers.healthHandler.getHealth())
	})
}
