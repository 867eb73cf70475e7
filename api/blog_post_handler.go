package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/content-mock-backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blogPostHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogPostRepo *database.BlogPostRepo
}

func newBlogPostHandler(blogPostRepo *database.BlogPostRepo) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		blogPostRepo: blogPostRepo,
	}
}

// getAllBlogPosts retrieves all blog posts
// @Summary Get all blog posts
// @Description Retrieves every blog post in insertion order
// @Tags Blog Posts
// @Produce json
// @Success 200 {array} models.BlogPost "List of blog posts"
// @Router /api/posts [get]
func (h blogPostHandler) getAllBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, r, h.blogPostRepo.FindAll())
	}
}

// getBlogPost retrieves a specific blog post by slug
// @Summary Get blog post
// @Description Retrieves a single blog post by its slug
// @Tags Blog Posts
// @Produce json
// @Param slug path string true "Blog post slug"
// @Success 200 {object} models.BlogPost "Blog post details"
// @Failure 404 {string} string "Post not found"
// @Router /api/posts/{slug} [get]
func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		blogPost, err := h.blogPostRepo.FindBySlug(slug)
		if err != nil {
			h.logger.Debug().Str("slug", slug).Msg("blog post not found")
			h.responder.WriteError(w, r, err)
			return
		}

		h.responder.WriteJSON(w, r, blogPost)
	}
}
