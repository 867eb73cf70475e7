package database

import (
	"github.com/rpupo63/content-mock-backend/errs"
	"github.com/rpupo63/content-mock-backend/models"
)

type BlogPostRepo struct {
	posts *collection[models.BlogPost]
}

func NewBlogPostRepo(posts []models.BlogPost) *BlogPostRepo {
	return &BlogPostRepo{newCollection(posts, func(p models.BlogPost) string { return p.Slug })}
}

// FindAll returns all blog posts in insertion order
func (r *BlogPostRepo) FindAll() []models.BlogPost {
	return r.posts.all()
}

// FindBySlug returns the blog post with the given slug
func (r *BlogPostRepo) FindBySlug(slug string) (*models.BlogPost, error) {
	blogPost, ok := r.posts.find(slug)
	if !ok {
		return nil, errs.NewNotFound("Post")
	}
	return &blogPost, nil
}

// Count returns the number of seeded blog posts
func (r *BlogPostRepo) Count() int {
	return r.posts.len()
}
