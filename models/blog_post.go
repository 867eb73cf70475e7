package models

import (
	"time"
)

// PostAuthor is the byline shown on a blog post
type PostAuthor struct {
	Name      string `json:"name" yaml:"name"`
	AvatarURL string `json:"avatarUrl" yaml:"avatarUrl"`
}

// BlogPost represents a complete blog post with metadata
type BlogPost struct {
	ID          string     `json:"id" yaml:"id"`
	Slug        string     `json:"slug" yaml:"slug"`
	Title       string     `json:"title" yaml:"title"`
	Summary     string     `json:"summary" yaml:"summary"`
	ImageURL    string     `json:"imageUrl" yaml:"imageUrl"`
	Author      PostAuthor `json:"author" yaml:"author"`
	PublishedAt *time.Time `json:"publishedAt,omitempty" yaml:"publishedAt"`
	Tags        []string   `json:"tags" yaml:"tags"`
	Content     *string    `json:"content,omitempty" yaml:"content"`
}
