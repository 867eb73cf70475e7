package models

import "time"

// Project represents a portfolio project
type Project struct {
	ID              string     `json:"id" yaml:"id"`
	Title           string     `json:"title" yaml:"title"`
	Description     string     `json:"description" yaml:"description"`
	LongDescription *string    `json:"longDescription,omitempty" yaml:"longDescription"`
	ImageURL        string     `json:"imageUrl" yaml:"imageUrl"`
	Tags            []string   `json:"tags" yaml:"tags"`
	Technologies    []string   `json:"technologies,omitempty" yaml:"technologies"`
	LiveLink        *string    `json:"liveLink,omitempty" yaml:"liveLink"`
	RepoLink        *string    `json:"repoLink,omitempty" yaml:"repoLink"`
	Date            *time.Time `json:"date,omitempty" yaml:"date"`
}
