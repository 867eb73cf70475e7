package models

import "slices"

// clonePtr returns a pointer to a copy of *p, or nil
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Clone returns a deep copy; nil optionals stay nil and empty lists stay empty
func (p BlogPost) Clone() BlogPost {
	p.PublishedAt = clonePtr(p.PublishedAt)
	p.Tags = slices.Clone(p.Tags)
	p.Content = clonePtr(p.Content)
	return p
}

func (c Course) Clone() Course {
	c.Instructor = clonePtr(c.Instructor)
	c.Rating = clonePtr(c.Rating)
	c.StudentCount = clonePtr(c.StudentCount)
	c.Duration = clonePtr(c.Duration)
	c.Lessons = slices.Clone(c.Lessons)
	return c
}

func (p Project) Clone() Project {
	p.LongDescription = clonePtr(p.LongDescription)
	p.Tags = slices.Clone(p.Tags)
	p.Technologies = slices.Clone(p.Technologies)
	p.LiveLink = clonePtr(p.LiveLink)
	p.RepoLink = clonePtr(p.RepoLink)
	p.Date = clonePtr(p.Date)
	return p
}

func (e LeaderboardEntry) Clone() LeaderboardEntry {
	e.Achievements = slices.Clone(e.Achievements)
	return e
}
