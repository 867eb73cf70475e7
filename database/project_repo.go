package database

import (
	"github.com/rpupo63/content-mock-backend/errs"
	"github.com/rpupo63/content-mock-backend/models"
)

type ProjectRepo struct {
	projects *collection[models.Project]
}

func NewProjectRepo(projects []models.Project) *ProjectRepo {
	return &ProjectRepo{newCollection(projects, func(p models.Project) string { return p.ID })}
}

// FindAll returns all projects in insertion order
func (r *ProjectRepo) FindAll() []models.Project {
	return r.projects.all()
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(id string) (*models.Project, error) {
	project, ok := r.projects.find(id)
	if !ok {
		return nil, errs.NewNotFound("Project")
	}
	return &project, nil
}

func (r *ProjectRepo) Count() int {
	return r.projects.len()
}
