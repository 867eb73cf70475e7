package database

import (
	"github.com/rpupo63/content-mock-backend/errs"
	"github.com/rpupo63/content-mock-backend/models"
)

type CourseRepo struct {
	courses *collection[models.Course]
}

func NewCourseRepo(courses []models.Course) *CourseRepo {
	return &CourseRepo{newCollection(courses, func(c models.Course) string { return c.ID })}
}

// FindAll returns all courses in insertion order
func (r *CourseRepo) FindAll() []models.Course {
	return r.courses.all()
}

// FindByID returns the course with the given id
func (r *CourseRepo) FindByID(id string) (*models.Course, error) {
	course, ok := r.courses.find(id)
	if !ok {
		return nil, errs.NewNotFound("Course")
	}
	return &course, nil
}

func (r *CourseRepo) Count() int {
	return r.courses.len()
}
