package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/content-mock-backend/database"
	"github.com/rs/zerolog/log"
)

type courseHandler struct {
	responder  Responder
	courseRepo *database.CourseRepo
}

func newCourseHandler(courseRepo *database.CourseRepo) courseHandler {
	logger := log.With().Str("handlerName", "courseHandler").Logger()

	return courseHandler{
		responder:  NewResponder(logger),
		courseRepo: courseRepo,
	}
}

// getAllCourses retrieves all courses
// @Summary Get all courses
// @Tags Courses
// @Produce json
// @Success 200 {array} models.Course "List of courses"
// @Router /api/courses [get]
func (h courseHandler) getAllCourses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, r, h.courseRepo.FindAll())
	}
}

// getCourse retrieves a specific course by ID
// @Summary Get course
// @Tags Courses
// @Produce json
// @Param courseID path string true "Course ID"
// @Success 200 {object} models.Course "Course details"
// @Failure 404 {string} string "Course not found"
// @Router /api/courses/{courseID} [get]
func (h courseHandler) getCourse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		course, err := h.courseRepo.FindByID(chi.URLParam(r, "courseID"))
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		h.responder.WriteJSON(w, r, course)
	}
}
