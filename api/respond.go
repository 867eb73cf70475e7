package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/rpupo63/content-mock-backend/errs"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// WriteJSON writes data as a 200 JSON body
func (r Responder) WriteJSON(w http.ResponseWriter, req *http.Request, data any) {
	render.JSON(w, req, data)
}

// WriteError maps err to a status code and a plain-text body. Errors that are
// not *errs.ApiErr are logged and reported as a bare 500.
func (r Responder) WriteError(w http.ResponseWriter, req *http.Request, err error) {
	var apiErr *errs.ApiErr

	if !errors.As(err, &apiErr) {
		wrapped := errs.NewInternalErrorWithCause("unexpected error", err)
		r.logger.Error().Str("path", req.URL.Path).Msg(wrapped.GetFullError())
		render.Status(req, http.StatusInternalServerError)
		render.PlainText(w, req, http.StatusText(http.StatusInternalServerError))
		return
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().Str("path", req.URL.Path).Msg(apiErr.GetFullError())
	}

	render.Status(req, apiErr.StatusCode)
	render.PlainText(w, req, apiErr.Error())
}
