package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound = errors.New("not found")
)

// Fixture loading errors. These only surface at startup.
var (
	ErrInvalidSeed  = errors.New("invalid seed data")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrInvalidLevel = errors.New("invalid course level")
)

// NewNotFound renders as "<entity> not found", e.g. "Post not found".
func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

func NewDuplicateKeyError(collection, field, key string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDuplicateKey,
		Details:    fmt.Sprintf("%s %s %q appears more than once", collection, field, key),
		Field:      field,
	}
}

func NewInvalidLevelError(courseID, level string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrInvalidLevel,
		Details:    fmt.Sprintf("course %q has level %q, want Beginner, Intermediate or Advanced", courseID, level),
		Field:      "level",
	}
}

func NewInvalidSeedError(collection, reason string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrInvalidSeed,
		Details:    fmt.Sprintf("%s: %s", collection, reason),
		Cause:      cause,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidSeed(err error) bool {
	return errors.Is(err, ErrInvalidSeed) || errors.Is(err, ErrDuplicateKey) || errors.Is(err, ErrInvalidLevel)
}
