package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrBadRequest marks caller errors that map to HTTP 400
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound marks missing rows that map to HTTP 404
	ErrNotFound = errors.New("not found")

	// ErrJobNotFound is returned when no job row matches the requested id
	ErrJobNotFound = fmt.Errorf("job %w", ErrNotFound)
)
