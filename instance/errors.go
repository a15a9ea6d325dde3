package instance

import "errors"

var (
	// ErrParse signals malformed instance text. The wrapped message carries
	// the 1-based line number.
	ErrParse = errors.New("instance: parse error")

	// ErrNoTour is returned when a solution without a tour is written.
	ErrNoTour = errors.New("instance: result has no tour")
)
