package eograph

import "errors"

// Sentinel errors for the eograph package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("eograph: invalid move notation")
	ErrInvalidState    = errors.New("eograph: invalid orientation state")

	// Table errors
	ErrInvalidGenerator = errors.New("eograph: invalid generator table")
	ErrUnknownFace      = errors.New("eograph: no generator for face")

	// Search errors
	ErrStartNotFound = errors.New("eograph: start state not in graph")
	ErrInvalidGraph  = errors.New("eograph: malformed transition graph")
)
