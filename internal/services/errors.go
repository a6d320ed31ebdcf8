package services

import "errors"

var (
	// ErrFilmNotFound covers every way a catalog lookup can fail: transport
	// errors, non-200 responses, undecodable or incomplete payloads.
	ErrFilmNotFound = errors.New("film not found")
	ErrListNotFound = errors.New("list with selected id not found")
)
