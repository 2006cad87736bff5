package profile

import "errors"

var (
	// ErrMalformed indicates a document that is not valid JSON or does not
	// match the structure its schema field claims.
	ErrMalformed = errors.New("malformed profile document")
	// ErrUnknownSchema indicates a document whose op3d_schema value is not a
	// recognized profile kind.
	ErrUnknownSchema = errors.New("unknown profile schema")
	// ErrNotFound indicates a lookup for a profile id that does not exist.
	ErrNotFound = errors.New("profile not found")
)
