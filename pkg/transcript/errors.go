package transcript

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding is returned when the document is not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid utf-8 encoding")

// ReadError reports a document that could not be read or decoded at all.
// Malformed cues never produce a ReadError; they are filtered out.
type ReadError struct {
	Source string
	Err    error
}

func (e *ReadError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("read transcript: %v", e.Err)
	}
	return fmt.Sprintf("read transcript %s: %v", e.Source, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
