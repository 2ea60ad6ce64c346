package runs

import (
	"errors"

	"github.com/reusee/zom/zomlang"
)

var ErrSourceTooLarge = errors.New("source too large")

// Error is a failure of one source, kept with that source for diagnostics.
type Error struct {
	Source *zomlang.Source
	Err    error
}

func (e *Error) Error() string {
	return e.Source.Name + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Annotated renders the error with the offending source line when it has a position.
// The result ends with a newline.
func (e *Error) Annotated() string {
	var p interface {
		Position() zomlang.Pos
	}
	if errors.As(e.Err, &p) {
		return e.Source.Annotate(e.Err)
	}
	return e.Error() + "\n"
}
