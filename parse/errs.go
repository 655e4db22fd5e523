package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/pod-format/ir"
	"github.com/signadot/pod-format/token"
)

var (
	ErrParse       = errors.New("parse error")
	ErrIO          = errors.New("io error")
	ErrUnsupported = fmt.Errorf("%w: unsupported syntax", ErrParse)
)

// Error is a parse failure at a position of the input.
type Error struct {
	Source string
	Pos    *token.Pos
	Err    error
}

func (e *Error) Error() string {
	loc := e.Source
	if e.Pos != nil {
		loc = e.Pos.String()
	}
	return fmt.Sprintf("%s: parse error: %s", loc, e.Message())
}

// Message describes the failure without its location.
func (e *Error) Message() string {
	var te *token.TokenizeErr
	if errors.As(e.Err, &te) {
		return te.Err.Error()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

func (e *Error) Kind() ir.ErrorKind { return ir.ParseErrorKind }

// LineCol returns the 0-based line and column of the failure.
func (e *Error) LineCol() (int, int) {
	if e.Pos == nil {
		return 0, 0
	}
	return e.Pos.LineCol()
}

// IOError is a failure to read the input.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Path, ErrIO, e.Err)
}

func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

func (e *IOError) Kind() ir.ErrorKind { return ir.IOErrorKind }
