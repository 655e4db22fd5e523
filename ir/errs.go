package ir

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValueType = errors.New("value type error")
	ErrIntegrity = errors.New("integrity violation")
	ErrCopyBlock = errors.New("blocks cannot be copied")
)

// ErrorKind discriminates the failures of the Pod library.
type ErrorKind int

const (
	UnknownErrorKind ErrorKind = iota
	ParseErrorKind
	IOErrorKind
	ValueTypeErrorKind
	IntegrityErrorKind
)

func (k ErrorKind) String() string {
	switch k {
	case ParseErrorKind:
		return "parse"
	case IOErrorKind:
		return "io"
	case ValueTypeErrorKind:
		return "value-type"
	case IntegrityErrorKind:
		return "integrity"
	default:
		return "unknown"
	}
}

// KindOf returns the kind of the first error in err's chain that reports
// one.
func KindOf(err error) ErrorKind {
	var k interface{ Kind() ErrorKind }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return UnknownErrorKind
}

// ValueTypeError reports an accessor called on a value whose type cannot be
// coerced to the requested one.  The node is left untouched.
type ValueTypeError struct {
	Func string
	Type Type
}

func valueTypeErr(fn string, v *Value) *ValueTypeError {
	return &ValueTypeError{Func: fn, Type: v.TypeOf()}
}

func (e *ValueTypeError) Error() string {
	return fmt.Sprintf("%s() called on node of incompatible type %s", e.Func, e.Type)
}

func (e *ValueTypeError) Unwrap() error   { return ErrValueType }
func (e *ValueTypeError) Kind() ErrorKind { return ValueTypeErrorKind }

// IntegrityError aggregates every ownership violation found in a subtree.
// The offending elements have already been dropped when it is returned.
type IntegrityError struct {
	Node       string
	Violations []string
}

func (e *IntegrityError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "integrity violation(s) detected in %s:", e.Node)
	for _, v := range e.Violations {
		b.WriteString("\n")
		b.WriteString(v)
	}
	return b.String()
}

func (e *IntegrityError) Unwrap() error   { return ErrIntegrity }
func (e *IntegrityError) Kind() ErrorKind { return IntegrityErrorKind }
