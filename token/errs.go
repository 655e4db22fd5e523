package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated      = errors.New("unterminated")
	ErrNumber            = errors.New("number")
	ErrNumberLeadingZero = errors.New("leading zero")
	ErrNumberRange       = errors.New("number out of range")
	ErrIllegalChar       = errors.New("illegal character")
	ErrMalformedEmbed    = errors.New("malformed embed")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}

func UnterminatedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %s", ErrUnterminated, what), p)
}
