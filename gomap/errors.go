package gomap

import "errors"

var (
	ErrRange       = errors.New("value out of range")
	ErrUnsupported = errors.New("unsupported go value")
)
