package m3u8

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package is a *ParseError that
// matches exactly one of them with errors.Is.
var (
	ErrMalformed  = errors.New("malformed playlist")
	ErrIO         = errors.New("i/o error")
	ErrParseFloat = errors.New("invalid float")
	ErrParseInt   = errors.New("invalid integer")
)

var ErrExtM3UAbsent = errors.New("#EXTM3U absent")
var ErrNotTagLine = errors.New("line is not a tag")
var ErrMissingEquals = errors.New("attribute without '='")
var ErrMissingComma = errors.New("expected ','")
var ErrEmptyValue = errors.New("empty value")

// ParseError describes a failed parse or encode.
type ParseError struct {
	Kind  error  // one of ErrMalformed, ErrIO, ErrParseFloat, ErrParseInt
	Input string // offending input, if any
	Err   error  // underlying cause
}

func (e *ParseError) Error() string {
	switch {
	case e.Input != "" && e.Err != nil:
		return fmt.Sprintf("%v: %v: %q", e.Kind, e.Err, e.Input)
	case e.Err != nil:
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	case e.Input != "":
		return fmt.Sprintf("%v: %q", e.Kind, e.Input)
	}
	return e.Kind.Error()
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func malformed(input string, cause error) error {
	return &ParseError{Kind: ErrMalformed, Input: input, Err: cause}
}

func ioError(cause error) error {
	return &ParseError{Kind: ErrIO, Err: cause}
}

func floatError(input string, cause error) error {
	return &ParseError{Kind: ErrParseFloat, Input: input, Err: cause}
}

func intError(input string, cause error) error {
	return &ParseError{Kind: ErrParseInt, Input: input, Err: cause}
}
