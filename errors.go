package nset

import (
	"fmt"
	"strconv"
)

// ErrorKind classifies parse errors.
type ErrorKind int

const (
	// MalformedInput: the text is not enclosed in '{' and '}'.
	MalformedInput ErrorKind = iota + 1
	// UnterminatedString: a text literal has no closing '"'.
	UnterminatedString
	// InvalidToken: an element is neither a number, a text literal, nor a set.
	InvalidToken
	// UnexpectedCharacter: a group is missing ',' or '}' after an element.
	UnexpectedCharacter
	// TrailingInput: characters follow the closing '}' of the outermost set.
	TrailingInput
	// DepthExceeded: nesting is deeper than configured with MaxDepth.
	DepthExceeded
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedInput:
		return "malformed input"
	case UnterminatedString:
		return "unterminated string"
	case InvalidToken:
		return "invalid token"
	case UnexpectedCharacter:
		return "unexpected character"
	case TrailingInput:
		return "trailing input"
	case DepthExceeded:
		return "nesting too deep"
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// ParseError is returned for text which is not a well-formed set. Offset is the
// byte position of the error in the input. Line is set by Decoder only and
// counts from 1.
type ParseError struct {
	Kind   ErrorKind
	Offset int
	Line   int
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Msg == "" {
		return "nset: " + e.Kind.String()
	}
	if e.Line > 0 {
		return fmt.Sprintf("nset: %s at line %d, offset %d: %s", e.Kind, e.Line, e.Offset, e.Msg)
	}
	return fmt.Sprintf("nset: %s at offset %d: %s", e.Kind, e.Offset, e.Msg)
}

// Is matches parse errors of the same kind, which allows checks like
//
//     errors.Is(err, nset.ErrUnterminatedString)
//
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrMalformedInput      = &ParseError{Kind: MalformedInput}
	ErrUnterminatedString  = &ParseError{Kind: UnterminatedString}
	ErrInvalidToken        = &ParseError{Kind: InvalidToken}
	ErrUnexpectedCharacter = &ParseError{Kind: UnexpectedCharacter}
	ErrTrailingInput       = &ParseError{Kind: TrailingInput}
	ErrDepthExceeded       = &ParseError{Kind: DepthExceeded}
)

func newParseError(kind ErrorKind, offset int, msg string, msgargs ...interface{}) *ParseError {
	if len(msgargs) > 0 {
		msg = fmt.Sprintf(msg, msgargs...)
	}
	return &ParseError{Kind: kind, Offset: offset, Msg: msg}
}
