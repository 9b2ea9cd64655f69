// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jval

import "fmt"

// An ErrKind classifies the lexical failures reported by the tokenizer and
// the code-point reader.
type ErrKind byte

// Constants defining the valid ErrKind values.
const (
	UnexpectedChar     ErrKind = iota // a character with no token interpretation
	BadKeyword                        // a malformed true, false, or null constant
	BadNumber                         // malformed numeric text
	UnterminatedString                // input ended inside a string literal
	InvalidUTF8                       // input is not valid UTF-8
)

var errKindStr = [...]string{
	UnexpectedChar:     "unexpected character",
	BadKeyword:         "malformed keyword",
	BadNumber:          "malformed number",
	UnterminatedString: "unterminated string",
	InvalidUTF8:        "invalid UTF-8",
}

func (e ErrKind) String() string {
	v := int(e)
	if v >= len(errKindStr) {
		return "unknown error"
	}
	return errKindStr[v]
}

// SyntaxError is the concrete type of errors reported while tokenizing.
type SyntaxError struct {
	Kind    ErrKind // what went wrong
	Offset  int     // byte offset in the input where it went wrong
	Message string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", s.Kind, s.Offset, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
