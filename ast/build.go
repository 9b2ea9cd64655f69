// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bytes"
	"io"

	"github.com/creachadair/jval"
)

// Parse parses a complete JSON document from r and returns its value.
// The source is consumed destructively in a single pass; it must be seekable
// so the code-point reader can refetch split UTF-8 sequences. In case of a
// lexical error, the error has concrete type [*jval.SyntaxError].
//
// An input with no tokens parses to Null. If the input encodes several
// top-level values, the last one wins.
func Parse(r io.ReadSeeker) (Value, error) {
	toks, err := jval.NewTokenizer(jval.NewReader(r)).Tokenize()
	if err != nil {
		return nil, err
	}
	return build(toks), nil
}

// ParseBytes parses a complete JSON document from an in-memory buffer.
// It is otherwise equivalent to Parse.
func ParseBytes(data []byte) (Value, error) { return Parse(bytes.NewReader(data)) }

// A cursor is a forward-only position in a token sequence, shared by the
// object and array builders so that recursion resumes where a nested
// structure ended. The sequence itself is never modified.
type cursor struct {
	toks []jval.Token
	pos  int
}

// next returns the token at the cursor and advances past it.
// The flag is false once the sequence is exhausted.
func (c *cursor) next() (jval.Token, bool) {
	if c.pos >= len(c.toks) {
		return jval.Token{}, false
	}
	tok := c.toks[c.pos]
	c.pos++
	return tok, true
}

// build constructs the value of a complete token sequence. Every token is
// visited: structural opens recurse into the object or array builder, each
// literal replaces the candidate result, and delimiters carry no value. The
// last assignment wins, so tokens trailing a complete document override it.
func build(toks []jval.Token) Value {
	c := &cursor{toks: toks}
	var v Value = Null{}
	for {
		tok, ok := c.next()
		if !ok {
			return v
		}
		switch tok.Kind {
		case jval.LBrace:
			v = buildObject(c)
		case jval.LSquare:
			v = buildArray(c)
		case jval.String, jval.Num, jval.Bool, jval.Null:
			v = literal(tok)
		}
	}
}

// buildObject consumes members up to the matching close brace.
// Precondition: the open brace has already been consumed.
//
// The builder alternates between expecting a key and expecting a value,
// switched by colons and commas. A string seen while expecting a key is held
// as the pending key; any value seen while a key is held is inserted under
// it and the key is cleared. A nested open with no key held is ignored, and
// its tokens fall through to this level. Quote markers and stray close
// brackets carry no meaning here.
func buildObject(c *cursor) Object {
	obj := make(Object)
	var key string
	var haveKey bool
	inKey := true // member keys precede the first colon

	for {
		tok, ok := c.next()
		if !ok {
			return obj
		}
		switch tok.Kind {
		case jval.RBrace:
			return obj

		case jval.Colon:
			inKey = false
		case jval.Comma:
			inKey = true

		case jval.String:
			if inKey {
				key, haveKey = tok.Text, true
			} else if haveKey {
				obj[key] = String(tok.Text)
				haveKey = false
			}

		case jval.Num, jval.Bool, jval.Null:
			if haveKey {
				obj[key] = literal(tok)
				haveKey = false
			}

		case jval.LBrace:
			if haveKey {
				obj[key] = buildObject(c)
				haveKey = false
			}
		case jval.LSquare:
			if haveKey {
				obj[key] = buildArray(c)
				haveKey = false
			}
		}
	}
}

// buildArray consumes elements up to the matching close bracket, appending
// each literal and each nested structure in encounter order. Delimiters
// other than the close bracket carry no meaning here.
// Precondition: the open bracket has already been consumed.
func buildArray(c *cursor) Array {
	arr := Array{}
	for {
		tok, ok := c.next()
		if !ok {
			return arr
		}
		switch tok.Kind {
		case jval.RSquare:
			return arr
		case jval.LBrace:
			arr = append(arr, buildObject(c))
		case jval.LSquare:
			arr = append(arr, buildArray(c))
		case jval.String, jval.Num, jval.Bool, jval.Null:
			arr = append(arr, literal(tok))
		}
	}
}

// literal converts a literal-bearing token to its value.
func literal(tok jval.Token) Value {
	switch tok.Kind {
	case jval.String:
		return String(tok.Text)
	case jval.Num:
		return Number{tok.Num}
	case jval.Bool:
		return Bool(tok.Bool)
	default:
		return Null{}
	}
}
