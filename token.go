// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"fmt"
	"strconv"
)

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Comma               // comma ","
	Colon               // colon ":"
	Quote               // quotation mark framing a string literal
	String              // string literal
	Num                 // number literal
	Bool                // constant: true or false
	Null                // constant: null
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Quote:   `'"'`,
	String:  "string",
	Num:     "number",
	Bool:    "boolean",
	Null:    "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single lexical unit of the input. Tokens are immutable once
// produced by the tokenizer, and occur in the token sequence in document
// order.
type Token struct {
	Kind Kind
	Pos  int // byte offset where the token begins

	Text string // literal text, for String tokens
	Num  Number // numeric value, for Number tokens
	Bool bool   // constant value, for Bool tokens
}

func (t Token) String() string {
	switch t.Kind {
	case String:
		return fmt.Sprintf("string %q", t.Text)
	case Num:
		return "number " + t.Num.String()
	case Bool:
		return "boolean " + strconv.FormatBool(t.Bool)
	default:
		return t.Kind.String()
	}
}

// A Number is a JSON numeric value, tagged as either a 64-bit signed integer
// or a 64-bit floating-point quantity. The tag is decided lexically: the
// presence of a decimal point or an exponent marker in the source text makes
// the number floating-point, otherwise it is an integer.
type Number struct {
	isFloat bool
	i       int64
	f       float64
}

// Int constructs an integer-tagged Number.
func Int(v int64) Number { return Number{i: v} }

// Float constructs a floating-point-tagged Number.
func Float(v float64) Number { return Number{isFloat: true, f: v} }

// IsFloat reports whether n is tagged as floating-point.
func (n Number) IsFloat() bool { return n.isFloat }

// Int64 returns the value of an integer-tagged number.
// It panics if n is tagged as floating-point.
func (n Number) Int64() int64 {
	if n.isFloat {
		panic("number is not an integer")
	}
	return n.i
}

// Float64 returns the value of a floating-point-tagged number.
// It panics if n is tagged as an integer.
func (n Number) Float64() float64 {
	if !n.isFloat {
		panic("number is not floating-point")
	}
	return n.f
}

func (n Number) String() string {
	if n.isFloat {
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
	return strconv.FormatInt(n.i, 10)
}
