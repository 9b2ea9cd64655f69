// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package ast defines the value tree produced by parsing JSON input, and a
// builder that constructs trees from the token sequences produced by the
// jval package.
package ast

import "github.com/creachadair/jval"

// A Value is a single JSON value. The concrete types are Null, Bool, String,
// Number, Array, and Object. A value exclusively owns its children; trees
// are acyclic by construction.
type Value interface {
	isValue()
}

// Null is the JSON null constant.
type Null struct{}

// A Bool is a JSON Boolean value.
type Bool bool

// A String is a JSON string value. Its content is exactly the source text
// between the framing quotation marks of the literal.
type String string

// A Number is a JSON numeric value.
type Number struct{ jval.Number }

// An Array is an ordered sequence of values. Element order equals source
// order.
type Array []Value

// An Object maps member keys to values. A key that occurs more than once
// keeps the value of its last occurrence; iteration order is unspecified.
type Object map[string]Value

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (String) isValue() {}
func (Number) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}
