// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jval_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/creachadair/jval"
	"github.com/google/go-cmp/cmp"
)

func tokenize(input string) ([]jval.Token, error) {
	r := jval.NewReader(strings.NewReader(input))
	return jval.NewTokenizer(r).Tokenize()
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []jval.Kind
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\n\n  \n", nil},
		{"\t  \r\n \t  \r\n", nil},

		// Constants
		{"true false null", []jval.Kind{jval.Bool, jval.Bool, jval.Null}},

		// Punctuation
		{"{ [ ] } , :", []jval.Kind{
			jval.LBrace, jval.LSquare, jval.RSquare, jval.RBrace, jval.Comma, jval.Colon,
		}},

		// Strings, framed by quote tokens. Backslashes are ordinary
		// characters; nothing is unescaped.
		{`"" "a b c" "a\nb"`, []jval.Kind{
			jval.Quote, jval.String, jval.Quote,
			jval.Quote, jval.String, jval.Quote,
			jval.Quote, jval.String, jval.Quote,
		}},

		// Numbers terminate only at structural delimiters or end of input.
		{`[0,-1,5139,2.3,5e9,-0.001E-2]`, []jval.Kind{
			jval.LSquare,
			jval.Num, jval.Comma, jval.Num, jval.Comma, jval.Num, jval.Comma,
			jval.Num, jval.Comma, jval.Num, jval.Comma, jval.Num,
			jval.RSquare,
		}},

		// Mixed types
		{`{true,"false":-15,null[]}`, []jval.Kind{
			jval.LBrace, jval.Bool, jval.Comma,
			jval.Quote, jval.String, jval.Quote, jval.Colon,
			jval.Num, jval.Comma, jval.Null, jval.LSquare, jval.RSquare, jval.RBrace,
		}},
		{`{"a": true, "b":[null, 1, 0.5]}`, []jval.Kind{
			jval.LBrace,
			jval.Quote, jval.String, jval.Quote, jval.Colon, jval.Bool, jval.Comma,
			jval.Quote, jval.String, jval.Quote, jval.Colon,
			jval.LSquare,
			jval.Null, jval.Comma, jval.Num, jval.Comma, jval.Num,
			jval.RSquare,
			jval.RBrace,
		}},

		// A NUL in the data ends the input.
		{"true\x00false", []jval.Kind{jval.Bool}},
		{"12\x003", []jval.Kind{jval.Num}},
	}

	for _, test := range tests {
		toks, err := tokenize(test.input)
		if err != nil {
			t.Errorf("Input %#q: unexpected error: %v", test.input, err)
			continue
		}
		var got []jval.Kind
		for _, tok := range toks {
			got = append(got, tok.Kind)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestTokenizeStrings(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`""`, ""},
		{`"a b c"`, "a b c"},
		{`"héllo 日本語"`, "héllo 日本語"},

		// A backslash does not escape anything; the string ends at the first
		// quotation mark after it.
		{`"a\nb"`, `a\nb`},
		{`"a\"`, `a\`},
	}
	for _, test := range tests {
		toks, err := tokenize(test.input)
		if err != nil {
			t.Errorf("Input %#q: unexpected error: %v", test.input, err)
			continue
		}
		if len(toks) != 3 || toks[1].Kind != jval.String {
			t.Errorf("Input %#q: got %v, want quote-framed string", test.input, toks)
			continue
		}
		if got := toks[1].Text; got != test.want {
			t.Errorf("Input %#q: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  jval.Number
	}{
		{"123", jval.Int(123)},
		{"-5", jval.Int(-5)},
		{"0", jval.Int(0)},
		{"123.45", jval.Float(123.45)},
		{"1e2", jval.Float(100)},
		{"1e+2", jval.Float(100)},
		{"1E2", jval.Float(100)},
		{"-1.5e-2", jval.Float(-1.5 * math.Pow(10, -2))},
		{"1.5e2", jval.Float(150)},

		// Whitespace inside a number does not terminate it.
		{"1 2", jval.Int(12)},
		{"12 \t 34", jval.Int(1234)},
		{"- 5", jval.Int(-5)},
	}
	opt := cmp.AllowUnexported(jval.Number{})
	for _, test := range tests {
		toks, err := tokenize(test.input)
		if err != nil {
			t.Errorf("Input %#q: unexpected error: %v", test.input, err)
			continue
		}
		if len(toks) != 1 || toks[0].Kind != jval.Num {
			t.Errorf("Input %#q: got %v, want one number token", test.input, toks)
			continue
		}
		if diff := cmp.Diff(test.want, toks[0].Num, opt); diff != "" {
			t.Errorf("Input: %#q\nNumber: (-want, +got)\n%s", test.input, diff)
		}
	}
}

// Structural delimiters end a number and are not consumed by it.
func TestNumberDelimiters(t *testing.T) {
	tests := []struct {
		input string
		want  []jval.Kind
	}{
		{"5}", []jval.Kind{jval.Num, jval.RBrace}},
		{"5,", []jval.Kind{jval.Num, jval.Comma}},
		{"5]", []jval.Kind{jval.Num, jval.RSquare}},
		{"5:", []jval.Kind{jval.Num, jval.Colon}},
	}
	for _, test := range tests {
		toks, err := tokenize(test.input)
		if err != nil {
			t.Errorf("Input %#q: unexpected error: %v", test.input, err)
			continue
		}
		var got []jval.Kind
		for _, tok := range toks {
			got = append(got, tok.Kind)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		input string
		want  jval.ErrKind
	}{
		{"tru3", jval.BadKeyword},
		{"truely", jval.BadKeyword},
		{"fals", jval.BadKeyword},
		{"nul", jval.BadKeyword},
		{"nullify", jval.BadKeyword},

		{"@", jval.UnexpectedChar},
		{"{x}", jval.UnexpectedChar},
		{"+5", jval.UnexpectedChar},

		{"1e2e2", jval.BadNumber},
		{"1.2.3", jval.BadNumber},
		{"1x", jval.BadNumber},
		{"--", jval.BadNumber},
		{"1e", jval.BadNumber},

		{`"abc`, jval.UnterminatedString},
		{`"never closed`, jval.UnterminatedString},

		{"\xff", jval.InvalidUTF8},
		{"[\"a\", \xfe]", jval.InvalidUTF8},
	}
	for _, test := range tests {
		toks, err := tokenize(test.input)
		if err == nil {
			t.Errorf("Input %#q: got %+v, want error", test.input, toks)
			continue
		}
		if toks != nil {
			t.Errorf("Input %#q: got tokens %+v alongside error %v", test.input, toks, err)
		}
		var serr *jval.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Input %#q: got error %v, want *SyntaxError", test.input, err)
		} else if serr.Kind != test.want {
			t.Errorf("Input %#q: got kind %v, want %v", test.input, serr.Kind, test.want)
		}
	}
}

func TestErrorOffset(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"tru3", 3},      // offset of the divergent character
		{"null @", 5},    // offset of the unexpected character
		{`{"a": nope}`, 10},
		{"[1, 2e3e4]", 7}, // offset of the second exponent marker
	}
	for _, test := range tests {
		_, err := tokenize(test.input)
		var serr *jval.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Input %#q: got error %v, want *SyntaxError", test.input, err)
			continue
		}
		if serr.Offset != test.want {
			t.Errorf("Input %#q: got offset %d, want %d", test.input, serr.Offset, test.want)
		}
	}
}
