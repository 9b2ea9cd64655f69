// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"go4.org/mem"
)

// endOfInput is the NUL sentinel that marks the end of the input text.
// A NUL in the data stops tokenization the same way exhausting the source
// does.
const endOfInput rune = 0

// A Tokenizer consumes the code points of a Reader and materializes the
// complete token sequence for the input. It keeps one code point of
// lookahead to decide where each token begins.
//
// A Tokenizer is good for a single input; after Tokenize returns, the reader
// is spent and the tokenizer holds no further state of use.
type Tokenizer struct {
	r    *Reader
	toks []Token

	next  rune // one code point of lookahead, valid if ready
	ready bool // lookahead holds an unconsumed code point
	eof   bool // the reader reported end of source
	pos   int  // byte offset of the next unconsumed code point
}

// NewTokenizer constructs a Tokenizer that consumes input from r.
func NewTokenizer(r *Reader) *Tokenizer { return &Tokenizer{r: r} }

// Tokenize consumes the entire input and returns its tokens in document
// order. Tokenization stops without error at the end of the source, or at a
// NUL character in the data. In case of error no tokens are returned and the
// error has concrete type *SyntaxError.
func (t *Tokenizer) Tokenize() ([]Token, error) {
	for {
		ch, ok, err := t.peek()
		if err != nil {
			return nil, err
		}
		if !ok || ch == endOfInput {
			return t.toks, nil
		}

		// Discard whitespace.
		if isSpace(ch) {
			t.advance()
			continue
		}

		start := t.pos
		switch {
		case ch == '"':
			err = t.scanString(start)

		case isNumStart(ch):
			err = t.scanNumber(start)

		case ch == 't':
			err = t.scanKeyword(start, mem.S("true"), Token{Kind: Bool, Bool: true})
		case ch == 'f':
			err = t.scanKeyword(start, mem.S("false"), Token{Kind: Bool})
		case ch == 'n':
			err = t.scanKeyword(start, mem.S("null"), Token{Kind: Null})

		default:
			if k, ok := selfDelim(ch); ok {
				t.advance()
				t.push(Token{Kind: k, Pos: start})
			} else {
				err = t.failf(UnexpectedChar, "unexpected %q", ch)
			}
		}
		if err != nil {
			return nil, err
		}
	}
}

// scanString consumes a string literal. Escape sequences are not
// interpreted: a backslash is an ordinary character, and the literal ends at
// the first following quotation mark. Each string is framed by a pair of
// Quote tokens in the output.
func (t *Tokenizer) scanString(start int) error {
	t.advance() // consume the opening quote
	t.push(Token{Kind: Quote, Pos: start})

	var buf strings.Builder
	for {
		ch, ok, err := t.peek()
		if err != nil {
			return err
		}
		if !ok {
			return t.failf(UnterminatedString, "input ended inside a string")
		}
		if ch == '"' {
			end := t.pos
			t.advance()
			t.push(Token{Kind: String, Pos: start + 1, Text: buf.String()})
			t.push(Token{Kind: Quote, Pos: end})
			return nil
		}
		t.advance()
		buf.WriteRune(ch)
	}
}

// scanKeyword consumes a run of lowercase letters and requires it to spell
// want exactly, pushing tok on success.
func (t *Tokenizer) scanKeyword(start int, want mem.RO, tok Token) error {
	var buf []byte
	for {
		ch, ok, err := t.peek()
		if err != nil {
			return err
		}
		if !ok || !isNameRune(ch) {
			break
		}
		buf = append(buf, byte(ch))
		t.advance()
	}
	if got := mem.B(buf); !got.Equal(want) {
		return t.failf(BadKeyword, "unknown constant %q", string(buf))
	}
	tok.Pos = start
	t.push(tok)
	return nil
}

// scanNumber consumes a numeric literal into separate mantissa and exponent
// accumulators and converts the result. The literal ends at a structural
// delimiter, which is left for the next token, or at the end of the input.
// Whitespace inside the literal is skipped and does not end it, so text like
// "1 2" is a single number token.
func (t *Tokenizer) scanNumber(start int) error {
	var mant, exp strings.Builder
	var isFloat, inExp bool

scan:
	for {
		ch, ok, err := t.peek()
		if err != nil {
			return err
		}
		if !ok || ch == endOfInput {
			break
		}
		if isSpace(ch) {
			t.advance()
			continue
		}
		switch {
		case ch == '-':
			if inExp {
				exp.WriteRune(ch)
			} else {
				mant.WriteRune(ch)
			}
			t.advance()

		case ch == '+': // a redundant sign, dropped
			t.advance()

		case isDigit(ch):
			if inExp {
				exp.WriteRune(ch)
			} else {
				mant.WriteRune(ch)
			}
			t.advance()

		case ch == '.':
			mant.WriteRune(ch)
			isFloat = true
			t.advance()

		case ch == 'e' || ch == 'E':
			if inExp {
				return t.failf(BadNumber, "second exponent marker %q", ch)
			}
			inExp = true
			t.advance()

		case ch == '}' || ch == ',' || ch == ']' || ch == ':':
			break scan // not part of the number; leave for the next token

		default:
			return t.failf(BadNumber, "unexpected %q in number", ch)
		}
	}

	num, err := makeNumber(mant.String(), exp.String(), isFloat, inExp)
	if err != nil {
		return t.failf(BadNumber, "invalid number: %w", err)
	}
	t.push(Token{Kind: Num, Pos: start, Num: num})
	return nil
}

// makeNumber converts accumulated mantissa and exponent text into a tagged
// Number. An exponent or a decimal point makes the value floating-point;
// otherwise it is a signed 64-bit integer.
func makeNumber(mant, exp string, isFloat, hasExp bool) (Number, error) {
	if hasExp {
		base, err := strconv.ParseFloat(mant, 64)
		if err != nil {
			return Number{}, err
		}
		e, err := strconv.ParseFloat(exp, 64)
		if err != nil {
			return Number{}, err
		}
		return Float(base * math.Pow(10, e)), nil
	}
	if isFloat {
		v, err := strconv.ParseFloat(mant, 64)
		if err != nil {
			return Number{}, err
		}
		return Float(v), nil
	}
	v, err := strconv.ParseInt(mant, 10, 64)
	if err != nil {
		return Number{}, err
	}
	return Int(v), nil
}

// peek reports the next unconsumed code point without consuming it.
// The flag is false at the end of the input.
func (t *Tokenizer) peek() (rune, bool, error) {
	if t.ready {
		return t.next, true, nil
	}
	if t.eof {
		return 0, false, nil
	}
	ch, err := t.r.Next()
	if err == io.EOF {
		t.eof = true
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}
	t.next, t.ready = ch, true
	return ch, true, nil
}

// advance consumes the lookahead code point.
func (t *Tokenizer) advance() {
	if t.ready {
		t.pos += utf8.RuneLen(t.next)
		t.ready = false
	}
}

func (t *Tokenizer) push(tok Token) { t.toks = append(t.toks, tok) }

func (t *Tokenizer) failf(kind ErrKind, msg string, args ...any) error {
	err := fmt.Errorf(msg, args...)
	return &SyntaxError{Kind: kind, Offset: t.pos, Message: err.Error(), err: err}
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f'
}

func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }
func isNameRune(ch rune) bool { return ch >= 'a' && ch <= 'z' }

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Kind, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
