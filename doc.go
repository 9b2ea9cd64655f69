// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package jval implements the front end of a small JSON parser: a code-point
// reader and a tokenizer. The companion package ast builds value trees from
// the token sequences produced here.
//
// # Reading
//
// The Reader type decodes Unicode code points from a seekable byte source.
// Construct a reader from an io.ReadSeeker and call its Next method to
// iterate over the stream. Next returns io.EOF when the source is exhausted:
//
//	r := jval.NewReader(src)
//	for {
//	   ch, err := r.Next()
//	   if err == io.EOF {
//	      break
//	   } else if err != nil {
//	      log.Fatalf("Read failed: %v", err)
//	   }
//	   log.Printf("Next code point: %q", ch)
//	}
//
// The reader consumes its source destructively in a single pass, rewinding
// only to refetch a UTF-8 sequence split across a read boundary. A fresh
// reader is required for each parse.
//
// # Tokenizing
//
// The Tokenizer type consumes a Reader and materializes the complete token
// sequence for the input before returning. Tokenization stops at the end of
// the source or at a NUL character in the data, whichever comes first:
//
//	toks, err := jval.NewTokenizer(r).Tokenize()
//	if err != nil {
//	   log.Fatalf("Tokenize failed: %v", err)
//	}
//
// In case of a lexical error the returned error has concrete type
// [*SyntaxError], carrying the kind of failure and the byte offset where it
// occurred. No token sequence is returned alongside an error.
//
// Two lexical quirks are part of the contract. String literals are taken
// verbatim: a backslash is an ordinary character, so escape sequences are
// not interpreted and a string cannot contain a quotation mark. Whitespace
// inside a number literal does not end it, so the text "1 2" is the single
// number token 12.
package jval
