// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/creachadair/mds/queue"
)

// A Reader decodes a stream of Unicode code points from a seekable byte
// source. The reader takes exclusive ownership of the source and consumes it
// destructively in a single forward pass; it is not restartable.
//
// The source is read in chunks of up to 4 bytes, the longest UTF-8 encoding.
// When the tail of a chunk is an incomplete encoding, the reader decodes the
// valid prefix and seeks the source backward so the next read fetches the
// straddling sequence whole. This rewind is why the source must be seekable;
// a non-seekable stream such as a live socket is out of scope.
type Reader struct {
	src  io.ReadSeeker
	pend *queue.Queue[rune] // decoded code points not yet handed out
	off  int                // byte offset of the first byte not yet decoded

	chunk [4]byte
}

// NewReader constructs a Reader that decodes code points from src.
func NewReader(src io.ReadSeeker) *Reader {
	return &Reader{src: src, pend: queue.NewSize[rune](4)}
}

// Next returns the next code point of the source. At the end of the source
// it returns io.EOF. A byte sequence that cannot be decoded is reported as a
// *SyntaxError with kind InvalidUTF8.
//
// A single physical read may decode several code points; calls to Next drain
// those before touching the source again.
func (r *Reader) Next() (rune, error) {
	if ch, ok := r.pend.Pop(); ok {
		return ch, nil
	}

	nr, err := r.src.Read(r.chunk[:])
	if nr == 0 {
		if err == nil || err == io.EOF {
			return 0, io.EOF
		}
		return 0, err
	}

	// Decode the longest valid prefix of the chunk, then rewind the source
	// past whatever remains so the next read refetches a complete sequence.
	buf := r.chunk[:nr]
	pos := 0
	for pos < len(buf) {
		ch, size := utf8.DecodeRune(buf[pos:])
		if ch == utf8.RuneError && size <= 1 {
			break
		}
		r.pend.Add(ch)
		pos += size
	}
	if pos == 0 {
		return 0, &SyntaxError{
			Kind:    InvalidUTF8,
			Offset:  r.off,
			Message: fmt.Sprintf("undecodable byte %#02x", buf[0]),
		}
	}
	r.off += pos
	if rest := len(buf) - pos; rest > 0 {
		if _, err := r.src.Seek(int64(-rest), io.SeekCurrent); err != nil {
			return 0, err
		}
	}

	ch, _ := r.pend.Pop()
	return ch, nil
}
