// Package session runs the blocking keystroke loop and owns the user input
// buffer and its state machine.
package session

import (
	"io"

	"github.com/vzemtsov/typeline/internal/textseg"
)

// Reader yields one input unit per call: a complete UTF-8 encoded codepoint,
// or a single byte when the leading byte is malformed. It blocks until input
// is available; transient zero-byte reads are retried, io.EOF signals end of
// stream.
type Reader struct {
	src     io.Reader
	pending []byte
}

// NewReader wraps src, typically a raw-mode terminal handle.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src}
}

// ReadUnit returns the next input unit.
func (r *Reader) ReadUnit() (string, error) {
	b, err := r.readByte()
	if err != nil {
		return "", err
	}
	n := leadLen(b)
	if n <= 1 {
		// ASCII, or a malformed leading byte treated as a single-byte unit.
		return string([]byte{b}), nil
	}
	unit := make([]byte, 1, n)
	unit[0] = b
	for len(unit) < n {
		nb, err := r.readByte()
		if err != nil {
			// Truncated trailing sequence; the stream end surfaces on the
			// next call.
			break
		}
		if !textseg.IsContinuation(nb) {
			r.pending = append(r.pending, nb)
			break
		}
		unit = append(unit, nb)
	}
	return string(unit), nil
}

func (r *Reader) readByte() (byte, error) {
	if len(r.pending) > 0 {
		b := r.pending[0]
		r.pending = r.pending[1:]
		return b, nil
	}
	var buf [1]byte
	for {
		n, err := r.src.Read(buf[:])
		if n > 0 {
			return buf[0], nil
		}
		if err != nil {
			return 0, err
		}
		// Zero bytes without an error: nothing available yet, retry.
	}
}

func leadLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}
