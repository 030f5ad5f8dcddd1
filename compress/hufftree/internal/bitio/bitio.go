// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package bitio provides bit-granular streams over byte-oriented readers
// and writers. Multi-bit fields are packed most-significant-bit first
// within and across byte boundaries.
package bitio

import (
	"errors"
	"io"
)

// ErrClosed is returned by WriteBits after the writer has been closed.
var ErrClosed = errors.New("bitio: writer is closed")

// Reader is a bit-granular input stream.
type Reader interface {
	// ReadBits reads the next n bits, 1 <= n <= 32, and returns them
	// in the low-order bits of the result. It returns io.EOF when
	// fewer than n bits remain in the stream.
	ReadBits(n int) (uint32, error)
	// Rewind repositions the stream at its first bit.
	Rewind() error
}

// Writer is a bit-granular output stream.
type Writer interface {
	// WriteBits writes the n low-order bits of v, 1 <= n <= 32,
	// most significant first.
	WriteBits(n int, v uint32) error
	// Close flushes buffered bits to the underlying writer. A final
	// partial byte is zero-padded in its low-order bits.
	Close() error
}

const bufSize = 512

type reader struct {
	src io.ReadSeeker
	err error // sticky non-EOF read error
	buf [bufSize]byte
	pos int
	n   int
	// acc holds nacc unread bits in its low end; the most significant
	// of those is the next bit in the stream.
	acc  uint64
	nacc int
}

// NewReader returns a rewindable bit stream reading from src.
// A bytes.Reader serves for in-memory data.
func NewReader(src io.ReadSeeker) Reader {
	return &reader{src: src}
}

func (r *reader) ReadBits(n int) (uint32, error) {
	if n < 1 || n > 32 {
		panic("bitio: bad read width")
	}
	for r.nacc < n {
		b, err := r.readByte()
		if err != nil {
			return 0, err
		}
		r.acc = r.acc<<8 | uint64(b)
		r.nacc += 8
	}
	r.nacc -= n
	return uint32(r.acc>>uint(r.nacc)) & mask(n), nil
}

func (r *reader) readByte() (byte, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.pos == r.n {
		n, err := r.src.Read(r.buf[:])
		if n == 0 {
			if err == nil {
				err = io.EOF
			}
			r.err = err
			return 0, err
		}
		// a non-nil error alongside data surfaces on the next refill
		r.pos, r.n = 0, n
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

func (r *reader) Rewind() error {
	if _, err := r.src.Seek(0, io.SeekStart); err != nil {
		return err
	}
	r.pos, r.n = 0, 0
	r.acc, r.nacc = 0, 0
	r.err = nil
	return nil
}

type writer struct {
	w      io.Writer
	err    error
	buf    []byte
	acc    uint64
	nacc   int // bits pending in acc, always < 8 between calls
	closed bool
}

// NewWriter returns a bit stream writing to w. Bits are buffered until a
// full byte is available; Close flushes the remainder. Write errors latch
// and are reported by every subsequent call.
func NewWriter(w io.Writer) Writer {
	return &writer{w: w, buf: make([]byte, 0, bufSize)}
}

func (w *writer) WriteBits(n int, v uint32) error {
	if n < 1 || n > 32 {
		panic("bitio: bad write width")
	}
	if w.err != nil {
		return w.err
	}
	if w.closed {
		return ErrClosed
	}
	w.acc = w.acc<<uint(n) | uint64(v&mask(n))
	w.nacc += n
	for w.nacc >= 8 {
		w.nacc -= 8
		w.buf = append(w.buf, byte(w.acc>>uint(w.nacc)))
		if len(w.buf) == cap(w.buf) {
			w.flush()
		}
	}
	return w.err
}

func (w *writer) Close() error {
	if w.closed {
		return w.err
	}
	w.closed = true
	if w.err != nil {
		return w.err
	}
	if w.nacc > 0 {
		w.buf = append(w.buf, byte(w.acc<<uint(8-w.nacc)))
		w.acc, w.nacc = 0, 0
	}
	w.flush()
	return w.err
}

func (w *writer) flush() {
	if w.err != nil || len(w.buf) == 0 {
		return
	}
	_, w.err = w.w.Write(w.buf)
	w.buf = w.buf[:0]
}

// mask returns n set low-order bits.
func mask(n int) uint32 {
	return uint32(uint64(1)<<uint(n) - 1)
}
