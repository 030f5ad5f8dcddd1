// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package hufftree

import (
	"bytes"
	"io"

	"github.com/valyala/bytebufferpool"

	"github.com/fastcodec/huffkit/compress/hufftree/internal/bitio"
)

// A Reader decompresses a stream produced by this package. The payload
// carries no length field and is terminated by the pseudo-EOF code, so
// the whole stream is decoded on first Read and served from a pooled
// buffer until io.EOF.
type Reader struct {
	c       *Codec
	under   io.Reader
	decoded *bytebufferpool.ByteBuffer
	pos     int
	err     error
	started bool
}

// NewReader returns a Reader decompressing from under.
func NewReader(under io.Reader, opts ...Option) *Reader {
	return &Reader{c: New(opts...), under: under}
}

func (r *Reader) Read(p []byte) (int, error) {
	if !r.started {
		r.started = true
		r.decode()
	}
	if r.err != nil {
		return 0, r.err
	}
	if r.pos == len(r.decoded.B) {
		return 0, io.EOF
	}
	n := copy(p, r.decoded.B[r.pos:])
	r.pos += n
	return n, nil
}

func (r *Reader) decode() {
	data, err := io.ReadAll(r.under)
	if err != nil {
		r.err = err
		return
	}
	r.decoded = bytebufferpool.Get()
	src := bitio.NewReader(bytes.NewReader(data))
	if err := r.c.Decompress(src, bitio.NewWriter(r.decoded)); err != nil {
		bytebufferpool.Put(r.decoded)
		r.decoded = nil
		r.err = err
	}
}

// Close releases the decoded buffer. The Reader cannot be used again
// until Reset.
func (r *Reader) Close() error {
	if r.decoded != nil {
		bytebufferpool.Put(r.decoded)
		r.decoded = nil
	}
	if r.err == nil {
		r.err = io.EOF
	}
	r.started = true
	return nil
}

// Reset prepares r to decompress a new stream from under, keeping the
// codec configuration.
func (r *Reader) Reset(under io.Reader) {
	if r.decoded != nil {
		bytebufferpool.Put(r.decoded)
		r.decoded = nil
	}
	r.under = under
	r.pos = 0
	r.err = nil
	r.started = false
}
