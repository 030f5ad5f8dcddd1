// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package hufftree

import (
	"bytes"
	"errors"
	"io"

	"github.com/valyala/bytebufferpool"

	"github.com/fastcodec/huffkit/compress/hufftree/internal/bitio"
)

var errWriterClosed = errors.New("hufftree: writer is closed")

// A Writer compresses data written to it and emits the compressed
// stream to an underlying io.Writer on Close. Because compression
// needs two full passes over the input, written data is staged in a
// pooled buffer and nothing reaches the underlying writer until Close.
type Writer struct {
	err     error
	c       *Codec
	under   io.Writer
	staging *bytebufferpool.ByteBuffer
}

// NewWriter returns a Writer emitting a compressed stream to under.
func NewWriter(under io.Writer, opts ...Option) *Writer {
	return &Writer{
		c:       New(opts...),
		under:   under,
		staging: bytebufferpool.Get(),
	}
}

// Write stages p for compression. It never fails before Close unless
// the Writer is already closed.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.staging == nil {
		return 0, errWriterClosed
	}
	return w.staging.Write(p)
}

// Close compresses the staged data into the underlying writer and
// releases the staging buffer. It must be called exactly once per
// stream; later writes fail.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if w.staging == nil {
		return nil
	}
	src := bitio.NewReader(bytes.NewReader(w.staging.B))
	w.err = w.c.Compress(src, bitio.NewWriter(w.under))
	bytebufferpool.Put(w.staging)
	w.staging = nil
	return w.err
}

// Reset discards any staged data and prepares w to write a new stream
// to under, keeping the codec configuration.
func (w *Writer) Reset(under io.Writer) {
	if w.staging == nil {
		w.staging = bytebufferpool.Get()
	} else {
		w.staging.Reset()
	}
	w.under = under
	w.err = nil
}
