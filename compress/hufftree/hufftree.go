// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package hufftree implements a lossless Huffman codec whose compressed
// streams are self-describing: a 32-bit magic number, the code tree
// serialized as a compact bit sequence, and a payload of variable-length
// codes terminated by a pseudo-EOF code rather than a length field.
//
// The bit-level operation surface is Compress and Decompress over
// BitReader/BitWriter streams. Writer and Reader wrap them behind the
// usual io interfaces.
package hufftree

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fastcodec/huffkit/compress/hufftree/internal/bitio"
	"github.com/fastcodec/huffkit/compress/hufftree/internal/huffman"
)

const (
	huffNumber = 0xface8200
	// Magic is the 32-bit value opening every compressed stream,
	// tagging the tree-serialized format variant.
	Magic = huffNumber | 1
)

// Debug levels for WithDebug. Higher levels include lower ones.
const (
	DebugOff  = 0
	DebugLow  = 1
	DebugHigh = 4
)

// BitReader is a rewindable bit-granular input stream.
// See NewBitReader for the standard implementation.
type BitReader = bitio.Reader

// BitWriter is a bit-granular output stream.
// See NewBitWriter for the standard implementation.
type BitWriter = bitio.Writer

// NewBitReader returns a BitReader over src, most-significant-bit first.
// A bytes.Reader serves for in-memory data.
func NewBitReader(src io.ReadSeeker) BitReader {
	return bitio.NewReader(src)
}

// NewBitWriter returns a BitWriter over dst, most-significant-bit first.
// Closing it zero-pads the final partial byte.
func NewBitWriter(dst io.Writer) BitWriter {
	return bitio.NewWriter(dst)
}

// A Codec compresses and decompresses bit streams. The zero value is
// ready to use; options only configure diagnostics and never affect the
// stream format. A Codec is stateless across calls.
type Codec struct {
	debug    int
	debugOut io.Writer
}

// An Option configures a Codec.
type Option func(*Codec)

// WithDebug sets the diagnostic verbosity, DebugOff through DebugHigh.
func WithDebug(level int) Option {
	return func(c *Codec) {
		c.debug = level
	}
}

// WithDebugOutput redirects diagnostics away from standard error.
func WithDebugOutput(w io.Writer) Option {
	return func(c *Codec) {
		c.debugOut = w
	}
}

// New returns a Codec configured by opts.
func New(opts ...Option) *Codec {
	c := &Codec{debugOut: os.Stderr}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Codec) logf(level int, format string, args ...any) {
	if c.debug >= level && c.debugOut != nil {
		fmt.Fprintf(c.debugOut, format+"\n", args...)
	}
}

var defaultCodec = &Codec{}

// Compress encodes src into dst using the default codec.
func Compress(src BitReader, dst BitWriter) error {
	return defaultCodec.Compress(src, dst)
}

// Decompress decodes src into dst using the default codec.
func Decompress(src BitReader, dst BitWriter) error {
	return defaultCodec.Decompress(src, dst)
}

// Compress reads src twice, once to count symbol frequencies and once
// to encode, so src must rewind cleanly between passes. The stream
// written to dst is magic number, tree header, then payload. dst is
// closed on every return path.
func (c *Codec) Compress(src BitReader, dst BitWriter) error {
	err := c.compress(src, dst)
	cerr := dst.Close()
	if err != nil {
		return err
	}
	return cerr
}

func (c *Codec) compress(src BitReader, dst BitWriter) error {
	counts, err := huffman.CountFrequencies(src)
	if err != nil {
		return err
	}
	root := huffman.Build(counts)
	codes := huffman.BuildCodes(root)
	if c.debug >= DebugHigh {
		c.dumpCodes(counts, codes)
	}
	if err := dst.WriteBits(32, Magic); err != nil {
		return err
	}
	if err := huffman.WriteTree(root, dst); err != nil {
		return err
	}
	if err := src.Rewind(); err != nil {
		return err
	}
	var words, bits uint64
	for {
		v, err := src.ReadBits(huffman.WordBits)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		code := codes[v]
		if err := dst.WriteBits(int(code.Len), code.Bits); err != nil {
			return err
		}
		words++
		bits += uint64(code.Len)
	}
	eof := codes[huffman.EOF]
	if err := dst.WriteBits(int(eof.Len), eof.Bits); err != nil {
		return err
	}
	c.logf(DebugLow, "hufftree: compressed %d words into %d payload bits", words, bits+uint64(eof.Len))
	return nil
}

func (c *Codec) dumpCodes(counts []uint64, codes []huffman.Code) {
	for sym, code := range codes {
		if code.Len == 0 {
			continue
		}
		c.logf(DebugHigh, "hufftree: symbol %3d count %6d code %0*b",
			sym, counts[sym], int(code.Len), code.Bits)
	}
}

// Decompress decodes a stream produced by Compress. It fails with a
// FormatError if the magic number does not match, the tree header is
// malformed or truncated, or the payload ends before the pseudo-EOF
// code. dst is closed on every return path.
func (c *Codec) Decompress(src BitReader, dst BitWriter) error {
	err := c.decompress(src, dst)
	cerr := dst.Close()
	if err != nil {
		return err
	}
	return cerr
}

func (c *Codec) decompress(src BitReader, dst BitWriter) error {
	v, err := src.ReadBits(32)
	if err != nil {
		if err == io.EOF {
			return errBadMagic
		}
		return err
	}
	if v != Magic {
		return errBadMagic
	}
	root, err := huffman.ReadTree(src)
	if err != nil {
		switch {
		case err == io.EOF:
			return errTruncatedTree
		case errors.Is(err, huffman.ErrTreeTooDeep), errors.Is(err, huffman.ErrSymbolRange):
			return FormatError(err.Error())
		}
		return err
	}
	if root.Leaf() {
		// a bare-leaf tree yields codes of length zero; no valid
		// encoder produces one
		return errBadTree
	}
	var words uint64
	cur := root
	for {
		bit, err := src.ReadBits(1)
		if err != nil {
			if err == io.EOF {
				return errNoEOF
			}
			return err
		}
		if bit == 0 {
			cur = cur.Left
		} else {
			cur = cur.Right
		}
		if !cur.Leaf() {
			continue
		}
		if cur.Symbol == huffman.EOF {
			c.logf(DebugLow, "hufftree: decompressed %d words", words)
			return nil
		}
		if err := dst.WriteBits(huffman.WordBits, uint32(cur.Symbol)); err != nil {
			return err
		}
		words++
		cur = root
	}
}
