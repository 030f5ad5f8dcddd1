// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"errors"

	"github.com/fastcodec/huffkit/compress/hufftree/internal/bitio"
)

// Structural defects in a decoded tree header. Bit-stream exhaustion
// surfaces as the reader's own io.EOF instead.
var (
	ErrTreeTooDeep = errors.New("huffman: tree deeper than alphabet allows")
	ErrSymbolRange = errors.New("huffman: leaf symbol out of range")
)

// maxDepth bounds tree recursion while decoding. A valid tree over
// NumSymbols leaves can never be deeper, so anything beyond it is a
// malformed header rather than a large alphabet.
const maxDepth = NumSymbols

// WriteTree serializes n in preorder: a 0 bit introduces an internal
// node followed by its left and right subtrees; a 1 bit introduces a
// leaf followed by its symbol in a SymbolBits-wide field.
func WriteTree(n *Node, dst bitio.Writer) error {
	if n.Leaf() {
		if err := dst.WriteBits(1, 1); err != nil {
			return err
		}
		return dst.WriteBits(SymbolBits, uint32(n.Symbol))
	}
	if err := dst.WriteBits(1, 0); err != nil {
		return err
	}
	if err := WriteTree(n.Left, dst); err != nil {
		return err
	}
	return WriteTree(n.Right, dst)
}

// ReadTree reconstructs a tree serialized by WriteTree. Node weights
// are not part of the header and are left zero.
func ReadTree(src bitio.Reader) (*Node, error) {
	return readTree(src, 0)
}

func readTree(src bitio.Reader, depth int) (*Node, error) {
	if depth > maxDepth {
		return nil, ErrTreeTooDeep
	}
	bit, err := src.ReadBits(1)
	if err != nil {
		return nil, err
	}
	if bit == 1 {
		sym, err := src.ReadBits(SymbolBits)
		if err != nil {
			return nil, err
		}
		if sym > EOF {
			return nil, ErrSymbolRange
		}
		return &Node{Symbol: uint16(sym)}, nil
	}
	left, err := readTree(src, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := readTree(src, depth+1)
	if err != nil {
		return nil, err
	}
	return &Node{Left: left, Right: right}, nil
}
