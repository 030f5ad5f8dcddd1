// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffman implements the tree-serialized Huffman codec core:
// frequency counting, optimal code tree construction, code table
// derivation, and the preorder tree header format.
package huffman

import (
	"io"

	"github.com/fastcodec/huffkit/compress/hufftree/internal/bitio"
)

const (
	// WordBits is the width of one input symbol.
	WordBits = 8
	// EOF is the pseudo-end-of-file symbol. It never occurs in input
	// data but is given a count of one so that every tree carries a
	// leaf marking the end of the encoded payload.
	EOF = 1 << WordBits
	// NumSymbols counts the byte values plus the pseudo-EOF symbol.
	NumSymbols = EOF + 1
	// SymbolBits is the width of a leaf symbol field in the tree
	// header, wide enough for values 0 through EOF.
	SymbolBits = WordBits + 1
)

// A Node is one node of a code tree. Leaves carry a symbol; internal
// nodes carry two children. Weight orders nodes during construction and
// is meaningless on trees reconstructed from a header.
type Node struct {
	Left, Right *Node
	Weight      uint64
	Symbol      uint16
}

// Leaf reports whether n has no children.
func (n *Node) Leaf() bool {
	return n.Left == nil && n.Right == nil
}

// CountFrequencies reads 8-bit words from src until end of stream and
// returns a per-symbol count table of length NumSymbols. The pseudo-EOF
// count is always one, independent of the input.
func CountFrequencies(src bitio.Reader) ([]uint64, error) {
	counts := make([]uint64, NumSymbols)
	counts[EOF] = 1
	for {
		v, err := src.ReadBits(WordBits)
		if err == io.EOF {
			return counts, nil
		}
		if err != nil {
			return nil, err
		}
		counts[v]++
	}
}

// CountBytes returns the count table for in-memory data.
func CountBytes(data []byte) []uint64 {
	counts := make([]uint64, NumSymbols)
	counts[EOF] = 1
	for _, b := range data {
		counts[b]++
	}
	return counts
}
