// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

// A Code is the bit path from the root of a tree to one symbol's leaf,
// stored in the low Len bits of Bits with the root-most edge in the most
// significant position. 0 steps left, 1 steps right.
type Code struct {
	Bits uint32
	Len  uint8
}

// BuildCodes derives the code table for root, indexed by symbol.
// Symbols without a leaf in the tree have a zero-length code.
// The resulting codes are prefix-free: only leaves terminate a path.
func BuildCodes(root *Node) []Code {
	codes := make([]Code, NumSymbols)
	walk(root, 0, 0, codes)
	return codes
}

func walk(n *Node, bits uint32, depth uint8, codes []Code) {
	if n.Leaf() {
		codes[n.Symbol] = Code{Bits: bits, Len: depth}
		return
	}
	walk(n.Left, bits<<1, depth+1, codes)
	walk(n.Right, bits<<1|1, depth+1, codes)
}
