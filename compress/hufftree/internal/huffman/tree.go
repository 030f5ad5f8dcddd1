// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import "github.com/fastcodec/huffkit/internal/heap"

// queued pairs a node with its insertion sequence number so that
// equal-weight nodes leave the queue in FIFO order. The tie-break fixes
// the tree shape, and with it the exact output bits, across runs and
// implementations.
type queued struct {
	node *Node
	seq  int
}

func queuedLess(a, b queued) bool {
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

// Build constructs the optimal code tree for counts, a table of length
// NumSymbols. One leaf is created per nonzero count, in ascending symbol
// order; the two lightest nodes are then merged repeatedly, first
// removal becoming the left child, until a single root remains.
//
// counts[EOF] must be nonzero. If it is the only nonzero count (empty
// input), a zero-weight leaf for symbol 0 pads the tree so that the
// root is internal and every code has length at least one.
func Build(counts []uint64) *Node {
	var q []queued
	seq := 0
	push := func(n *Node) {
		heap.Push(&q, queued{node: n, seq: seq}, queuedLess)
		seq++
	}
	for sym, c := range counts {
		if c > 0 {
			push(&Node{Symbol: uint16(sym), Weight: c})
		}
	}
	if len(q) == 1 {
		push(&Node{Symbol: 0})
	}
	for len(q) > 1 {
		left := heap.Pop(&q, queuedLess)
		right := heap.Pop(&q, queuedLess)
		push(&Node{
			Left:   left.node,
			Right:  right.node,
			Weight: left.node.Weight + right.node.Weight,
		})
	}
	return heap.Pop(&q, queuedLess).node
}
