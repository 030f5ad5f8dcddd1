// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffkit provides a lossless Huffman codec with a self-describing
// binary format. The compressed stream carries its own code tree in a compact
// bit-serialized header, so no out-of-band metadata is needed to decompress.
// The codec itself lives in the compress/hufftree package.
package huffkit

import (
	"encoding/binary"

	"github.com/fastcodec/huffkit/compress/hufftree"
)

// IsEncoded reports whether prefix begins with the hufftree magic number,
// i.e. whether the data looks like the start of a compressed stream.
// It inspects at most the first four bytes and never reads past them.
func IsEncoded(prefix []byte) bool {
	if len(prefix) < 4 {
		return false
	}
	return binary.BigEndian.Uint32(prefix) == hufftree.Magic
}
