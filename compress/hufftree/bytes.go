// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package hufftree

import (
	"bytes"

	"github.com/valyala/bytebufferpool"

	"github.com/fastcodec/huffkit/compress/hufftree/internal/bitio"
)

// EncodeBytes compresses src into a fresh byte slice.
func EncodeBytes(src []byte) ([]byte, error) {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	err := Compress(bitio.NewReader(bytes.NewReader(src)), bitio.NewWriter(bb))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(bb.B))
	copy(out, bb.B)
	return out, nil
}

// DecodeBytes decompresses a stream produced by EncodeBytes or Compress
// into a fresh byte slice.
func DecodeBytes(src []byte) ([]byte, error) {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	err := Decompress(bitio.NewReader(bytes.NewReader(src)), bitio.NewWriter(bb))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(bb.B))
	copy(out, bb.B)
	return out, nil
}
