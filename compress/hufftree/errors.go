// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package hufftree

// A FormatError reports a malformed compressed stream. Decoding aborts
// at the first defect; bits already written to the sink stay written.
type FormatError string

func (e FormatError) Error() string {
	return "hufftree: invalid stream: " + string(e)
}

var (
	errBadMagic      = FormatError("magic number mismatch")
	errTruncatedTree = FormatError("truncated tree header")
	errBadTree       = FormatError("tree header describes no code")
	errNoEOF         = FormatError("payload ends before pseudo-EOF code")
)
