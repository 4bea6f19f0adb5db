// Copyright (c) 2025, Huffpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffman implements a static Huffman byte-stream codec with a
// self-describing container format.
//
// Compress rewrites its input as a bit-packed stream preceded by a header
// carrying the byte frequency table; Decompress rebuilds the identical
// tree from that table and inverts the encoding exactly. The container
// layout is:
//
//	original size  uint32   byte length of the uncompressed input
//	packed size    uint32   byte length of the packed bit stream
//	padding        uint32   zero bits appended to byte-align the stream (1..8)
//	table count    uint32   number of frequency table entries
//	entries        5 bytes  1-byte symbol + uint32 count, ascending by symbol
//	packed stream  ...      Huffman-coded data, MSB-first, zero-padded
//
// All multi-byte fields are little-endian. A stream that is already
// byte-aligned still gets a full byte of padding (padding == 8), matching
// the format this codec inherits.
package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned by Compress for zero-length input; an
	// empty alphabet has no Huffman tree.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrTruncatedStream is returned by Decompress when the packed stream
	// ends in the middle of a codeword.
	ErrTruncatedStream = errors.New("huffman: truncated bit stream")
)

// CorruptContainerError reports a container whose header cannot be parsed
// or whose fields are internally inconsistent. The value is the byte
// offset of the field that failed validation.
type CorruptContainerError int64

func (e CorruptContainerError) Error() string {
	return fmt.Sprintf("huffman: corrupt container at offset %d", int64(e))
}
