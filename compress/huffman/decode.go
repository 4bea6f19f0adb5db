// Copyright (c) 2025, Huffpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bytes"

	"github.com/dgryski/go-bitstream"

	"github.com/hufftools/huffpack/compress/huffman/internal/hufftree"
)

// Decompress parses a container produced by Compress and reconstructs the
// original bytes exactly.
//
// It fails with CorruptContainerError when the header cannot be parsed or
// is internally inconsistent, and with ErrTruncatedStream when the packed
// stream ends in the middle of a codeword.
func Decompress(container []byte) ([]byte, error) {
	hdr, table, packed, err := parseContainer(container)
	if err != nil {
		return nil, err
	}
	tree, err := hufftree.Build(table)
	if err != nil {
		return nil, err
	}

	nbits := uint64(hdr.packedSize)*8 - uint64(hdr.padding)
	if uint64(hdr.originalSize) > nbits {
		// Every codeword is at least one bit, so the stream cannot hold
		// more symbols than it has meaningful bits.
		return nil, CorruptContainerError(0)
	}
	out := make([]byte, 0, hdr.originalSize)

	if sym, leaf := tree.Leaf(tree.Root()); leaf {
		// Single-symbol alphabet: the encoder emits one fixed bit per
		// occurrence, so the meaningful bit count is the occurrence count.
		// There is no tree to descend; emitting directly avoids a
		// zero-progress walk at the root.
		for i := uint64(0); i < nbits; i++ {
			out = append(out, sym)
		}
		if uint64(len(out)) != uint64(hdr.originalSize) {
			return nil, CorruptContainerError(0)
		}
		return out, nil
	}

	br := bitstream.NewReader(bytes.NewReader(packed))
	root := tree.Root()
	cur := root
	for i := uint64(0); i < nbits; i++ {
		bit, err := br.ReadBit()
		if err != nil {
			// parseContainer verified the packed length against the
			// header, so the reader cannot run dry before nbits.
			return nil, ErrTruncatedStream
		}
		cur = tree.Step(cur, bool(bit))
		if sym, leaf := tree.Leaf(cur); leaf {
			out = append(out, sym)
			cur = root
		}
	}
	if cur != root {
		return nil, ErrTruncatedStream
	}
	if uint64(len(out)) != uint64(hdr.originalSize) {
		// The bits decoded cleanly but to a different symbol count than
		// the frequency table promised.
		return nil, CorruptContainerError(0)
	}
	return out, nil
}
