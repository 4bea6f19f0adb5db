// Copyright (c) 2025, Huffpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bytes"

	"github.com/dgryski/go-bitstream"

	"github.com/hufftools/huffpack/compress/huffman/internal/hufftree"
)

// countFrequencies scans input and returns its frequency table in
// ascending symbol order. An empty input yields an empty table.
func countFrequencies(input []byte) []hufftree.Entry {
	var hist [256]uint32
	for _, b := range input {
		hist[b]++
	}
	table := make([]hufftree.Entry, 0, 16)
	for sym, n := range hist {
		if n > 0 {
			table = append(table, hufftree.Entry{Sym: byte(sym), Count: n})
		}
	}
	return table
}

// Compress encodes input into a self-describing container: header,
// frequency table, then every input byte replaced by its Huffman codeword,
// packed MSB-first and zero-padded to a whole byte.
//
// Compress is deterministic: the same input always produces a
// byte-identical container. It fails with ErrEmptyInput on empty input.
func Compress(input []byte) ([]byte, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}
	table := countFrequencies(input)
	tree, err := hufftree.Build(table)
	if err != nil {
		return nil, err
	}
	codes, err := tree.Codes()
	if err != nil {
		return nil, err
	}

	var totalBits uint64
	for _, e := range table {
		totalBits += uint64(e.Count) * uint64(codes[e.Sym].Len)
	}
	// 1..8: a stream that is already byte-aligned still gets a full byte
	// of zero padding.
	padding := 8 - totalBits%8
	packedSize := (totalBits + padding) / 8

	hdr := header{
		originalSize: uint32(len(input)),
		packedSize:   uint32(packedSize),
		padding:      uint32(padding),
		tableCount:   uint32(len(table)),
	}
	buf := bytes.NewBuffer(make([]byte, 0, headerSize+len(table)*entrySize+int(packedSize)))
	writeHeader(buf, hdr, table)

	bw := bitstream.NewWriter(buf)
	for _, b := range input {
		c := codes[b]
		if err := bw.WriteBits(c.Bits, c.Len); err != nil {
			return nil, err
		}
	}
	if err := bw.WriteBits(0, int(padding)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
