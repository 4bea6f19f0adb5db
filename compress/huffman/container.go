// Copyright (c) 2025, Huffpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bytes"
	"encoding/binary"

	"github.com/hufftools/huffpack/compress/huffman/internal/hufftree"
)

const (
	// headerSize is the fixed prefix: original size, packed size, padding
	// and table count, one uint32 each.
	headerSize = 16

	// entrySize is one frequency table entry: 1-byte symbol + uint32 count.
	entrySize = 5
)

type header struct {
	originalSize uint32
	packedSize   uint32
	padding      uint32
	tableCount   uint32
}

// writeHeader serializes the fixed header and the frequency table. The
// table must already be in ascending symbol order; the decoder rebuilds
// its tree from these entries alone, so their order is part of the format.
func writeHeader(buf *bytes.Buffer, hdr header, table []hufftree.Entry) {
	var b [4]byte
	put := func(v uint32) {
		binary.LittleEndian.PutUint32(b[:], v)
		buf.Write(b[:])
	}
	put(hdr.originalSize)
	put(hdr.packedSize)
	put(hdr.padding)
	put(uint32(len(table)))
	for _, e := range table {
		buf.WriteByte(e.Sym)
		put(e.Count)
	}
}

// parseContainer splits a container into its header, frequency table and
// packed stream, validating every declared length against what is actually
// present before anything dereferences it.
func parseContainer(data []byte) (header, []hufftree.Entry, []byte, error) {
	var hdr header
	if len(data) < headerSize {
		return hdr, nil, nil, CorruptContainerError(len(data))
	}
	hdr.originalSize = binary.LittleEndian.Uint32(data[0:4])
	hdr.packedSize = binary.LittleEndian.Uint32(data[4:8])
	hdr.padding = binary.LittleEndian.Uint32(data[8:12])
	hdr.tableCount = binary.LittleEndian.Uint32(data[12:16])

	if hdr.padding < 1 || hdr.padding > 8 {
		return hdr, nil, nil, CorruptContainerError(8)
	}
	if uint64(hdr.packedSize)*8 < uint64(hdr.padding) {
		return hdr, nil, nil, CorruptContainerError(4)
	}
	if hdr.tableCount == 0 || hdr.tableCount > 256 {
		return hdr, nil, nil, CorruptContainerError(12)
	}
	tableEnd := headerSize + int(hdr.tableCount)*entrySize
	if len(data) < tableEnd {
		return hdr, nil, nil, CorruptContainerError(len(data))
	}

	table := make([]hufftree.Entry, hdr.tableCount)
	var total uint64
	off := headerSize
	for i := range table {
		table[i].Sym = data[off]
		table[i].Count = binary.LittleEndian.Uint32(data[off+1 : off+entrySize])
		if table[i].Count == 0 {
			return hdr, nil, nil, CorruptContainerError(off + 1)
		}
		if i > 0 && table[i].Sym <= table[i-1].Sym {
			return hdr, nil, nil, CorruptContainerError(off)
		}
		total += uint64(table[i].Count)
		off += entrySize
	}
	if total != uint64(hdr.originalSize) {
		// The counts determine how many symbols the stream decodes to;
		// they must agree with the declared original size.
		return hdr, nil, nil, CorruptContainerError(0)
	}

	packed := data[tableEnd:]
	if len(packed) != int(hdr.packedSize) {
		return hdr, nil, nil, CorruptContainerError(tableEnd)
	}
	return hdr, table, packed, nil
}
