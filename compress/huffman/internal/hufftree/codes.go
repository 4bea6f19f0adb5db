// Copyright (c) 2025, Huffpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

package hufftree

// Code is a Huffman codeword: the low Len bits of Bits, most significant
// bit first. With uint32 counts the longest possible codeword stays well
// under 64 bits.
type Code struct {
	Bits uint64
	Len  int
}

// Codes returns the codeword for every symbol in the tree, indexed by byte
// value; symbols absent from the alphabet have a zero Len. The walk uses an
// explicit stack rather than recursion so a maximally skewed 256-symbol
// tree cannot exhaust the call stack.
//
// A single-leaf tree has no branches to derive a path from; the lone
// symbol is assigned the one-bit code 0 and the decoder applies the same
// convention.
func (t *Tree) Codes() ([256]Code, error) {
	var codes [256]Code
	if t == nil || len(t.nodes) == 0 {
		return codes, ErrEmptyTree
	}
	if sym, leaf := t.Leaf(t.root); leaf {
		codes[sym] = Code{Bits: 0, Len: 1}
		return codes, nil
	}

	type frame struct {
		idx  int32
		code Code
	}
	stack := make([]frame, 0, 64)
	stack = append(stack, frame{idx: t.root})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if sym, leaf := t.Leaf(f.idx); leaf {
			codes[sym] = f.code
			continue
		}
		n := &t.nodes[f.idx]
		stack = append(stack,
			frame{idx: n.left, code: Code{Bits: f.code.Bits << 1, Len: f.code.Len + 1}},
			frame{idx: n.right, code: Code{Bits: f.code.Bits<<1 | 1, Len: f.code.Len + 1}},
		)
	}
	return codes, nil
}
