// Copyright (c) 2025, Huffpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package hufftree builds Huffman trees from byte frequency tables and
// derives the per-symbol codewords.
//
// Construction is a deterministic function of the frequency table alone:
// the encoder and the decoder both call Build with the same counts and are
// guaranteed to obtain bit-identical trees, which is what lets the decoder
// invert every choice the encoder made.
package hufftree

import (
	"container/heap"
	"errors"
	"sort"
)

var (
	// ErrEmptyAlphabet is returned by Build for an empty frequency table.
	ErrEmptyAlphabet = errors.New("hufftree: empty alphabet")

	// ErrEmptyTree is returned when codes are requested from a nil tree.
	ErrEmptyTree = errors.New("hufftree: empty tree")
)

// Entry is one (symbol, occurrence count) pair of a frequency table.
type Entry struct {
	Sym   byte
	Count uint32
}

const nilNode = int32(-1)

type node struct {
	freq        uint32
	sym         byte
	left, right int32
}

// Tree is an arena of nodes addressed by integer handles. Leaves occupy
// the first slots in ascending symbol order; merged nodes follow in
// creation order, so a node's index doubles as its insertion rank.
type Tree struct {
	nodes []node
	root  int32
}

// queue is a min-queue of arena indices ordered by (frequency, index).
// The index tie-break makes extraction order total and deterministic; the
// decoder only has frequencies, so anything less would let equal-frequency
// symbols land on different branches on the two sides of the codec.
type queue struct {
	t   *Tree
	idx []int32
}

func (q *queue) Len() int { return len(q.idx) }

func (q *queue) Less(i, j int) bool {
	a, b := q.idx[i], q.idx[j]
	if q.t.nodes[a].freq != q.t.nodes[b].freq {
		return q.t.nodes[a].freq < q.t.nodes[b].freq
	}
	return a < b
}

func (q *queue) Swap(i, j int) { q.idx[i], q.idx[j] = q.idx[j], q.idx[i] }

func (q *queue) Push(x any) { q.idx = append(q.idx, x.(int32)) }

func (q *queue) Pop() any {
	old := q.idx
	n := old[len(old)-1]
	q.idx = old[:len(old)-1]
	return n
}

// Build constructs the Huffman tree for table by repeatedly merging the
// two lowest-frequency nodes; the first extraction becomes the left child.
// The table may arrive in any order; leaves are inserted in ascending
// symbol order. A single-entry table yields a tree whose root is a leaf.
func Build(table []Entry) (*Tree, error) {
	if len(table) == 0 {
		return nil, ErrEmptyAlphabet
	}
	entries := make([]Entry, len(table))
	copy(entries, table)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Sym < entries[j].Sym })

	t := &Tree{nodes: make([]node, 0, 2*len(entries)-1)}
	q := &queue{t: t, idx: make([]int32, 0, len(entries))}
	for _, e := range entries {
		q.idx = append(q.idx, int32(len(t.nodes)))
		t.nodes = append(t.nodes, node{sym: e.Sym, freq: e.Count, left: nilNode, right: nilNode})
	}
	heap.Init(q)
	for q.Len() > 1 {
		left := heap.Pop(q).(int32)
		right := heap.Pop(q).(int32)
		merged := int32(len(t.nodes))
		t.nodes = append(t.nodes, node{
			freq:  t.nodes[left].freq + t.nodes[right].freq,
			left:  left,
			right: right,
		})
		heap.Push(q, merged)
	}
	t.root = heap.Pop(q).(int32)
	return t, nil
}

// Root returns the handle of the root node.
func (t *Tree) Root() int32 { return t.root }

// Leaf reports whether the node at idx is a leaf, and its symbol if so.
func (t *Tree) Leaf(idx int32) (byte, bool) {
	n := &t.nodes[idx]
	return n.sym, n.left == nilNode
}

// Step descends one level from idx: a zero bit goes left, a one bit right.
func (t *Tree) Step(idx int32, one bool) int32 {
	if one {
		return t.nodes[idx].right
	}
	return t.nodes[idx].left
}
