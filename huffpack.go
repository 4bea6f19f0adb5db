// Copyright (c) 2025, Huffpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffpack provides a static Huffman byte-stream compressor with a
// self-describing container format. The codec lives in compress/huffman;
// this package carries the small helpers shared by the command-line front
// end.
package huffpack

// Savings returns the space saved by compression as a percentage of the
// original size. It returns 0 when the compressed form is not smaller.
func Savings(originalSize, compressedSize int) float64 {
	if originalSize <= 0 || compressedSize >= originalSize {
		return 0
	}
	return float64(originalSize-compressedSize) / float64(originalSize) * 100
}
