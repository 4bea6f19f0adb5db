// Copyright (c) 2025, Huffpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

// Command huffpack compresses and decompresses single files with the
// static Huffman codec from compress/huffman.
//
// Usage:
//
//	huffpack [-o output] input        compress input into input.huff
//	huffpack -d [-o output] input     decompress input
//
// When compressing, the configured extension (default ".huff") is appended
// to the output name unless it already carries it. When decompressing
// without -o, the extension is stripped from the input name.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hufftools/huffpack"
	"github.com/hufftools/huffpack/compress/huffman"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffpack: ")

	decompress := flag.Bool("d", false, "decompress instead of compress")
	output := flag.String("o", "", "output file (default derived from input)")
	ext := flag.String("ext", ".huff", "extension for compressed files")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	input := flag.Arg(0)

	data, err := os.ReadFile(input)
	if err != nil {
		log.Fatal(err)
	}

	if *decompress {
		out := *output
		if out == "" {
			out = strings.TrimSuffix(input, *ext)
			if out == input {
				log.Fatalf("%s has no %s extension; use -o to name the output", input, *ext)
			}
		}
		plain, err := huffman.Decompress(data)
		if err != nil {
			log.Fatalf("decompress %s: %v", input, err)
		}
		if err := os.WriteFile(out, plain, 0o644); err != nil {
			log.Fatal(err)
		}
		return
	}

	out := *output
	if out == "" {
		out = input + *ext
	} else if !strings.HasSuffix(out, *ext) {
		out += *ext
	}
	packed, err := huffman.Compress(data)
	if err != nil {
		log.Fatalf("compress %s: %v", input, err)
	}
	if err := os.WriteFile(out, packed, 0o644); err != nil {
		log.Fatal(err)
	}
	if s := huffpack.Savings(len(data), len(packed)); s > 0 {
		fmt.Printf("%s was compressed from %d bytes to %d bytes, saving %.2f%% space\n",
			input, len(data), len(packed), s)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage:
  huffpack [-o output] [-ext suffix] input       compress input
  huffpack -d [-o output] [-ext suffix] input    decompress input
flags:
`)
	flag.PrintDefaults()
}
