// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build ignore

// Generates sparse.bin, a file with known DATA/HOLE regions for manual
// testing of the fixed chunker's sparse path (and the sparse enumerator
// directly). The layout, in order, is:
//
//	[0,      64KiB) data   (pseudo-random, non-zero)
//	[64KiB, 192KiB) hole   (never written; left as a sparse gap)
//	[192KiB,256KiB) data   (pseudo-random, non-zero)
//	[256KiB,320KiB) data   (all zero, but written, so it is NOT a hole;
//	                        this block exercises the all-zero classifier
//	                        distinguishing ALLOC from a true sparse HOLE)
//
// Whether the hole region actually reads back as a hole depends on the
// filesystem; ext4/xfs/btrfs all honor Seek+Truncate sparseness, but a
// filesystem without sparse-file support will see it as allocated zeros.
package main

import (
	"math/rand"
	"os"
)

const name = "sparse.bin"

func main() {
	f, err := os.Create(name)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	r := rand.New(rand.NewSource(0))
	randBlock := func(n int) []byte {
		b := make([]byte, n)
		for i := range b {
			b[i] = byte(r.Int())
		}
		return b
	}

	write := func(off int64, p []byte) {
		if _, err := f.WriteAt(p, off); err != nil {
			panic(err)
		}
	}

	const (
		dataLen1 = 64 * 1024
		holeLen  = 128 * 1024
		dataLen2 = 64 * 1024
		zeroLen  = 64 * 1024
	)

	write(0, randBlock(dataLen1))
	// [dataLen1, dataLen1+holeLen) left unwritten: a sparse hole once the
	// file is truncated out to its final length below.
	write(dataLen1+holeLen, randBlock(dataLen2))
	write(dataLen1+holeLen+dataLen2, make([]byte, zeroLen))

	if err := f.Truncate(dataLen1 + holeLen + dataLen2 + zeroLen); err != nil {
		panic(err)
	}
}
