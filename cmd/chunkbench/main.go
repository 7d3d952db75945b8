// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command chunkbench runs one of the chunking core's three chunker
// variants over an input file (or a synthetic in-memory fixture) and
// reports chunk count, kind histogram, average chunk size, and throughput.
//
// Example usage:
//
//	$ chunkbench -algo buzhash -size 16MiB
//	$ chunkbench -algo fixed -file sparse.bin -sparse
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dsnet/chunk/chunk"
	"github.com/dsnet/chunk/internal/testutil"
	"github.com/dsnet/golib/strconv"
)

func main() {
	algo := flag.String("algo", "buzhash", "chunker algorithm: buzhash, fixed, or fail")
	file := flag.String("file", "", "input file; if empty, a synthetic pseudo-random fixture is generated")
	size := flag.String("size", "16MiB", "size of the synthetic fixture (ignored if -file is set), e.g. 1MiB")
	seed := flag.Uint("seed", 1, "buzhash table seed")
	minExp := flag.Int("minexp", 10, "buzhash min_exp (min_size = 1<<minexp)")
	maxExp := flag.Int("maxexp", 16, "buzhash max_exp (max_size = 1<<maxexp)")
	maskBits := flag.Int("maskbits", 12, "buzhash mask_bits")
	window := flag.Int("window", 4095, "buzhash rolling-hash window width W")
	block := flag.Int("block", 4096, "fixed/fail chunker block_size")
	header := flag.Int("header", 0, "fixed chunker header_size")
	sparse := flag.Bool("sparse", false, "fixed chunker: enable sparse-hole skipping")
	failMap := flag.String("map", "RRRRE", "fail chunker scripted map over {R,E}")
	flag.Parse()

	src, closer, err := openSource(*file, *size)
	if err != nil {
		log.Fatalf("chunkbench: %v", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	opts := chunk.Options{
		Buzhash: chunk.BuzhashConfig{Seed: uint32(*seed), MinExp: *minExp, MaxExp: *maxExp, MaskBits: *maskBits, Window: *window},
		Fixed:   chunk.FixedConfig{BlockSize: *block, HeaderSize: *header, Sparse: *sparse},
		Fail:    chunk.FailConfig{BlockSize: *block, Map: *failMap},
	}
	c, err := chunk.GetChunker(*algo, opts)
	if err != nil {
		log.Fatalf("chunkbench: %v", err)
	}

	stats, err := run(c, src)
	if err != nil {
		log.Fatalf("chunkbench: %v", err)
	}
	stats.print(*algo)
}

func openSource(file, size string) (io.Reader, io.Closer, error) {
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, nil, err
		}
		return f, f, nil
	}
	n, err := strconv.ParsePrefix(size, strconv.AutoParse)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid -size %q: %v", size, err)
	}
	data := testutil.NewRand(42).Bytes(int(n))
	return bytes.NewReader(data), nil, nil
}

type stats struct {
	counts  [3]int // indexed by chunk.Kind
	sizes   [3]uint64
	total   uint64
	largest uint64
	elapsed float64
}

func run(c chunk.Chunker, src io.Reader) (*stats, error) {
	s := &stats{}
	it := c.Chunkify(src)
	for {
		ch, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		s.counts[ch.Kind]++
		s.sizes[ch.Kind] += ch.Size
		s.total += ch.Size
		if ch.Size > s.largest {
			s.largest = ch.Size
		}
	}
	s.elapsed = c.Elapsed()
	return s, nil
}

func (s *stats) print(algo string) {
	n := s.counts[chunk.DATA] + s.counts[chunk.ALLOC] + s.counts[chunk.HOLE]
	fmt.Printf("ALGORITHM: %s\n", algo)
	fmt.Printf("\tchunks:     %d\n", n)
	fmt.Printf("\ttotal:      %s\n", fmtBytes(s.total))
	fmt.Printf("\tlargest:    %s\n", fmtBytes(s.largest))
	if n > 0 {
		fmt.Printf("\taverage:    %s\n", fmtBytes(s.total/uint64(n)))
	}
	fmt.Printf("\tkinds:      %s\n", strings.Join([]string{
		fmt.Sprintf("DATA=%d (%s)", s.counts[chunk.DATA], fmtBytes(s.sizes[chunk.DATA])),
		fmt.Sprintf("ALLOC=%d (%s)", s.counts[chunk.ALLOC], fmtBytes(s.sizes[chunk.ALLOC])),
		fmt.Sprintf("HOLE=%d (%s)", s.counts[chunk.HOLE], fmtBytes(s.sizes[chunk.HOLE])),
	}, ", "))
	fmt.Printf("\telapsed:    %.6fs\n", s.elapsed)
	if s.elapsed > 0 {
		fmt.Printf("\tthroughput: %s/s\n", fmtBytes(uint64(float64(s.total)/s.elapsed)))
	}
}

func fmtBytes(n uint64) string {
	return strconv.FormatPrefix(float64(n), strconv.Base1024, 2) + "B"
}
