// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package chunk

import (
	"bytes"
	"io"
	"testing"

	"github.com/dsnet/chunk/internal/errors"
	"github.com/dsnet/chunk/internal/testutil"
)

// capReader forces every Read call to return at most cap bytes, regardless
// of how large a buffer the caller supplies, so a test can exercise a
// chunker against an arbitrary, adversarial read-size partition of the same
// underlying bytes.
type capReader struct {
	r   io.Reader
	cap int
}

func (c *capReader) Read(p []byte) (int, error) {
	if len(p) > c.cap {
		p = p[:c.cap]
	}
	return c.r.Read(p)
}

func buzhashSizes(t *testing.T, conf BuzhashConfig, src io.Reader) []uint64 {
	t.Helper()
	c, err := NewBuzhash(conf)
	if err != nil {
		t.Fatalf("NewBuzhash: %v", err)
	}
	it := c.Chunkify(src)
	var sizes []uint64
	for {
		ch, err := it.Next()
		if err == io.EOF {
			return sizes
		}
		if err != nil {
			t.Fatalf("Next: unexpected error: %v", err)
		}
		sizes = append(sizes, ch.Size)
	}
}

// TestBuzhashEmptySource pins down spec scenario S1 for the content-defined
// chunker: an empty source yields the empty sequence.
func TestBuzhashEmptySource(t *testing.T) {
	conf := BuzhashConfig{Seed: 1, MinExp: 10, MaxExp: 16, MaskBits: 12, Window: 4095}
	sizes := buzhashSizes(t, conf, bytes.NewReader(nil))
	if len(sizes) != 0 {
		t.Fatalf("got %d chunks, want 0", len(sizes))
	}
}

// TestBuzhashDeterminism pins down spec scenario S2: the same 1 MiB
// pseudo-random stream must produce identical chunk boundaries whether
// delivered to the chunker in one read or in 17-byte reads.
func TestBuzhashDeterminism(t *testing.T) {
	data := testutil.NewRand(1).Bytes(1 << 20)
	conf := BuzhashConfig{Seed: 1, MinExp: 10, MaxExp: 16, MaskBits: 12, Window: 4095}

	whole := buzhashSizes(t, conf, bytes.NewReader(data))
	partitioned := buzhashSizes(t, conf, &capReader{r: bytes.NewReader(data), cap: 17})

	if len(whole) != len(partitioned) {
		t.Fatalf("got %d chunks reading whole, %d reading 17-byte chunks", len(whole), len(partitioned))
	}
	for i := range whole {
		if whole[i] != partitioned[i] {
			t.Fatalf("chunk %d: size %d reading whole, %d reading 17-byte chunks", i, whole[i], partitioned[i])
		}
	}
}

// TestBuzhashSizeBounds pins down invariant 4: every emitted chunk satisfies
// min_size <= size <= max_size, except possibly the final one.
func TestBuzhashSizeBounds(t *testing.T) {
	data := testutil.NewRand(2).Bytes(4 << 20)
	conf := BuzhashConfig{Seed: 7, MinExp: 12, MaxExp: 16, MaskBits: 10, Window: 64}

	c, err := NewBuzhash(conf)
	if err != nil {
		t.Fatalf("NewBuzhash: %v", err)
	}
	it := c.Chunkify(bytes.NewReader(data))

	minSize := uint64(1) << conf.MinExp
	maxSize := uint64(1) << conf.MaxExp

	var sizes []uint64
	var total uint64
	for {
		ch, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: unexpected error: %v", err)
		}
		sizes = append(sizes, ch.Size)
		total += ch.Size
	}
	if total != uint64(len(data)) {
		t.Fatalf("sum of sizes = %d, want %d", total, len(data))
	}
	for i, size := range sizes {
		final := i == len(sizes)-1
		if size < minSize && !final {
			t.Errorf("chunk %d: size %d below min_size %d (not final)", i, size, minSize)
		}
		if size > maxSize {
			t.Errorf("chunk %d: size %d exceeds max_size %d", i, size, maxSize)
		}
	}
}

// TestBuzhashMaxSizeBoundTerminates pins down spec §4.6's maximum-chunk
// bound: the cut-search loop must terminate once the buffer fills to
// max_size, even when the source is not yet exhausted and the mask never
// matches. MaskBits=31 makes a mask match astronomically unlikely over a
// short pseudo-random stream, forcing every chunk up against max_size; a
// chunker that only treats true EOF as a reason to stop searching would spin
// forever right here instead of cutting at max_size and continuing.
func TestBuzhashMaxSizeBoundTerminates(t *testing.T) {
	conf := BuzhashConfig{Seed: 0, MinExp: 0, MaxExp: 3, Window: 1, MaskBits: 31}
	data := testutil.NewRand(3).Bytes(100)

	c, err := NewBuzhash(conf)
	if err != nil {
		t.Fatalf("NewBuzhash: %v", err)
	}
	it := c.Chunkify(bytes.NewReader(data))

	maxSize := uint64(1) << conf.MaxExp
	var total uint64
	for i := 0; ; i++ {
		if i > len(data)+10 {
			t.Fatalf("did not terminate after %d chunks; want at most %d for %d bytes at max_size %d", i, len(data)+10, len(data), maxSize)
		}
		ch, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: unexpected error: %v", err)
		}
		if ch.Size > maxSize {
			t.Errorf("chunk %d: size %d exceeds max_size %d", i, ch.Size, maxSize)
		}
		total += ch.Size
	}
	if total != uint64(len(data)) {
		t.Fatalf("sum of sizes = %d, want %d", total, len(data))
	}
}

func TestBuzhashBadConfig(t *testing.T) {
	base := BuzhashConfig{Seed: 0, MinExp: 10, MaxExp: 16, MaskBits: 12, Window: 4095}

	bad := base
	bad.MinExp = 17
	if _, err := NewBuzhash(bad); !errors.IsKind(err, errors.Configuration) {
		t.Errorf("min_exp > max_exp: got err %v, want a Configuration error", err)
	}

	bad = base
	bad.Window = 0
	if _, err := NewBuzhash(bad); !errors.IsKind(err, errors.Configuration) {
		t.Errorf("window <= 0: got err %v, want a Configuration error", err)
	}

	bad = base
	bad.MaxExp = 10
	bad.MinExp = 10
	bad.Window = 1 << 10 // W + min_size + 1 > max_size
	if _, err := NewBuzhash(bad); !errors.IsKind(err, errors.Configuration) {
		t.Errorf("W+min_size+1 > max_size: got err %v, want a Configuration error", err)
	}
}
