// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package chunk

import (
	"bytes"
	"io"
	"testing"

	"github.com/dsnet/chunk/internal/errors"
)

// TestFailScenarioS5 pins down spec scenario S5: ChunkerFailing(block_size=4,
// map="RERR") on an 8-byte non-zero source. A scripted 'E' entry never
// touches the source, so the 8 bytes are consumed by exactly the two
// scripted 'R' reads.
func TestFailScenarioS5(t *testing.T) {
	c, err := NewFail(FailConfig{BlockSize: 4, Map: "RERR"})
	if err != nil {
		t.Fatalf("NewFail: %v", err)
	}
	src := bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8})

	chunk, err := c.Chunkify(src).Next()
	if err != nil {
		t.Fatalf("call 1: unexpected error: %v", err)
	}
	if chunk.Kind != DATA || chunk.Size != 4 {
		t.Fatalf("call 1: got %+v, want DATA size 4", chunk)
	}

	_, err = c.Chunkify(src).Next()
	if !errors.IsKind(err, errors.Simulated) {
		t.Fatalf("call 2: got err %v, want a Simulated error", err)
	}

	chunk, err = c.Chunkify(src).Next()
	if err != nil {
		t.Fatalf("call 3: unexpected error: %v", err)
	}
	if chunk.Kind != DATA || chunk.Size != 4 {
		t.Fatalf("call 3: got %+v, want DATA size 4", chunk)
	}

	_, err = c.Chunkify(src).Next()
	if err != io.EOF {
		t.Fatalf("call 4: got err %v, want io.EOF", err)
	}
}

func TestFailUnknownMapChar(t *testing.T) {
	if _, err := NewFail(FailConfig{BlockSize: 4, Map: "RX"}); !errors.IsKind(err, errors.Configuration) {
		t.Fatalf("got err %v, want a Configuration error", err)
	}
}

func TestFailBadBlockSize(t *testing.T) {
	if _, err := NewFail(FailConfig{BlockSize: 0, Map: "R"}); !errors.IsKind(err, errors.Configuration) {
		t.Fatalf("got err %v, want a Configuration error", err)
	}
}

func TestFailAllRead(t *testing.T) {
	c, err := NewFail(FailConfig{BlockSize: 3, Map: "r"})
	if err != nil {
		t.Fatalf("NewFail: %v", err)
	}
	src := bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7})
	it := c.Chunkify(src)

	var sizes []uint64
	for {
		chunk, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sizes = append(sizes, chunk.Size)
	}
	want := []uint64{3, 3, 1}
	if len(sizes) != len(want) {
		t.Fatalf("got %v sizes, want %v", sizes, want)
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Fatalf("got %v, want %v", sizes, want)
		}
	}
}
