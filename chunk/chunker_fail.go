// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package chunk

import (
	"io"
	"strings"
	"time"

	"github.com/dsnet/chunk/internal/errors"
)

// Fail is a deterministic fault-injection chunker: it reads block_size
// bytes at a time and, for each read, consults a scripted map to decide
// whether to emit the block as a DATA chunk or fail the call with a
// simulated I/O error. It exists exclusively to exercise a caller's error
// recovery paths against a repeatable failure sequence.
type Fail struct {
	blockSize int
	script    []bool // true = fail (E), false = succeed (R); indexed by count

	count int // advances on every read attempt, across every Chunkify call

	telemetry
}

// FailConfig configures NewFail.
type FailConfig struct {
	// BlockSize is the number of bytes requested per read attempt.
	BlockSize int

	// Map is a string over the alphabet {R, E} (case-insensitive). The
	// count-th read attempt (saturating at the last character once count
	// reaches len(Map)) is scripted by Map[count]: 'R' succeeds, 'E' fails.
	Map string
}

// NewFail constructs a Fail chunker. It fails with a Configuration error if
// BlockSize is non-positive, Map is empty, or Map contains a character
// other than 'R'/'E' (either case).
func NewFail(conf FailConfig) (*Fail, error) {
	if conf.BlockSize <= 0 {
		return nil, errorf(errors.Configuration, "block size must be positive: %d", conf.BlockSize)
	}
	if conf.Map == "" {
		return nil, errorf(errors.Configuration, "map must be non-empty")
	}
	script := make([]bool, len(conf.Map))
	for i, r := range strings.ToUpper(conf.Map) {
		switch r {
		case 'R':
			script[i] = false
		case 'E':
			script[i] = true
		default:
			return nil, errorf(errors.Configuration, "map contains unknown character %q at index %d", r, i)
		}
	}
	return &Fail{blockSize: conf.BlockSize, script: script}, nil
}

// Chunkify binds the chunker to src. The scripted counter is a property of
// the Fail chunker itself, not of the returned Iterator: it persists across
// every Chunkify call on the same instance (spec: "resumption is supported
// by calling chunkify again on the same or a new source").
func (c *Fail) Chunkify(src Source) Iterator {
	return &failIterator{c: c, src: src}
}

type failIterator struct {
	c   *Fail
	src Source

	done bool
	err  error
}

func (it *failIterator) Next() (Chunk, error) {
	defer it.c.track(time.Now())

	if it.err != nil {
		return Chunk{}, it.err
	}
	if it.done {
		return Chunk{}, io.EOF
	}

	// The map is consulted before touching the source: a scripted 'E' is a
	// simulated failure of the read attempt itself, so no bytes are
	// consumed from src and none are lost. Only a scripted 'R' performs the
	// real read.
	idx := it.c.count
	if last := len(it.c.script) - 1; idx > last {
		idx = last
	}
	fail := it.c.script[idx]
	it.c.count++

	if fail {
		it.err = errorf(errors.Simulated, "simulated I/O error (EIO) at read %d", idx)
		return Chunk{}, it.err
	}

	buf := make([]byte, it.c.blockSize)
	m, rerr := io.ReadFull(it.src, buf)
	if rerr == io.ErrUnexpectedEOF {
		rerr = nil
	}
	if m == 0 {
		it.done = true
		if rerr != nil && rerr != io.EOF {
			it.err = wrapIOErr(rerr)
			return Chunk{}, it.err
		}
		it.err = io.EOF
		return Chunk{}, io.EOF
	}

	if rerr != nil || m < it.c.blockSize {
		it.done = true
	}
	return Chunk{Kind: DATA, Size: uint64(m), Payload: buf[:m]}, nil
}
