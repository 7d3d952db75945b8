// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package chunk

import (
	"io"
	"time"

	"github.com/dsnet/chunk/buzhash"
	"github.com/dsnet/chunk/internal/errors"
)

// Buzhash is the content-defined chunker: it locates cut points with a
// sliding-window rolling hash so that an insertion or deletion in the input
// only perturbs chunk boundaries near the edit, not the whole stream. This
// is what gives deduplication across similar-but-not-identical files.
type Buzhash struct {
	minSize int
	maxSize int
	window  int
	mask    uint32
	table   *buzhash.Table

	telemetry
}

// BuzhashConfig configures NewBuzhash.
type BuzhashConfig struct {
	// Seed selects the per-instance hash table derived from the fixed base
	// table. Two chunkers must share Seed (and every other field below) to
	// agree on cut points for the same bytes.
	Seed uint32

	// MinExp and MaxExp set min_size = 1<<MinExp and max_size = 1<<MaxExp,
	// the hard bounds on emitted chunk size (barring the final chunk).
	MinExp int
	MaxExp int

	// MaskBits is the number of low bits of the rolling hash tested against
	// zero to decide a cut; the average chunk size is roughly 2^MaskBits
	// over random content.
	MaskBits int

	// Window is W, the width of the rolling-hash window in bytes.
	Window int
}

// NewBuzhash constructs a Buzhash chunker. It fails with a Configuration
// error if the exponents are malformed, MaskBits is out of range, max_size
// exceeds the shared zero-buffer bound, or W+min_size+1 > max_size (the
// precondition that guarantees step 4 of the per-chunk algorithm always has
// a full window available after the minimum-size skip).
func NewBuzhash(conf BuzhashConfig) (*Buzhash, error) {
	if conf.MinExp < 0 || conf.MaxExp < 0 {
		return nil, errorf(errors.Configuration, "min_exp and max_exp must be non-negative")
	}
	if conf.MinExp > conf.MaxExp {
		return nil, errorf(errors.Configuration, "min_exp (%d) must not exceed max_exp (%d)", conf.MinExp, conf.MaxExp)
	}
	if conf.MaxExp > 30 {
		return nil, errorf(errors.Configuration, "max_exp too large: %d", conf.MaxExp)
	}
	minSize := 1 << uint(conf.MinExp)
	maxSize := 1 << uint(conf.MaxExp)
	if maxSize > maxSupportedBlockSize {
		return nil, errorf(errors.Configuration, "max_size %d exceeds maximum supported size %d", maxSize, maxSupportedBlockSize)
	}
	if conf.Window <= 0 {
		return nil, errorf(errors.Configuration, "window_size must be positive: %d", conf.Window)
	}
	if conf.MaskBits < 0 || conf.MaskBits >= 32 {
		return nil, errorf(errors.Configuration, "mask_bits out of range: %d", conf.MaskBits)
	}
	if conf.Window+minSize+1 > maxSize {
		return nil, errorf(errors.Configuration, "window (%d) + min_size (%d) + 1 exceeds max_size (%d)", conf.Window, minSize, maxSize)
	}
	return &Buzhash{
		minSize: minSize,
		maxSize: maxSize,
		window:  conf.Window,
		mask:    uint32(1<<uint(conf.MaskBits)) - 1,
		table:   buzhash.New(conf.Seed),
	}, nil
}

// Chunkify binds the chunker to src, allocating its max_size working buffer.
func (c *Buzhash) Chunkify(src Source) Iterator {
	return &buzhashIterator{c: c, src: src, buf: make([]byte, c.maxSize)}
}

type buzhashIterator struct {
	c   *Buzhash
	src Source

	buf       []byte
	position  int // index of the next byte to examine
	remaining int // bytes buffered at or after position, not yet examined
	last      int // start of the current (not yet emitted) chunk

	bytesRead    int64
	bytesYielded int64
	eof          bool
	done         bool
	err          error
}

func (it *buzhashIterator) Next() (Chunk, error) {
	defer it.c.track(time.Now())

	if it.err != nil {
		return Chunk{}, it.err
	}
	if it.done {
		return Chunk{}, io.EOF
	}

	c := it.c
	minSize, W := c.minSize, c.window

	// Step 1: refill guard.
	if _, err := it.refillUntil(minSize + W + 1); err != nil {
		return it.fail(err)
	}

	// Step 2: short-tail case.
	if it.remaining < minSize+W+1 {
		it.done = true
		if it.remaining > 0 {
			n := it.remaining
			chunkBuf := it.buf[it.position : it.position+n]
			it.position += n
			it.remaining = 0
			it.last = it.position
			it.bytesYielded += int64(n)
			kind, payload := classify(chunkBuf)
			chunk := Chunk{Kind: kind, Size: uint64(n)}
			if kind == DATA {
				chunk.Payload = payload
			}
			return chunk, nil
		}
		if it.bytesRead == it.bytesYielded {
			return Chunk{}, io.EOF
		}
		err := errorf(errors.Internal, "bytes_read (%d) != bytes_yielded (%d) at end of stream", it.bytesRead, it.bytesYielded)
		it.err = err
		return Chunk{}, err
	}

	// Step 3: minimum-size skip. The window starts exactly at the first
	// byte that could be a cut point.
	it.position += minSize
	it.remaining -= minSize

	// Step 4: initialize the rolling-hash window.
	sum := c.table.Sum(it.buf[it.position : it.position+W])

	// Step 5: slide and test.
	for {
		for it.remaining > W && sum&c.mask != 0 {
			removeByte := it.buf[it.position]
			addByte := it.buf[it.position+W]
			sum = c.table.Update(sum, removeByte, addByte, W)
			it.position++
			it.remaining--
		}
		if it.remaining > W {
			break // sum&mask == 0: cut point found
		}
		if it.eof {
			break // ran dry; the tail is absorbed below
		}
		full, err := it.refillUntil(W + 1)
		if err != nil {
			return it.fail(err)
		}
		if full {
			break // buffer is pinned at max_size; the tail is absorbed below
		}
	}

	// Step 6: cut point determined. If the window ran out of room rather
	// than matching the mask (EOF, or the buffer hit its max_size bound),
	// absorb whatever is left into this chunk.
	if it.remaining <= W {
		it.position += it.remaining
		it.remaining = 0
	}

	// Step 7: emit.
	n := it.position - it.last
	chunkBuf := it.buf[it.last:it.position]
	it.last = it.position
	it.bytesYielded += int64(n)

	// Step 8: post-emit classification.
	kind, payload := classify(chunkBuf)
	chunk := Chunk{Kind: kind, Size: uint64(n)}
	if kind == DATA {
		chunk.Payload = payload
	}
	return chunk, nil
}

func (it *buzhashIterator) fail(err error) (Chunk, error) {
	it.done = true
	it.err = err
	return Chunk{}, err
}

// refillUntil compacts the buffer and reads until remaining reaches
// threshold or the source is exhausted. If the buffer has no more physical
// room to grow into (remaining still below threshold with nowhere left to
// read into), it returns full=true instead of looping forever; the caller
// must treat that the same as reaching EOF for purposes of closing out the
// current chunk, since it is the max_size bound, not a transient state that
// a later call could resolve.
func (it *buzhashIterator) refillUntil(threshold int) (full bool, err error) {
	for it.remaining < threshold && !it.eof {
		it.compact()
		space := it.c.maxSize - it.position - it.remaining
		if space <= 0 {
			return true, nil
		}
		n, rerr := it.src.Read(it.buf[it.position+it.remaining : it.position+it.remaining+space])
		if n > 0 {
			it.remaining += n
			it.bytesRead += int64(n)
		}
		if rerr == io.EOF {
			it.eof = true
		} else if rerr != nil {
			return false, wrapIOErr(rerr)
		}
	}
	return false, nil
}

// compact moves the unconsumed region [last, position+remaining) to the
// start of the buffer, so last == 0 and position shrinks by the old last.
func (it *buzhashIterator) compact() {
	if it.last == 0 {
		return
	}
	n := it.position + it.remaining - it.last
	copy(it.buf[0:n], it.buf[it.last:it.last+n])
	it.position -= it.last
	it.last = 0
}
