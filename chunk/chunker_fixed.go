// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package chunk

import (
	"io"
	"time"

	"github.com/dsnet/chunk/internal/errors"
	"github.com/dsnet/chunk/sparse"
)

// unbounded marks a synthesized range that extends to EOF rather than a
// known length; it is never produced by the sparse package itself.
const unbounded = -1

// Fixed is a block-aligned chunker: it emits successive blocks of
// block_size bytes (the last block of any run may be shorter), optionally
// preceded by a fixed-size header block, and optionally skipping
// filesystem-level sparse holes instead of reading them.
type Fixed struct {
	blockSize  int
	headerSize int
	sparse     bool

	telemetry
}

// FixedConfig configures NewFixed.
type FixedConfig struct {
	// BlockSize is the size, in bytes, of every emitted block except
	// possibly the last one of a run.
	BlockSize int

	// HeaderSize, if positive, forces a single leading block of exactly
	// this many bytes, always treated as a data range.
	HeaderSize int

	// Sparse enables filesystem-level hole detection: when the source
	// supports SEEK_DATA/SEEK_HOLE, holes are skipped rather than read and
	// zero-classified. If the source doesn't support it, Sparse is
	// transparently ignored (spec: "sparse-seek not supported" is handled
	// internally and never surfaced).
	Sparse bool
}

// NewFixed constructs a Fixed chunker. It fails with a Configuration error
// if BlockSize is non-positive or exceeds the shared zero-buffer bound, or
// if HeaderSize is negative.
func NewFixed(conf FixedConfig) (*Fixed, error) {
	if conf.BlockSize <= 0 {
		return nil, errorf(errors.Configuration, "block size must be positive: %d", conf.BlockSize)
	}
	if conf.BlockSize > maxSupportedBlockSize {
		return nil, errorf(errors.Configuration, "block size %d exceeds maximum supported size %d", conf.BlockSize, maxSupportedBlockSize)
	}
	if conf.HeaderSize < 0 {
		return nil, errorf(errors.Configuration, "header size must be non-negative: %d", conf.HeaderSize)
	}
	return &Fixed{
		blockSize:  conf.BlockSize,
		headerSize: conf.HeaderSize,
		sparse:     conf.Sparse,
	}, nil
}

// Chunkify binds the chunker to src, building its own file map if Sparse is
// enabled and src supports it.
func (c *Fixed) Chunkify(src Source) Iterator {
	return &fixedIterator{c: c, src: src}
}

// ChunkifyMap binds the chunker to src using an externally supplied file
// map instead of building one internally (spec §4.4 step 1: "optionally an
// externally supplied file map").
func (c *Fixed) ChunkifyMap(src Source, ranges []sparse.Range) Iterator {
	return &fixedIterator{c: c, src: src, ranges: ranges, ranged: true, rangeIdx: -1}
}

type fixedIterator struct {
	c   *Fixed
	src Source

	ranges   []sparse.Range
	ranged   bool // true once ranges has been populated (possibly empty)
	rangeIdx int  // index of the current range; -1 before the first advance

	curOffset int64 // logical offset of the next byte to emit
	rangeLeft int64 // bytes remaining in the current range (unbounded if < 0)

	done bool
	err  error
}

func (it *fixedIterator) Next() (Chunk, error) {
	defer it.c.track(time.Now())

	if it.err != nil {
		return Chunk{}, it.err
	}
	if it.done {
		return Chunk{}, io.EOF
	}
	if !it.ranged {
		it.buildMap()
	}

	for {
		if it.rangeLeft == 0 {
			if !it.advanceRange() {
				if it.err != nil {
					return it.finish(Chunk{}, it.err)
				}
				return it.finish(Chunk{}, io.EOF)
			}
		}

		r := it.ranges[it.rangeIdx]

		n := int64(it.c.blockSize)
		if it.rangeLeft >= 0 && n > it.rangeLeft {
			n = it.rangeLeft
		}

		if r.IsData {
			buf := make([]byte, n)
			m, rerr := io.ReadFull(it.src, buf)
			if rerr == io.ErrUnexpectedEOF {
				rerr = nil // short final read; not an error
			}
			it.curOffset += int64(m)
			if it.rangeLeft >= 0 {
				it.rangeLeft -= int64(m)
			}
			if m > 0 {
				kind, payload := classify(buf[:m])
				chunk := Chunk{Kind: kind, Size: uint64(m)}
				if kind == DATA {
					chunk.Payload = payload
				}
				if rerr != nil || int64(m) < n {
					return it.finish(chunk, nil)
				}
				return chunk, nil
			}
			if rerr != nil && rerr != io.EOF {
				return it.finish(Chunk{}, wrapIOErr(rerr))
			}
			return it.finish(Chunk{}, io.EOF)
		}

		// Hole: seek forward without reading.
		seeker, ok := it.src.(io.Seeker)
		if !ok {
			return it.finish(Chunk{}, errorf(errors.Internal, "hole range requires a seekable source"))
		}
		if _, serr := seeker.Seek(n, io.SeekCurrent); serr != nil {
			return it.finish(Chunk{}, wrapIOErr(serr))
		}
		it.curOffset += n
		if it.rangeLeft >= 0 {
			it.rangeLeft -= n
		}
		return Chunk{Kind: HOLE, Size: uint64(n)}, nil
	}
}

func (it *fixedIterator) finish(c Chunk, err error) (Chunk, error) {
	it.done = true
	it.err = err
	if err != nil && err != io.EOF {
		return c, err
	}
	if c.Size > 0 {
		return c, nil
	}
	return c, io.EOF
}

// advanceRange moves to the next non-empty range, seeking the source if the
// range's start doesn't match the current logical offset (a map that skips
// regions). It reports whether a range is available. rangeIdx starts at -1
// (set by buildMap), so the first call always lands on ranges[0].
func (it *fixedIterator) advanceRange() bool {
	for {
		it.rangeIdx++
		if it.rangeIdx >= len(it.ranges) {
			return false
		}
		r := it.ranges[it.rangeIdx]
		if r.Length == 0 {
			continue
		}
		if r.Start != it.curOffset {
			seeker, ok := it.src.(io.Seeker)
			if !ok {
				it.err = errorf(errors.Internal, "map skips region but source is not seekable")
				return false
			}
			if _, err := seeker.Seek(r.Start, io.SeekStart); err != nil {
				it.err = wrapIOErr(err)
				return false
			}
			it.curOffset = r.Start
		}
		it.rangeLeft = r.Length
		return true
	}
}

// buildMap computes the file map once, per spec §4.4 steps 1-2.
func (it *fixedIterator) buildMap() {
	it.ranged = true
	hdr := it.c.headerSize

	if it.c.sparse {
		if seeker, ok := it.src.(io.Seeker); ok {
			if ranges, ok := it.trySparseMap(seeker, hdr); ok {
				it.ranges = ranges
				it.rangeIdx = -1
				return
			}
		}
	}

	// Fall back to a synthesized map: an optional header block followed by
	// a single unbounded data range.
	if hdr > 0 {
		it.ranges = []sparse.Range{
			{Start: 0, Length: int64(hdr), IsData: true},
			{Start: int64(hdr), Length: unbounded, IsData: true},
		}
	} else {
		it.ranges = []sparse.Range{{Start: 0, Length: unbounded, IsData: true}}
	}
	it.rangeIdx = -1
}

// trySparseMap attempts to build a real sparse map for the body of the
// file, starting at offset hdr, restoring the source's position to 0
// afterward regardless of outcome.
func (it *fixedIterator) trySparseMap(seeker io.Seeker, hdr int) (ranges []sparse.Range, ok bool) {
	if _, err := seeker.Seek(int64(hdr), io.SeekStart); err != nil {
		return nil, false
	}
	enum, err := sparse.New(seeker)
	if err != nil {
		seeker.Seek(0, io.SeekStart)
		return nil, false
	}
	for {
		r, err := enum.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			seeker.Seek(0, io.SeekStart)
			return nil, false
		}
		ranges = append(ranges, r)
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return nil, false
	}
	if hdr > 0 {
		ranges = append([]sparse.Range{{Start: 0, Length: int64(hdr), IsData: true}}, ranges...)
	}
	return ranges, true
}

func wrapIOErr(err error) error {
	if err == nil || err == io.EOF {
		return err
	}
	return errorf(errors.IO, "%v", err)
}
