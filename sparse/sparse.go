// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sparse

import (
	"errors"
	"io"
	"syscall"
)

// Enumerator produces the lazy sequence of data/hole Ranges covering
// [curr, len(src)) for a seekable source, where curr is the source's seek
// position at the time New is called.
//
// Enumerator restores the source's seek position to curr when the walk
// terminates: at a clean end of the sequence or on an error. Between calls to
// Next the position is wherever the last probe left it, and a caller that
// stops calling Next before io.EOF leaves it there; Enumerator has no method
// to end a walk early.
type Enumerator struct {
	src  Seeker
	orig int64 // seek position at construction; restored on termination
	pos  int64 // current walk position
	end  int64 // file length

	done     bool
	restored bool
}

// New probes src's current position and length and returns an Enumerator
// ready to walk [curr, len(src)). It fails with ErrUnsupported if the
// platform does not implement SEEK_DATA/SEEK_HOLE, or if src's first probe
// indicates the feature isn't implemented for this file (e.g. a filesystem
// without sparse-file support).
func New(src Seeker) (*Enumerator, error) {
	if !supported {
		return nil, ErrUnsupported
	}

	curr, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	end, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	if _, err := src.Seek(curr, io.SeekStart); err != nil {
		return nil, err
	}

	// Probe once: if SEEK_DATA itself isn't implemented for this file, the
	// kernel reports EINVAL/ENOTSUP/ENOSYS rather than ENXIO.
	if curr < end {
		if _, err := src.Seek(curr, seekData); err != nil && isUnsupported(err) {
			src.Seek(curr, io.SeekStart)
			return nil, ErrUnsupported
		}
		if _, err := src.Seek(curr, io.SeekStart); err != nil {
			return nil, err
		}
	}

	return &Enumerator{src: src, orig: curr, pos: curr, end: end}, nil
}

// Next returns the next Range in the walk, or io.EOF once the sequence is
// exhausted. Any other error aborts the walk. The seek position is restored
// to curr when Next returns io.EOF or an error, and also when it returns a
// trailing hole that reaches the end of the file; after any other Range it is
// left at the last probed offset.
func (e *Enumerator) Next() (Range, error) {
	for {
		if e.done {
			return Range{}, io.EOF
		}
		if e.pos >= e.end {
			return e.finish(Range{}, io.EOF)
		}

		dataStart, err := e.src.Seek(e.pos, seekData)
		if err != nil {
			if isNoSuchRegion(err) {
				// No more data; the remainder of the file is a hole.
				start := e.pos
				length := e.end - start
				e.pos = e.end
				if length == 0 {
					return e.finish(Range{}, io.EOF)
				}
				e.done = true
				r := Range{Start: start, Length: length, IsData: false}
				return r, e.restore(nil)
			}
			return e.finish(Range{}, wrapErr(err))
		}

		if dataStart > e.pos {
			start := e.pos
			e.pos = dataStart
			if length := dataStart - start; length > 0 {
				return Range{Start: start, Length: length, IsData: false}, nil
			}
			continue // zero-length range; keep walking
		}

		// e.pos is itself a data byte; find where the hole begins.
		holeStart, err := e.src.Seek(e.pos, seekHole)
		if err != nil {
			if isNoSuchRegion(err) {
				holeStart = e.end
			} else {
				return e.finish(Range{}, wrapErr(err))
			}
		}
		if holeStart > e.end {
			holeStart = e.end
		}

		start := e.pos
		e.pos = holeStart
		if length := holeStart - start; length > 0 {
			return Range{Start: start, Length: length, IsData: true}, nil
		}
		continue // zero-length range; keep walking
	}
}

// finish marks the walk done, restores the seek position, and returns r
// alongside whichever of err or the restore error takes priority.
func (e *Enumerator) finish(r Range, err error) (Range, error) {
	e.done = true
	if rerr := e.restore(nil); rerr != nil && err == nil {
		err = rerr
	}
	return r, err
}

// restore seeks back to the original position recorded at New, once.
func (e *Enumerator) restore(prior error) error {
	if e.restored {
		return prior
	}
	e.restored = true
	if _, err := e.src.Seek(e.orig, io.SeekStart); err != nil && prior == nil {
		return err
	}
	return prior
}

func isNoSuchRegion(err error) bool {
	return errors.Is(err, syscall.ENXIO)
}

func isUnsupported(err error) bool {
	return errors.Is(err, syscall.ENOSYS) ||
		errors.Is(err, syscall.EINVAL) ||
		errors.Is(err, syscall.ENOTSUP) ||
		errors.Is(err, syscall.EOPNOTSUPP)
}

// wrapErr surfaces any failure other than "no such region" to the caller
// unchanged, as the underlying seek error; callers that disabled sparse
// handling in response typically retry without it (spec §4.2/§7).
func wrapErr(err error) error {
	return err
}
