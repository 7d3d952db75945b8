// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package chunk

import "io"

// Source is the byte-source contract: sequential Read is mandatory; a
// source that also implements io.Seeker may additionally be used for the
// fixed chunker's sparse-file handling (via the sparse package), and the
// failing chunker ignores seeking entirely. 0 bytes with a nil error from
// Read is never produced by a conforming source; io.EOF signals the end.
type Source interface {
	io.Reader
}

// Kind classifies a Chunk's allocation status.
type Kind uint8

const (
	// DATA means a non-zero payload is attached.
	DATA Kind = iota

	// ALLOC means a detected all-zero region within a data range; no
	// payload is attached (the zero bytes are implied by Size).
	ALLOC

	// HOLE means a region inside a sparse hole; no payload is attached.
	HOLE
)

func (k Kind) String() string {
	switch k {
	case DATA:
		return "DATA"
	case ALLOC:
		return "ALLOC"
	case HOLE:
		return "HOLE"
	default:
		return "UNKNOWN"
	}
}

// Chunk is an immutable value produced by a Chunker.
//
// Payload is present if and only if Kind is DATA, and its length always
// equals Size. Payload is a borrowed view into the chunker's internal
// buffer: it is only valid until the next call that advances the chunker
// (the next Next on the same Iterator). Callers that need to retain a
// payload past that point must copy it.
type Chunk struct {
	Kind    Kind
	Size    uint64
	Payload []byte
}

// Iterator is the lazy sequence of Chunks a Chunker produces for one byte
// source. Next returns io.EOF (see the io package) once the sequence is
// exhausted.
type Iterator interface {
	Next() (Chunk, error)
}

// Chunker binds to a byte source and produces an Iterator over it. Chunkers
// are single-threaded, single-consumer objects: one Chunker processes one
// stream at a time, and concurrent use of a single Chunker is undefined.
type Chunker interface {
	// Chunkify binds the chunker to src and returns an iterator over it.
	Chunkify(src Source) Iterator

	// Elapsed returns the cumulative wall-clock duration attributable to
	// chunking work across every Iterator this Chunker has produced.
	Elapsed() (seconds float64)
}
