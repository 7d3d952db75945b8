// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package chunk implements the chunking core of a content-addressed backup
// system: partitioning a byte stream from a file-like source into a
// sequence of variable- or fixed-size chunks suitable for deduplication,
// encryption, and storage as independent objects.
//
// Three chunker variants share the Chunker interface and its single
// streaming output contract, but differ in how cut points are chosen:
//
//	Buzhash  - rolling-hash based splitter producing variable-size chunks
//	Fixed    - block-aligned splitter with optional header and sparse support
//	Fail     - deterministic fault-injection splitter for testing callers
//
// The repository/object store that receives the chunks, the hasher used for
// content addressing, and encryption of chunk payloads are all out of
// scope: this package exposes a pure streaming interface to them.
package chunk

import "github.com/dsnet/chunk/internal/errors"

// maxSupportedBlockSize bounds block_size for the fixed chunker and max_size
// for the buzhash chunker: both must fit within the shared zero buffer (see
// zero.go).
const maxSupportedBlockSize = 1 << 26 // 64 MiB

func errorf(kind errors.Kind, format string, args ...interface{}) error {
	return errors.Errorf(kind, format, args...)
}
