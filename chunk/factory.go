// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package chunk

import "github.com/dsnet/chunk/internal/errors"

// GetChunker selects and constructs a Chunker by algorithm name. algo is
// one of "buzhash", "fixed", or "fail"; an unrecognized name is a
// Configuration error.
func GetChunker(algo string, opts Options) (Chunker, error) {
	switch algo {
	case "buzhash":
		return NewBuzhash(opts.Buzhash)
	case "fixed":
		return NewFixed(opts.Fixed)
	case "fail":
		return NewFail(opts.Fail)
	default:
		return nil, errorf(errors.Configuration, "unknown chunker algorithm: %q", algo)
	}
}

// Options carries the algorithm-specific configuration GetChunker dispatches
// on; only the field matching the requested algo is consulted.
type Options struct {
	Buzhash BuzhashConfig
	Fixed   FixedConfig
	Fail    FailConfig
}
