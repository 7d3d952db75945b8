// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package sparse enumerates the data/hole layout of a seekable file using the
// SEEK_DATA/SEEK_HOLE extensions to lseek(2), as exposed by
// golang.org/x/sys/unix.
//
// It is used by the fixed-size chunker to skip reading allocation holes
// entirely rather than reading and then classifying runs of zero bytes.
package sparse

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "sparse: " + string(e) }

// ErrUnsupported indicates that the source does not support SEEK_DATA/
// SEEK_HOLE on this platform, or that probing it failed in a way that
// indicates the feature is unavailable. Callers are expected to catch this
// and fall back to treating the file as entirely data.
var ErrUnsupported error = Error("SEEK_DATA/SEEK_HOLE not supported")

// Range describes one contiguous, non-overlapping region of a file: either a
// data extent or an allocation hole.
type Range struct {
	Start  int64
	Length int64
	IsData bool
}

// Seeker is the minimal interface a sparse-aware source must implement. An
// *os.File satisfies it directly: os.File.Seek forwards whence to the raw
// lseek(2) syscall without validating it against io.SeekStart/Current/End,
// so passing the platform SEEK_DATA/SEEK_HOLE whence values through it works
// without needing the raw file descriptor.
type Seeker interface {
	Seek(offset int64, whence int) (int64, error)
}
