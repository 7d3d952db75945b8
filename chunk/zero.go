// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package chunk

import (
	"bytes"
	"sync"
)

// zeroBuf is a process-wide, read-only buffer of zero bytes used to detect
// all-zero payloads without allocating a comparison buffer per chunk. The
// fixed and buzhash chunkers validate their configured block/max size
// against its length at construction. It is allocated lazily since most processes only ever
// construct chunkers with one, much smaller, max size.
var (
	zeroBufOnce sync.Once
	zeroBuf     []byte
)

func getZeroBuf() []byte {
	zeroBufOnce.Do(func() { zeroBuf = make([]byte, maxSupportedBlockSize) })
	return zeroBuf
}

// isAllZero reports whether buf consists entirely of zero bytes. A chunk's
// Kind is ALLOC if and only if this holds for its data (spec invariant 5);
// classification never influences where a cut point falls, only the Kind
// tag applied to an already-determined chunk.
func isAllZero(buf []byte) bool {
	zb := getZeroBuf()
	for len(buf) > 0 {
		n := len(buf)
		if n > len(zb) {
			n = len(zb)
		}
		if !bytes.Equal(buf[:n], zb[:n]) {
			return false
		}
		buf = buf[n:]
	}
	return true
}

// classify returns the Kind and payload for a data-range chunk of n bytes
// (buf), applying the all-zero classifier: ALLOC with no payload if buf is
// entirely zero, DATA with buf as the payload otherwise.
func classify(buf []byte) (Kind, []byte) {
	if isAllZero(buf) {
		return ALLOC, nil
	}
	return DATA, buf
}
