// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build linux || darwin || freebsd || solaris

package sparse

import "golang.org/x/sys/unix"

const supported = true

const (
	seekData = unix.SEEK_DATA
	seekHole = unix.SEEK_HOLE
)
