// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package chunk

import "time"

// telemetry accumulates the wall-clock duration spent doing chunking work
// across every Next call on every Iterator a Chunker has produced. Each Next
// call is timed end to end, so reads from the source are included. It is embedded in each chunker
// implementation and is safe for the chunker's own single-threaded use.
type telemetry struct {
	seconds float64
}

// track records the duration of one unit of work, timed by the caller via
// defer t.track(time.Now()).
func (t *telemetry) track(start time.Time) {
	t.seconds += time.Since(start).Seconds()
}

func (t *telemetry) Elapsed() float64 { return t.seconds }
