package ioformat

import (
	"fmt"
	"io"
	"time"
)

// Timer is a high-resolution elapsed-time reporter, grounded on
// utilities/timer.h. Go's time package already gives microsecond-or-better
// resolution on every supported platform, so there is no need for the
// reference's Windows/Unix-specific branches.
type Timer struct {
	start time.Time
}

// NewTimer returns a Timer already started, mirroring timer.h's
// constructor (which starts the clock immediately rather than requiring a
// separate Start call).
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Start resets the timer's clock to now.
func (t *Timer) Start() { t.start = time.Now() }

// Elapsed returns the time since the last Start/NewTimer call.
func (t *Timer) Elapsed() time.Duration { return time.Since(t.start) }

// PrintElapsed writes caption followed by the elapsed time in seconds,
// grounded on timer.h's print_elapsed_time.
func (t *Timer) PrintElapsed(w io.Writer, caption string) {
	fmt.Fprintf(w, "[TIME] %s%g\n", caption, t.Elapsed().Seconds())
}
