package touchui

import "time"

// Clock returns unscaled time in seconds. Click counting and the navigation
// repeat timer read it once per use.
type Clock interface {
	Now() float64
}

// wallClock measures seconds since it was created.
type wallClock struct {
	start time.Time
}

func newWallClock() wallClock {
	return wallClock{start: time.Now()}
}

func (c wallClock) Now() float64 {
	return time.Since(c.start).Seconds()
}
