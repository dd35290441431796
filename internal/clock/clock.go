package clock

import "time"

// Clock abstracts time access so response timestamps and token expiry are
// controllable in tests.
type Clock interface {
	Now() time.Time
	NowUnixMilli() int64
}

// SystemClock returns the real system time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) NowUnixMilli() int64 {
	return time.Now().UnixMilli()
}

// FixedClock returns a fixed instant until Advance moves it.
type FixedClock struct {
	Time time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{Time: t}
}

func (c *FixedClock) Now() time.Time {
	return c.Time
}

func (c *FixedClock) NowUnixMilli() int64 {
	return c.Time.UnixMilli()
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.Time = c.Time.Add(d)
}
