package util

import "time"

// Clock returns the current time. Services keep one as a field so tests can pin it.
type Clock func() time.Time

// NowUTC is the default Clock.
func NowUTC() time.Time {
	return time.Now().UTC()
}
