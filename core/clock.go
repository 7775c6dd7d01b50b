package core

import (
	"sync"
	"time"
)

// Clock supplies "now" for store timestamps.
type Clock func() time.Time

// MonotonicClock returns a Clock whose readings are UTC, truncated to the
// microsecond precision records are stored with, and strictly increasing:
// two readings in the same microsecond are pushed one microsecond apart.
// Safe for concurrent use.
func MonotonicClock() Clock {
	return monotonic(func() time.Time { return time.Now() })
}

func monotonic(source func() time.Time) Clock {
	var (
		mu   sync.Mutex
		last time.Time
	)
	return func() time.Time {
		now := source().UTC().Truncate(time.Microsecond)
		mu.Lock()
		defer mu.Unlock()
		if !now.After(last) {
			now = last.Add(time.Microsecond)
		}
		last = now
		return now
	}
}

// StoredTime converts t to the form records are stored in: UTC with
// microsecond precision. The zero time stays zero.
func StoredTime(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC().Truncate(time.Microsecond)
}
