// Package timestamp formats the CreatedAt value stored with each registered word.
package timestamp

import (
	"time"
)

// JSTOffsetLabel is appended to every formatted timestamp regardless of the host timezone.
const JSTOffsetLabel = "+09:00"

const wallClockLayout = "2006-01-02T15:04:05"

// Format renders the wall clock reading of t in loc, truncated to seconds, and labels it
// with +09:00. The value is not converted to JST: on a host outside JST the label does not
// match the instant.
func Format(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Truncate(time.Second).Format(wallClockLayout) + JSTOffsetLabel
}

// Normalizer produces CreatedAt values from the current time.
type Normalizer struct {
	now      func() time.Time
	location *time.Location
}

type Option func(*Normalizer)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		n.now = now
	}
}

// WithLocation replaces the host location used to read the wall clock.
func WithLocation(loc *time.Location) Option {
	return func(n *Normalizer) {
		n.location = loc
	}
}

func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{
		now:      time.Now,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Now returns the current time as a +09:00 labelled timestamp.
func (n *Normalizer) Now() string {
	return Format(n.now(), n.location)
}
