package clock

import "time"

// Clock abstracts time.Now so date-sensitive rules can be tested against a
// pinned instant.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func NewRealClock() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

// Fixed is a Clock frozen at a single instant.
type Fixed struct {
	t time.Time
}

func NewFixed(t time.Time) *Fixed { return &Fixed{t: t} }

func (f *Fixed) Now() time.Time { return f.t }
