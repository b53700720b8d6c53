package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Frozen reports the same instant on every call.
type Frozen struct {
	T time.Time
}

func (f Frozen) Now() time.Time {
	return f.T
}
