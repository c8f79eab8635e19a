package clock

import "time"

// Clock abstracts time for components that stamp query log entries, so tests
// can pin the current time.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock implements Clock with a fixed, settable time for tests.
type MockClock struct {
	CurrentTime time.Time
}

// Now returns the configured time.
func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// Advance returns a copy of the clock moved forward by d.
func (m MockClock) Advance(d time.Duration) MockClock {
	return MockClock{CurrentTime: m.CurrentTime.Add(d)}
}
