package ports

import "time"

// Clock supplies the current time to workflow components. Injecting it keeps
// order creation and note issuance timestamps deterministic under test.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
//
// Example:
//
//	clock := ports.ClockFunc(time.Now)
type ClockFunc func() time.Time

// Now returns the function's current time.
func (f ClockFunc) Now() time.Time {
	return f()
}
