package clock

import "time"

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// Now returns the current UTC time truncated to seconds, as written to
// dictionary snapshots.
func Now() time.Time { return NowFunc().UTC().Truncate(time.Second) }
