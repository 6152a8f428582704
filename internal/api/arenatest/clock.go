package arenatest

import "time"

// nowFunc is replaced in tests that need a fixed contest window.
var nowFunc = time.Now

// SetNow overrides the server clock and returns a restore function.
func SetNow(now time.Time) func() {
	old := nowFunc
	nowFunc = func() time.Time { return now }
	return func() { nowFunc = old }
}
