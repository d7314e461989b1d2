package timex

import "time"

// NowMs returns Unix milliseconds as int64.
func NowMs() int64 { return time.Now().UnixMilli() }

// PeriodFromHz returns a nanosecond period for a requested frequency.
// freqHz==0 is coerced to 1 to avoid division by zero.
func PeriodFromHz(freqHz uint32) uint64 {
	if freqHz == 0 {
		freqHz = 1
	}
	return uint64(1_000_000_000 / uint64(freqHz))
}

// Sleeper blocks the caller for d. Implementations are not interruptible.
type Sleeper interface {
	Sleep(d time.Duration)
}

// SleepFunc adapts a plain function to Sleeper.
type SleepFunc func(d time.Duration)

func (f SleepFunc) Sleep(d time.Duration) { f(d) }

// Wall sleeps on the real clock.
var Wall Sleeper = SleepFunc(time.Sleep)

// Virtual is a Sleeper that only advances a counter. Used by host
// simulations and tests to step ticks without waiting.
type Virtual struct {
	Elapsed time.Duration
	Calls   []time.Duration
}

func (v *Virtual) Sleep(d time.Duration) {
	if d < 0 {
		d = 0
	}
	v.Elapsed += d
	v.Calls = append(v.Calls, d)
}
