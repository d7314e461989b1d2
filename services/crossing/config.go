package crossing

import (
	"math"
	"time"
)

// Seconds counts whole ticks spent in a mode.
type Seconds uint64

// Unbounded is a mode duration that counting never reaches.
const Unbounded Seconds = math.MaxUint64

// Config holds the fixed timing and detection constants.
type Config struct {
	Red    Seconds
	Yellow Seconds
	Green  Seconds

	// Settle separates the primary and secondary light writes when
	// entering Red or Green.
	Settle time.Duration
	Tick   time.Duration

	// Threshold is the distance at or below which a sensor reports presence.
	Threshold Distance
}

// DefaultConfig returns the controller constants.
func DefaultConfig() Config {
	return Config{
		Red:       60,
		Yellow:    10,
		Green:     Unbounded,
		Settle:    2 * time.Second,
		Tick:      time.Second,
		Threshold: 5,
	}
}

// Duration returns the configured length of m.
func (c Config) Duration(m Mode) Seconds {
	switch m {
	case Red:
		return c.Red
	case Yellow:
		return c.Yellow
	default:
		return c.Green
	}
}
