package crossing

import "math"

// Channel selects one of the two range sensors.
type Channel uint8

const (
	ChannelA Channel = iota
	ChannelB
)

func (c Channel) String() string {
	if c == ChannelA {
		return "A"
	}
	return "B"
}

// Distance is a range reading in centimetres.
type Distance uint32

// OutOfRange is reported when a sensor gives no usable reading.
// It is larger than any threshold, so it never counts as presence.
const OutOfRange Distance = math.MaxUint32

// RangeSensor measures the distance seen by a channel. It has no error
// path: faults are reported as OutOfRange.
type RangeSensor interface {
	MeasureDistance(ch Channel) Distance
}

// Sample is the presence reading for one tick.
type Sample struct {
	// Present is true if either sensor is at or inside the threshold.
	Present bool
	// Sustained is true if Present held on this tick and the previous one.
	Sustained bool
}

// PresenceFilter combines both sensors and remembers the previous tick.
type PresenceFilter struct {
	sensor    RangeSensor
	threshold Distance
	previous  bool
}

func NewPresenceFilter(sensor RangeSensor, threshold Distance) *PresenceFilter {
	return &PresenceFilter{sensor: sensor, threshold: threshold}
}

// Sample reads both channels, always in A then B order.
func (f *PresenceFilter) Sample() Sample {
	a := f.sensor.MeasureDistance(ChannelA)
	b := f.sensor.MeasureDistance(ChannelB)

	present := a <= f.threshold || b <= f.threshold
	s := Sample{Present: present, Sustained: f.previous && present}
	f.previous = present
	return s
}
