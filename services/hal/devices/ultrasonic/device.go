package ultrasonic

import (
	"pedestriansense-go/services/crossing"
	"pedestriansense-go/services/hal/core"
	"pedestriansense-go/x/logx"
)

// Device is a pair of HC-SR04 style sensors exposed as a crossing.RangeSensor.
type Device struct {
	id      string
	pins    []int
	sensors [2]core.EchoSensor
	maxUs   int32

	reg *core.Registry
	log *logx.Logger

	misses [2]uint32
}

func (d *Device) ID() string { return d.id }

// MeasureDistance triggers the sensor on ch and converts the echo. A missing
// or over-long echo is reported as crossing.OutOfRange.
func (d *Device) MeasureDistance(ch crossing.Channel) crossing.Distance {
	i := int(ch)
	if i >= len(d.sensors) {
		return crossing.OutOfRange
	}
	us := d.sensors[i].ReadPulse()
	dist := PulseToDistance(us, d.maxUs)
	if dist == crossing.OutOfRange {
		d.misses[i]++
		d.log.Debugf("channel %s: no echo (%d us)", ch, us)
	}
	return dist
}

// Misses counts out-of-range readings on ch since boot.
func (d *Device) Misses(ch crossing.Channel) uint32 {
	if int(ch) >= len(d.misses) {
		return 0
	}
	return d.misses[ch]
}

func (d *Device) Close() error {
	if d.reg != nil {
		d.reg.Release(d.id, d.pins...)
	}
	return nil
}

// PulseToDistance converts an echo round trip in microseconds to whole
// centimetres. Sound covers 1 cm in about 29 us and the pulse is there
// and back. Non-positive or over-long pulses give OutOfRange.
func PulseToDistance(us, maxUs int32) crossing.Distance {
	if us <= 0 || (maxUs > 0 && us > maxUs) {
		return crossing.OutOfRange
	}
	return crossing.Distance(us / 29 / 2)
}
