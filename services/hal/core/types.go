package core

import "pedestriansense-go/x/logx"

// ---- GPIO ----

type GPIOPin interface {
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
	Number() int
}

// PinFactory supplies GPIO pins by the board's number scheme.
type PinFactory interface {
	ByNumber(n int) (GPIOPin, bool)
}

// ---- Ultrasonic ranging ----

// EchoSensor fires one trigger pulse and returns the echo round trip in
// microseconds. Zero means no echo arrived before the sensor timeout.
type EchoSensor interface {
	ReadPulse() int32
}

type EchoFactory interface {
	ByPins(trigger, echo int) (EchoSensor, bool)
}

// ---- Tone output (PWM square wave) ----

// ToneOutput plays a square wave until stopped. SetPeriod is in
// nanoseconds; tinygo.org/x/drivers/tone.Speaker satisfies it directly.
type ToneOutput interface {
	SetPeriod(period uint64)
	Stop()
}

type ToneFactory interface {
	// ByPin returns errcode.NoPWM when the pin cannot carry PWM.
	ByPin(n int) (ToneOutput, error)
}

// ---- HAL-injected resources ----

// Factories is what a platform provides.
type Factories struct {
	Pins PinFactory
	Echo EchoFactory
	Tone ToneFactory
}

// Resources is handed to device builders.
type Resources struct {
	Factories
	Reg *Registry
	Log *logx.Logger
}
