//go:build !(rp2040 || rp2350) && !(linux && rpi)

package platform

import (
	"strconv"
	"sync"

	"pedestriansense-go/errcode"
	"pedestriansense-go/services/hal/core"
)

// Name identifies the platform in the boot log.
const Name = "host"

// GPIO range accepted on host builds (mirrors the Pico's GP0..GP28).
const GPIOMin, GPIOMax = 0, 28

// Default returns in-memory factories. Host builds have no hardware; tests
// and the simulator use NewHost to reach the fakes directly.
func Default() (core.Factories, error) { return NewHost().Factories(), nil }

// Host bundles the fake factories so callers can reach the fakes.
type Host struct {
	Pins *HostPinFactory
	Echo *HostEchoFactory
	Tone *HostToneFactory
}

func NewHost() *Host {
	return &Host{
		Pins: &HostPinFactory{pins: make(map[int]*FakePin)},
		Echo: &HostEchoFactory{sensors: make(map[int]*FakeEcho)},
		Tone: &HostToneFactory{tones: make(map[int]*FakeTone)},
	}
}

func (h *Host) Factories() core.Factories {
	return core.Factories{Pins: h.Pins, Echo: h.Echo, Tone: h.Tone}
}

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements core.GPIOPin.
type FakePin struct {
	mu      sync.RWMutex
	number  int
	level   bool
	modeOut bool
	writes  int
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.modeOut = true
	p.level = initial
	p.mu.Unlock()
	return nil
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	p.level = level
	p.writes++
	p.mu.Unlock()
}

func (p *FakePin) Get() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.level
}

func (p *FakePin) Number() int { return p.number }

// IsOutput reports whether ConfigureOutput has been called.
func (p *FakePin) IsOutput() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modeOut
}

// Writes counts Set calls.
func (p *FakePin) Writes() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.writes
}

// HostPinFactory returns stable *FakePin instances per number.
type HostPinFactory struct {
	mu   sync.Mutex
	pins map[int]*FakePin
}

func (f *HostPinFactory) ByNumber(n int) (core.GPIOPin, bool) {
	if n < GPIOMin || n > GPIOMax {
		return nil, false
	}
	return f.pin(n), true
}

// Get exposes the underlying *FakePin for tests.
func (f *HostPinFactory) Get(n int) (*FakePin, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pins[n]
	return p, ok
}

func (f *HostPinFactory) pin(n int) *FakePin {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pins == nil {
		f.pins = make(map[int]*FakePin)
	}
	p, ok := f.pins[n]
	if !ok {
		p = &FakePin{number: n}
		f.pins[n] = p
	}
	return p
}

// ----------------------------- Echo (host) -----------------------------------

// FakeEcho returns a settable round-trip pulse.
type FakeEcho struct {
	mu      sync.Mutex
	pulseUs int32
	reads   int
}

func (e *FakeEcho) ReadPulse() int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reads++
	return e.pulseUs
}

// SetPulse sets the round trip returned by the next reads; 0 means no echo.
func (e *FakeEcho) SetPulse(us int32) {
	e.mu.Lock()
	e.pulseUs = us
	e.mu.Unlock()
}

// SetDistance sets the pulse that corresponds to cm centimetres.
func (e *FakeEcho) SetDistance(cm uint32) { e.SetPulse(int32(cm * 2 * 29)) }

func (e *FakeEcho) Reads() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reads
}

// HostEchoFactory keys sensors by trigger pin.
type HostEchoFactory struct {
	mu      sync.Mutex
	sensors map[int]*FakeEcho
}

func (f *HostEchoFactory) ByPins(trigger, echo int) (core.EchoSensor, bool) {
	if trigger < GPIOMin || trigger > GPIOMax || echo < GPIOMin || echo > GPIOMax {
		return nil, false
	}
	return f.Get(trigger), true
}

// Get returns (creating if needed) the fake behind a trigger pin.
func (f *HostEchoFactory) Get(trigger int) *FakeEcho {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sensors == nil {
		f.sensors = make(map[int]*FakeEcho)
	}
	e, ok := f.sensors[trigger]
	if !ok {
		e = &FakeEcho{}
		f.sensors[trigger] = e
	}
	return e
}

// ----------------------------- Tone (host) -----------------------------------

// FakeTone records the active period; 0 means silent.
type FakeTone struct {
	mu     sync.Mutex
	period uint64
	starts int
}

func (t *FakeTone) SetPeriod(period uint64) {
	t.mu.Lock()
	t.period = period
	if period != 0 {
		t.starts++
	}
	t.mu.Unlock()
}

func (t *FakeTone) Stop() {
	t.mu.Lock()
	t.period = 0
	t.mu.Unlock()
}

func (t *FakeTone) Period() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.period
}

// Starts counts SetPeriod calls that started a tone.
func (t *FakeTone) Starts() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.starts
}

// HostToneFactory allows PWM on every pin except those listed in NoPWM.
type HostToneFactory struct {
	mu    sync.Mutex
	tones map[int]*FakeTone
	NoPWM map[int]bool
}

func (f *HostToneFactory) ByPin(n int) (core.ToneOutput, error) {
	if n < GPIOMin || n > GPIOMax {
		return nil, errcode.Wrap(errcode.UnknownPin, "tone", "gpio"+strconv.Itoa(n), nil)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.NoPWM[n] {
		return nil, errcode.NoPWM
	}
	if f.tones == nil {
		f.tones = make(map[int]*FakeTone)
	}
	t, ok := f.tones[n]
	if !ok {
		t = &FakeTone{}
		f.tones[n] = t
	}
	return t, nil
}

// Get exposes the fake tone on pin n, if one was handed out.
func (f *HostToneFactory) Get(n int) (*FakeTone, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tones[n]
	return t, ok
}
