package buzzer

import (
	"testing"

	"pedestriansense-go/errcode"
	"pedestriansense-go/services/hal/core"
	"pedestriansense-go/services/hal/platform"
	"pedestriansense-go/x/logx"
)

func resources(h *platform.Host) core.Resources {
	return core.Resources{
		Factories: h.Factories(),
		Reg:       core.NewRegistry(platform.GPIOMin, platform.GPIOMax),
		Log:       logx.Discard(),
	}
}

func TestBuild_PrefersPWMTone(t *testing.T) {
	h := platform.NewHost()
	d, err := Build("alarm", Params{Pin: 5, FreqHz: 523}, resources(h))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !d.PWM() {
		t.Fatalf("expected a PWM tone on gpio5")
	}
	if err := d.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	tone, ok := h.Tone.Get(5)
	if !ok {
		t.Fatalf("tone factory was not used")
	}
	d.SetAlarm(true)
	if got, want := tone.Period(), uint64(1_000_000_000/523); got != want {
		t.Fatalf("period = %d, want %d", got, want)
	}
	d.SetAlarm(true)
	d.SetAlarm(true)
	if tone.Starts() != 1 {
		t.Fatalf("tone restarted %d times; repeated on must not retrigger", tone.Starts())
	}
	d.SetAlarm(false)
	if tone.Period() != 0 || d.On() {
		t.Fatalf("alarm should be silent after SetAlarm(false)")
	}
}

func TestBuild_ClampsFrequency(t *testing.T) {
	h := platform.NewHost()
	d, err := Build("alarm", Params{Pin: 5, FreqHz: 5}, resources(h))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	d.SetAlarm(true)
	tone, _ := h.Tone.Get(5)
	if got, want := tone.Period(), uint64(1_000_000_000/minHz); got != want {
		t.Fatalf("period = %d, want %d (clamped to %d Hz)", got, want, minHz)
	}
}

func TestBuild_FallsBackToGPIO_ActiveLow(t *testing.T) {
	h := platform.NewHost()
	h.Tone.NoPWM = map[int]bool{5: true}

	d, err := Build("alarm", Params{Pin: 5, FreqHz: 523, ActiveLow: true}, resources(h))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if d.PWM() {
		t.Fatalf("expected GPIO fallback")
	}
	if err := d.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	pin, ok := h.Pins.Get(5)
	if !ok || !pin.IsOutput() {
		t.Fatalf("gpio5 not configured as output")
	}
	if !pin.Get() {
		t.Fatalf("active-low buzzer should idle high")
	}
	d.SetAlarm(true)
	if pin.Get() {
		t.Fatalf("active-low buzzer should drive low when on")
	}
}

func TestBuild_PinConflict(t *testing.T) {
	h := platform.NewHost()
	res := resources(h)
	if err := res.Reg.Claim("lights", 5); err != nil {
		t.Fatalf("claim: %v", err)
	}
	_, err := Build("alarm", Params{Pin: 5}, res)
	if errcode.Of(err) != errcode.PinInUse {
		t.Fatalf("want pin_in_use, got %v", err)
	}
}

func TestClose_ReleasesPin(t *testing.T) {
	h := platform.NewHost()
	res := resources(h)
	d, err := Build("alarm", Params{Pin: 5, FreqHz: 523}, res)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	d.SetAlarm(true)
	if err := d.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, held := res.Reg.Owner(5); held {
		t.Fatalf("gpio5 still claimed after Close")
	}
	if tone, _ := h.Tone.Get(5); tone.Period() != 0 {
		t.Fatalf("tone still playing after Close")
	}
}
