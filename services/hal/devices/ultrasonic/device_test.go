package ultrasonic

import (
	"bytes"
	"strings"
	"testing"

	"pedestriansense-go/errcode"
	"pedestriansense-go/services/crossing"
	"pedestriansense-go/services/hal/core"
	"pedestriansense-go/services/hal/platform"
	"pedestriansense-go/x/logx"
)

var plan = Params{TriggerA: 10, TriggerB: 11, EchoA: 12, EchoB: 13}

func TestPulseToDistance(t *testing.T) {
	cases := []struct {
		us   int32
		want crossing.Distance
	}{
		{0, crossing.OutOfRange},
		{-1, crossing.OutOfRange},
		{57, 0},
		{58, 1},
		{290, 5},
		{347, 5},
		{348, 6},
		{DefaultMaxPulseUs, 402},
		{DefaultMaxPulseUs + 1, crossing.OutOfRange},
	}
	for _, c := range cases {
		if got := PulseToDistance(c.us, DefaultMaxPulseUs); got != c.want {
			t.Fatalf("PulseToDistance(%d) = %d, want %d", c.us, got, c.want)
		}
	}
	if got := PulseToDistance(100_000, 0); got != 1724 {
		t.Fatalf("no max: got %d", got)
	}
}

func TestMeasureDistance_PerChannel(t *testing.T) {
	h := platform.NewHost()
	var buf bytes.Buffer
	res := core.Resources{
		Factories: h.Factories(),
		Reg:       core.NewRegistry(platform.GPIOMin, platform.GPIOMax),
		Log:       logx.New(&buf, logx.LevelDebug),
	}
	d, err := Build("range", plan, res)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	h.Echo.Get(plan.TriggerA).SetDistance(4)
	h.Echo.Get(plan.TriggerB).SetPulse(0)

	if got := d.MeasureDistance(crossing.ChannelA); got != 4 {
		t.Fatalf("channel A = %d, want 4", got)
	}
	if got := d.MeasureDistance(crossing.ChannelB); got != crossing.OutOfRange {
		t.Fatalf("channel B = %d, want OutOfRange", got)
	}
	if d.Misses(crossing.ChannelB) != 1 || d.Misses(crossing.ChannelA) != 0 {
		t.Fatalf("misses A=%d B=%d", d.Misses(crossing.ChannelA), d.Misses(crossing.ChannelB))
	}
	if !strings.Contains(buf.String(), "[debug] range: channel B: no echo") {
		t.Fatalf("missing no-echo log, got %q", buf.String())
	}
	if h.Echo.Get(plan.TriggerA).Reads() != 1 || h.Echo.Get(plan.TriggerB).Reads() != 1 {
		t.Fatalf("each channel should fire its own sensor once")
	}
}

func TestMeasureDistance_FeedsPresenceFilter(t *testing.T) {
	h := platform.NewHost()
	d, err := Build("range", plan, core.Resources{
		Factories: h.Factories(),
		Reg:       core.NewRegistry(platform.GPIOMin, platform.GPIOMax),
		Log:       logx.Discard(),
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	f := crossing.NewPresenceFilter(d, 5)

	if s := f.Sample(); s.Present {
		t.Fatalf("silent sensors must not count as presence")
	}
	h.Echo.Get(plan.TriggerB).SetDistance(5)
	if s := f.Sample(); !s.Present || s.Sustained {
		t.Fatalf("first close reading: %+v", s)
	}
	if s := f.Sample(); !s.Sustained {
		t.Fatalf("second close reading should be sustained: %+v", s)
	}
}

func TestBuild_Errors(t *testing.T) {
	h := platform.NewHost()
	reg := core.NewRegistry(platform.GPIOMin, platform.GPIOMax)
	p := plan
	p.EchoB = 40
	_, err := Build("range", p, core.Resources{Factories: h.Factories(), Reg: reg, Log: logx.Discard()})
	if errcode.Of(err) != errcode.UnknownPin {
		t.Fatalf("want unknown_pin, got %v", err)
	}
	if _, held := reg.Owner(plan.TriggerA); held {
		t.Fatalf("failed build must not leave pins claimed")
	}

	_, err = Build("range", plan, core.Resources{Reg: reg, Log: logx.Discard()})
	if errcode.Of(err) != errcode.Unsupported {
		t.Fatalf("want unsupported without an echo factory, got %v", err)
	}
}
