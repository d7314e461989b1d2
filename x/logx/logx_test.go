package logx

import (
	"bytes"
	"testing"
)

func TestLevelsFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)

	l.Debugf("hidden %d", 1)
	l.Infof("mode %s", "green")
	l.Errorf("bad %s", "pin")

	want := "[info] mode green\r\n[error] bad pin\r\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestNamedChains(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelDebug).Named("hal").Named("ultrasonic")
	l.Debugf("no echo on %s", "A")

	if got, want := buf.String(), "[debug] hal.ultrasonic: no echo on A\r\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestNilAndDiscardAreSilent(t *testing.T) {
	var l *Logger
	l.Infof("x")
	if l.Named("a") != nil {
		t.Fatal("Named on nil should stay nil")
	}
	if Discard().Enabled(LevelError) {
		t.Fatal("Discard should not be enabled at any level")
	}
}
