// Package logx is a small leveled line logger for firmware and host tools.
// It writes one line per call and holds no goroutines or buffers.
package logx

import (
	"fmt"
	"io"
)

type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	levelOff
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "off"
	}
}

// Logger writes "[level] name: message" lines. A nil *Logger discards.
type Logger struct {
	w     io.Writer
	level Level
	name  string
}

func New(w io.Writer, level Level) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{w: w, level: level}
}

// Discard returns a logger that drops everything.
func Discard() *Logger { return &Logger{w: io.Discard, level: levelOff} }

// Named returns a child logger sharing the writer and level.
func (l *Logger) Named(name string) *Logger {
	if l == nil {
		return nil
	}
	c := *l
	if c.name != "" {
		name = c.name + "." + name
	}
	c.name = name
	return &c
}

func (l *Logger) Enabled(lv Level) bool { return l != nil && lv >= l.level && lv < levelOff }

func (l *Logger) Debugf(format string, a ...any) { l.logf(LevelDebug, format, a...) }
func (l *Logger) Infof(format string, a ...any)  { l.logf(LevelInfo, format, a...) }
func (l *Logger) Warnf(format string, a ...any)  { l.logf(LevelWarn, format, a...) }
func (l *Logger) Errorf(format string, a ...any) { l.logf(LevelError, format, a...) }

func (l *Logger) logf(lv Level, format string, a ...any) {
	if !l.Enabled(lv) {
		return
	}
	msg := fmt.Sprintf(format, a...)
	if l.name != "" {
		_, _ = fmt.Fprintf(l.w, "[%s] %s: %s\r\n", lv, l.name, msg)
		return
	}
	_, _ = fmt.Fprintf(l.w, "[%s] %s\r\n", lv, msg)
}
